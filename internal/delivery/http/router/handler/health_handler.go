package handler

import (
	"net/http"
	"time"

	"forkcast/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Version is the reported API version.
const Version = "1.0.0"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Health{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	})
}
