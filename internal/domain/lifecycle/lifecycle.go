// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds individual lifecycle hooks such as database pings
// and server shutdowns.
const DefaultTimeout = 10 * time.Second
