package mysql

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for MySQL error classification. GORM's TranslateError
// maps driver error 1062 to ErrDuplicatedKey and 1452 to ErrForeignKeyViolated;
// the message checks cover drivers or paths the translation misses.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "error 1062") ||
		strings.Contains(errMsg, "duplicate entry")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "error 1452") ||
		strings.Contains(errMsg, "foreign key constraint fails")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "error 1048") ||
		strings.Contains(errMsg, "cannot be null")
}
