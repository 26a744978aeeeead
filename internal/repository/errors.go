package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateEntryError reports whether err is a unique constraint violation.
// gorm translates the common drivers to ErrDuplicatedKey; the message checks
// cover drivers or wrappers that skip the translation.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
