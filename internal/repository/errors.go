// internal/repository/errors.go
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobapp-back/internal/apperrors"
)

// translateError maps a raw store error into the domain taxonomy. This is
// the only place GORM errors are inspected; nothing above the repository
// sees them.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(what)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return apperrors.Conflict(what + " already exists")
	}
	return apperrors.Database(err)
}

// isUniqueViolation catches drivers that surface the Postgres 23505 error
// without GORM's translation layer.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
