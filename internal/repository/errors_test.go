// internal/repository/errors_test.go
package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"jobapp-back/internal/apperrors"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want apperrors.Kind
	}{
		{"record not found", gorm.ErrRecordNotFound, apperrors.KindNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, apperrors.KindConflict},
		{"pg unique violation", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), apperrors.KindConflict},
		{"sqlite unique violation", errors.New("UNIQUE constraint failed: users.email"), apperrors.KindConflict},
		{"anything else", errors.New("connection refused"), apperrors.KindDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.in, "user")
			assert.Equal(t, tt.want, apperrors.KindOf(err))
		})
	}

	assert.NoError(t, translateError(nil, "user"))
}

func TestTranslateErrorMessages(t *testing.T) {
	err := translateError(gorm.ErrRecordNotFound, "submission")
	assert.EqualError(t, err, "NOT_FOUND: submission not found")

	err = translateError(gorm.ErrDuplicatedKey, "user")
	assert.Contains(t, err.Error(), "user already exists")
}
