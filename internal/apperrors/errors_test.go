// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindFileUpload, http.StatusBadRequest},
		{KindPathTraversal, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindFSNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindFSPermission, http.StatusForbidden},
		{KindFSNoSpace, http.StatusInsufficientStorage},
		{KindFSTooManyFiles, http.StatusServiceUnavailable},
		{KindPDFGeneration, http.StatusInternalServerError},
		{KindDatabase, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.kind), string(tt.kind))
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("user")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", Conflict("user already exists"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestIsClassified(t *testing.T) {
	assert.True(t, IsClassified(Database(errors.New("boom"))))
	assert.True(t, IsClassified(fmt.Errorf("wrap: %w", NotFound("x"))))
	assert.False(t, IsClassified(errors.New("boom")))
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("ctx: %w", NotFound("submission"))
	assert.True(t, errors.Is(err, New(KindNotFound, "")))
	assert.False(t, errors.Is(err, New(KindConflict, "")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(KindFSPermission, "permission denied", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestValidationDetails(t *testing.T) {
	err := Validation("invalid form data", map[string]string{"email": "required"})
	assert.Equal(t, "required", err.Details["email"])
	assert.Equal(t, KindValidation, err.Kind)
}
