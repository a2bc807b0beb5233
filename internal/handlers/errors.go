// internal/handlers/errors.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"jobapp-back/internal/apperrors"
)

// respondError writes the structured error body for any pipeline error.
// Messages of server-side faults are elided outside debug mode.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := apperrors.HTTPStatus(kind)

	message := "An internal error occurred"
	var details map[string]string
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		details = appErr.Details
		if status < 500 || gin.Mode() == gin.DebugMode {
			message = appErr.Message
		}
	}

	body := gin.H{
		"success":    false,
		"error":      message,
		"code":       string(kind),
		"statusCode": status,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, body)
}
