// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the application taxonomy. Handlers map a
// Kind to an HTTP status; repositories and storage translate raw store and
// filesystem errors into a Kind exactly once, at their own boundary.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindFileUpload     Kind = "FILE_UPLOAD_ERROR"
	KindPDFGeneration  Kind = "PDF_GENERATION_ERROR"
	KindDatabase       Kind = "DATABASE_ERROR"
	KindPathTraversal  Kind = "PATH_TRAVERSAL"
	KindFSNotFound     Kind = "FILE_NOT_FOUND"
	KindFSPermission   Kind = "FILE_PERMISSION_DENIED"
	KindFSNoSpace      Kind = "FILE_NO_SPACE"
	KindFSTooManyFiles Kind = "FILE_TOO_MANY_OPEN"
	KindInternal       Kind = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is match two *Error values by Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func FileUpload(message string) *Error {
	return &Error{Kind: KindFileUpload, Message: message}
}

func PDFGeneration(err error) *Error {
	return &Error{Kind: KindPDFGeneration, Message: "failed to generate PDF", Err: err}
}

func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Message: "database error", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the taxonomy kind from err, or KindInternal when err was
// never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsClassified reports whether err carries a taxonomy kind. Classified
// errors are operational: they describe an expected failure and must not be
// retried.
func IsClassified(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// HTTPStatus maps a Kind to the response status the HTTP layer uses.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindFileUpload, KindPathTraversal:
		return http.StatusBadRequest
	case KindNotFound, KindFSNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindFSPermission:
		return http.StatusForbidden
	case KindFSNoSpace:
		return http.StatusInsufficientStorage
	case KindFSTooManyFiles:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
