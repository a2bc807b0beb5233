// internal/validation/form.go
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Job description bounds. Two conflicting policies existed historically;
// 10-5000 characters with a 5 word minimum is the canonical rule and is
// applied on every path.
const (
	NameMinLen = 2
	NameMaxLen = 50

	JobDescriptionMinLen   = 10
	JobDescriptionMaxLen   = 5000
	JobDescriptionMinWords = 5
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{6,19}$`)

	dangerousRe = regexp.MustCompile(`[<>"'&]`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// FormInput is the raw form data as received from the client.
type FormInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	JobDescription string
}

// FormData holds the sanitized values that are safe to persist.
type FormData struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	JobDescription string
}

// Errors maps a field name to a human-readable message. An empty map means
// the input is valid.
type Errors map[string]string

// Sanitize strips dangerous characters and collapses whitespace runs.
func Sanitize(s string) string {
	s = dangerousRe.ReplaceAllString(s, "")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ValidateForm checks all form fields and returns the sanitized data plus a
// field-to-message error map. It has no side effects.
func ValidateForm(in FormInput) (FormData, Errors) {
	errs := Errors{}

	first := Sanitize(in.FirstName)
	if msg := checkName(first); msg != "" {
		errs["firstName"] = msg
	}

	last := Sanitize(in.LastName)
	if msg := checkName(last); msg != "" {
		errs["lastName"] = msg
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "email is not a valid address"
	}

	phone := strings.TrimSpace(in.Phone)
	if phone != "" && !phoneRe.MatchString(phone) {
		errs["phone"] = "phone is not a valid phone number"
	}

	desc := strings.TrimSpace(in.JobDescription)
	switch {
	case len(desc) < JobDescriptionMinLen:
		errs["jobDescription"] = fmt.Sprintf("job description must be at least %d characters", JobDescriptionMinLen)
	case len(desc) > JobDescriptionMaxLen:
		errs["jobDescription"] = fmt.Sprintf("job description must be at most %d characters", JobDescriptionMaxLen)
	case wordCount(desc) < JobDescriptionMinWords:
		errs["jobDescription"] = fmt.Sprintf("job description must contain at least %d words", JobDescriptionMinWords)
	}

	return FormData{
		FirstName:      first,
		LastName:       last,
		Email:          email,
		Phone:          phone,
		JobDescription: desc,
	}, errs
}

func checkName(name string) string {
	if name == "" {
		return "name is required"
	}
	if len(name) < NameMinLen || len(name) > NameMaxLen {
		return fmt.Sprintf("name must be between %d and %d characters", NameMinLen, NameMaxLen)
	}
	if !nameRe.MatchString(name) {
		return "name may only contain letters, spaces, hyphens and apostrophes"
	}
	return ""
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
