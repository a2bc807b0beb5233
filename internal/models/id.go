// internal/models/id.go
package models

import (
	"crypto/rand"
	"regexp"
)

// Record identifiers are 20-character alphanumeric tokens that always start
// with a letter, so they survive URL paths and filenames unquoted.
const idLength = 20

const (
	idLetters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idAlphabet = idLetters + "0123456789"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{19}$`)

// NewID generates a new record identifier.
func NewID() string {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	id := make([]byte, idLength)
	id[0] = idLetters[int(buf[0])%len(idLetters)]
	for i := 1; i < idLength; i++ {
		id[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(id)
}

// ValidID reports whether s has the shape of a record identifier.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}
