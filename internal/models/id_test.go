// internal/models/id_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Len(t, id, 20)
		require.True(t, ValidID(id), "generated id %q must validate", id)
		require.False(t, seen[id], "id %q generated twice", id)
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("aB3dEfGh1jKlMnOpQrSt"))

	for _, bad := range []string{
		"",
		"short",
		"1bcdefghijklmnopqrst",  // leading digit
		"abcdefghijklmnopqrs-",  // non-alphanumeric
		"abcdefghijklmnopqrstu", // too long
		"../../../../etc/pass",  // traversal shaped
		"abcdefghij klmnopqrs",  // whitespace
	} {
		assert.False(t, ValidID(bad), "id %q must be rejected", bad)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRejected} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("DONE"))
	assert.False(t, ValidStatus("pending"))
}
