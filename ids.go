package biashara

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh random (version 4) identifier for a record.
func NewID() string { return uuid.NewString() }

// token returns n uppercase hexadecimal characters taken from a random UUID.
func token(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// NewSKU returns a generated stock keeping unit for items created without one.
func NewSKU() string { return token(9) }
