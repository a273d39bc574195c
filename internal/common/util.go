package common

import (
	"strings"
)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to drop passwords read from the terminal once they are sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeEmail lowercases and trims an email address so lookups and the
// unique constraint agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
