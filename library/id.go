package library

import (
	"crypto/rand"
	"encoding/hex"
)

// newBookId returns 8 hex characters from 4 random bytes. Collisions are
// unlikely enough at catalog sizes that existing ids aren't checked.
func newBookId() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
