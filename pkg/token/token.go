package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyLength is the length of a generated token key in hex characters.
const KeyLength = 40

// NewKey generates an opaque 40-character hex token key.
func NewKey() (string, error) {
	buf := make([]byte, KeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
