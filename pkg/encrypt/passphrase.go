package encrypt

import (
	"crypto/rand"
	"fmt"
	"strings"

	// Packages
	argon2 "golang.org/x/crypto/argon2"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Key is a 256-bit AES key derived from a passphrase and salt.
type Key []byte

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// SaltSize is the length in bytes of the random salt leading each blob.
	SaltSize = 16

	// MinPassphraseLen is the minimum accepted passphrase length, after
	// trimming surrounding whitespace.
	MinPassphraseLen = 8
)

// Argon2id cost parameters. Changing these invalidates existing blobs,
// since the derivation is not versioned.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ValidatePassphrase reports whether a passphrase is acceptable for
// sealing: it must not be empty or whitespace, and must be at least
// MinPassphraseLen characters long.
func ValidatePassphrase(passphrase string) error {
	switch trimmed := strings.TrimSpace(passphrase); {
	case trimmed == "":
		return fmt.Errorf("passphrase must not be empty")
	case len(trimmed) < MinPassphraseLen:
		return fmt.Errorf("passphrase must be at least %d characters", MinPassphraseLen)
	}
	return nil
}

// DeriveKey derives the sealing key for a passphrase and salt using
// Argon2id. The same passphrase and salt always derive the same key.
func DeriveKey(passphrase string, salt []byte) Key {
	return Key(argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen))
}

// GenerateSalt draws a new random salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
