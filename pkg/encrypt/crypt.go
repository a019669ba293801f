/*
Package encrypt seals small secrets, such as stored API tokens, with a
passphrase. Blobs are AES-256-GCM sealed under a key derived from the
passphrase with Argon2id, and carry their own salt and nonce:

	salt (16 bytes) || nonce (12 bytes) || ciphertext || tag

A blob can only be opened with the passphrase it was sealed with, and
any modification of the blob is detected when opening it.
*/
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Encrypt seals the plaintext under the passphrase. Each call draws a
// fresh salt, so sealing the same plaintext twice yields different
// blobs.
func Encrypt[T interface{ []byte | string }](passphrase string, plaintext T) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	sealed, err := DeriveKey(passphrase, salt).Encrypt([]byte(plaintext))
	if err != nil {
		return nil, err
	}

	// The salt leads the blob so Decrypt can re-derive the key
	blob := make([]byte, 0, len(salt)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, sealed...)
	return blob, nil
}

// Decrypt opens a blob produced by Encrypt, returning the plaintext as
// bytes or as a string depending on the type parameter. Opening fails
// when the passphrase differs or the blob has been modified.
func Decrypt[T interface{ []byte | string }](passphrase string, blob []byte) (T, error) {
	var zero T
	if len(blob) <= SaltSize {
		return zero, fmt.Errorf("decrypt: blob too short")
	}
	plaintext, err := DeriveKey(passphrase, blob[:SaltSize]).Decrypt(blob[SaltSize:])
	if err != nil {
		return zero, err
	}
	return T(plaintext), nil
}

// Encrypt seals the plaintext under the key with a random nonce and
// returns nonce || ciphertext || tag.
func (k Key) Encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := k.aead()
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens sealed data produced by Key.Encrypt.
func (k Key) Decrypt(sealed []byte) ([]byte, error) {
	gcm, err := k.aead()
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, fmt.Errorf("decrypt: sealed data too short")
	}
	nonce, data := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (k Key) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
