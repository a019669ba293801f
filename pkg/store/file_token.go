package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	encrypt "github.com/mutablelogic/go-openwebui/pkg/encrypt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileTokenStore is a filesystem-backed implementation of TokenStore.
// Each token is stored as a separate binary file in a directory, keyed
// by a SHA-256 hash of the server URL. The file contains the raw
// encrypted blob (salt || nonce || ciphertext) with no wrapper or
// metadata. Tokens are encrypted at rest using AES-256-GCM with a
// per-entry salt. It is safe for concurrent use.
type FileTokenStore struct {
	mu         sync.RWMutex
	passphrase string
	dir        string
}

var _ TokenStore = (*FileTokenStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFileTokenStore creates a new file-backed token store rooted at dir.
// The directory is created (with parents) if it does not already exist.
// The passphrase is used to encrypt and decrypt tokens.
func NewFileTokenStore(passphrase, dir string) (*FileTokenStore, error) {
	if err := encrypt.ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &FileTokenStore{
		passphrase: passphrase,
		dir:        dir,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetToken retrieves the token for the given server URL.
func (s *FileTokenStore) GetToken(_ context.Context, url string) (*client.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, err := os.ReadFile(s.path(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, client.ErrNotFound.Withf("token not found for %q", url)
		}
		return nil, fmt.Errorf("token read failed for %q: %w", url, err)
	}

	plaintext, err := encrypt.Decrypt[[]byte](s.passphrase, blob)
	if err != nil {
		return nil, fmt.Errorf("token decrypt failed for %q: %w", url, err)
	}

	var token client.Token
	if err := json.Unmarshal(plaintext, &token); err != nil {
		return nil, fmt.Errorf("token unmarshal failed for %q: %w", url, err)
	}
	return &token, nil
}

// SetToken stores (or replaces) the token for the given server URL.
func (s *FileTokenStore) SetToken(_ context.Context, url string, token client.Token) error {
	plaintext, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("token marshal failed: %w", err)
	}

	blob, err := encrypt.Encrypt(s.passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("token encrypt failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(url), blob, FilePerm); err != nil {
		return fmt.Errorf("token write failed for %q: %w", url, err)
	}
	return nil
}

// DeleteToken removes the token for the given server URL.
func (s *FileTokenStore) DeleteToken(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(url)); err != nil {
		if os.IsNotExist(err) {
			return client.ErrNotFound.Withf("token not found for %q", url)
		}
		return fmt.Errorf("token delete failed for %q: %w", url, err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// path returns the filesystem path for a given server URL.
func (s *FileTokenStore) path(url string) string {
	return hashPath(s.dir, url, tokenExt)
}
