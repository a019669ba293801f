package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	encrypt "github.com/mutablelogic/go-openwebui/pkg/encrypt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryTokenStore is an in-memory implementation of TokenStore.
// Tokens are encrypted at rest using AES-256-GCM with a per-entry
// salt. It is safe for concurrent use.
type MemoryTokenStore struct {
	mu         sync.RWMutex
	passphrase string
	tokens     map[string][]byte // keyed by server URL, value is encrypted blob
}

var _ TokenStore = (*MemoryTokenStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryTokenStore creates a new empty in-memory token store. The
// passphrase is used to encrypt and decrypt tokens.
func NewMemoryTokenStore(passphrase string) (*MemoryTokenStore, error) {
	if err := encrypt.ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}
	return &MemoryTokenStore{
		passphrase: passphrase,
		tokens:     make(map[string][]byte),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetToken retrieves the token for the given server URL.
func (s *MemoryTokenStore) GetToken(_ context.Context, url string) (*client.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.tokens[url]
	if !ok {
		return nil, client.ErrNotFound.Withf("token not found for %q", url)
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
func (s *MemoryTokenStore) SetToken(_ context.Context, url string, token client.Token) error {
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
	s.tokens[url] = blob
	return nil
}

// DeleteToken removes the token for the given server URL.
func (s *MemoryTokenStore) DeleteToken(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[url]; !ok {
		return client.ErrNotFound.Withf("token not found for %q", url)
	}
	delete(s.tokens, url)
	return nil
}
