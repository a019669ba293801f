/*
Package store persists authentication tokens between command
invocations. Tokens are encrypted at rest with a passphrase, keyed by
the server URL they belong to, with a file-backed store for durable
use and an in-memory store for tests.
*/
package store

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// TokenStore persists one authentication token per server URL. All
// implementations are safe for concurrent use.
type TokenStore interface {
	// GetToken retrieves the token for the given server URL.
	GetToken(ctx context.Context, url string) (*client.Token, error)

	// SetToken stores (or replaces) the token for the given server URL.
	SetToken(ctx context.Context, url string, token client.Token) error

	// DeleteToken removes the token for the given server URL.
	DeleteToken(ctx context.Context, url string) error
}
