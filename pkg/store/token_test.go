package store_test

import (
	"context"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	store "github.com/mutablelogic/go-openwebui/pkg/store"
	assert "github.com/stretchr/testify/assert"
)

// tokenStoreTests defines shared behavioural tests for any TokenStore
// implementation.
var tokenStoreTests = []struct {
	Name string
	Fn   func(t *testing.T, s store.TokenStore)
}{{
	Name: "GetNotFound",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		_, err := s.GetToken(context.Background(), "https://example.com")
		assert.Error(err)
		assert.ErrorIs(err, client.ErrNotFound)
	},
}, {
	Name: "SetAndGet",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		ctx := context.Background()

		token := client.Token{Scheme: client.Bearer, Value: "sk-abc123"}
		assert.NoError(s.SetToken(ctx, "https://example.com", token))

		got, err := s.GetToken(ctx, "https://example.com")
		assert.NoError(err)
		assert.Equal(client.Bearer, got.Scheme)
		assert.Equal("sk-abc123", got.Value)
	},
}, {
	Name: "Delete",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		ctx := context.Background()

		token := client.Token{Scheme: client.Bearer, Value: "sk-abc123"}
		assert.NoError(s.SetToken(ctx, "https://example.com", token))
		assert.NoError(s.DeleteToken(ctx, "https://example.com"))

		// Get after delete returns error
		_, err := s.GetToken(ctx, "https://example.com")
		assert.Error(err)
	},
}, {
	Name: "DeleteNotFound",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		err := s.DeleteToken(context.Background(), "https://example.com")
		assert.Error(err)
		assert.ErrorIs(err, client.ErrNotFound)
	},
}, {
	Name: "SetOverwrites",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		ctx := context.Background()

		assert.NoError(s.SetToken(ctx, "https://example.com", client.Token{Scheme: client.Bearer, Value: "old"}))
		assert.NoError(s.SetToken(ctx, "https://example.com", client.Token{Scheme: client.Bearer, Value: "new"}))

		got, err := s.GetToken(ctx, "https://example.com")
		assert.NoError(err)
		assert.Equal("new", got.Value)
	},
}, {
	Name: "MultipleURLs",
	Fn: func(t *testing.T, s store.TokenStore) {
		assert := assert.New(t)
		ctx := context.Background()

		assert.NoError(s.SetToken(ctx, "https://a.example.com", client.Token{Scheme: client.Bearer, Value: "token-a"}))
		assert.NoError(s.SetToken(ctx, "https://b.example.com", client.Token{Scheme: client.Bearer, Value: "token-b"}))

		got1, err := s.GetToken(ctx, "https://a.example.com")
		assert.NoError(err)
		assert.Equal("token-a", got1.Value)

		got2, err := s.GetToken(ctx, "https://b.example.com")
		assert.NoError(err)
		assert.Equal("token-b", got2.Value)
	},
}}

// runTokenStoreTests runs every shared behavioural test against a
// token store implementation. The factory is called once per subtest
// so each gets a clean, independent store.
func runTokenStoreTests(t *testing.T, factory func() store.TokenStore) {
	t.Helper()
	for _, tt := range tokenStoreTests {
		t.Run(tt.Name, func(t *testing.T) {
			tt.Fn(t, factory())
		})
	}
}
