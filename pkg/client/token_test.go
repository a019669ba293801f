package client_test

import (
	"sync"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_token_001(t *testing.T) {
	// The zero value means no credential
	assert := assert.New(t)
	var token client.Token
	assert.True(token.IsZero())

	token = client.Token{Scheme: client.Bearer, Value: "sk-123"}
	assert.False(token.IsZero())
	assert.Equal("Bearer sk-123", token.String())
}

func Test_token_002(t *testing.T) {
	// The credential can be set, replaced and removed
	assert := assert.New(t)
	c, err := client.New(client.OptEndpoint("https://example.com/api"))
	assert.NoError(err)
	assert.True(c.Token().IsZero())

	c.SetToken(client.Token{Scheme: client.Bearer, Value: "one"})
	assert.Equal("one", c.Token().Value)

	c.SetToken(client.Token{Scheme: client.Bearer, Value: "two"})
	assert.Equal("two", c.Token().Value)

	c.DeleteToken()
	assert.True(c.Token().IsZero())
}

func Test_token_003(t *testing.T) {
	// Concurrent readers and writers do not race
	assert := assert.New(t)
	c, err := client.New(client.OptEndpoint("https://example.com/api"))
	assert.NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.SetToken(client.Token{Scheme: client.Bearer, Value: "value"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Token()
			}
		}()
	}
	wg.Wait()
	assert.Equal("value", c.Token().Value)
}
