package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListMemories returns the memories stored for the current user.
func (c *Client) ListMemories(ctx context.Context) ([]schema.Memory, error) {
	// Perform request
	var response []schema.Memory
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/memories/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// AddMemory stores a new memory for the current user.
func (c *Client) AddMemory(ctx context.Context, content string) (*schema.Memory, error) {
	if content == "" {
		return nil, ErrBadParameter.With("content")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Content string `json:"content"`
	}{Content: content})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Memory
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/memories/add")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// QueryMemory searches the current user's memories by similarity to
// the content. One result is returned unless WithLimit raises the
// count.
func (c *Client) QueryMemory(ctx context.Context, content string, opts ...opt.Opt) (*schema.MemoryQueryResult, error) {
	if content == "" {
		return nil, ErrBadParameter.With("content")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	form := struct {
		Content string `json:"content"`
		K       uint   `json:"k"`
	}{Content: content, K: 1}
	if o.Has(opt.LimitKey) {
		form.K = o.GetUint(opt.LimitKey)
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.MemoryQueryResult
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/memories/query")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateMemory replaces the content of a memory.
func (c *Client) UpdateMemory(ctx context.Context, id, content string) (*schema.Memory, error) {
	if id == "" {
		return nil, ErrBadParameter.With("memory id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Content string `json:"content"`
	}{Content: content})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Memory
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/memories", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteMemory removes a memory by its identifier.
func (c *Client) DeleteMemory(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("memory id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/memories", id)); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// DeleteAllMemories removes every memory stored for the current user.
func (c *Client) DeleteAllMemories(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/memories/delete/user")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ResetMemories rebuilds the vector index over the current user's
// memories.
func (c *Client) ResetMemories(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/memories/reset")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// GetMemoryEmbeddings returns information about the embedding
// function used for memory search.
func (c *Client) GetMemoryEmbeddings(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/memories/ef")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
