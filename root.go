package openwebui

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - APPLICATION

// Version returns the application version and deployment identifier.
func (c *Client) Version(ctx context.Context) (*schema.Version, error) {
	// Perform request
	var response schema.Version
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("version")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// Changelog returns the most recent changelog entries, keyed by
// version.
func (c *Client) Changelog(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("changelog")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// Health reports whether the application is up. The health endpoint
// lives at the server root rather than under the API path.
func (c *Client) Health(ctx context.Context) (bool, error) {
	// Perform request
	var response struct {
		Status bool `json:"status"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptAbsPath("health")); err != nil {
		return false, err
	}

	// Return the response
	return response.Status, nil
}

// Config returns the public application configuration. Authenticated
// requests also receive the default models and permissions applying to
// the session user.
func (c *Client) Config(ctx context.Context) (*schema.AppConfig, error) {
	// Perform request
	var response schema.AppConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetWebhookURL returns the webhook URL notified when a new user signs
// up.
func (c *Client) GetWebhookURL(ctx context.Context) (string, error) {
	// Perform request
	var response struct {
		URL string `json:"url"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("webhook")); err != nil {
		return "", err
	}

	// Return the response
	return response.URL, nil
}

// UpdateWebhookURL replaces the webhook URL and returns the stored
// value.
func (c *Client) UpdateWebhookURL(ctx context.Context, url string) (string, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		URL string `json:"url"`
	}{url})
	if err != nil {
		return "", err
	}

	// Perform request
	var response struct {
		URL string `json:"url"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("webhook")); err != nil {
		return "", err
	}

	// Return the response
	return response.URL, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MODELS AND COMPLETIONS

// Models returns the unified model list: every model from the
// configured providers merged with the workspace presets, filtered by
// the session user's access.
func (c *Client) Models(ctx context.Context) ([]schema.UnifiedModel, error) {
	// Perform request
	var response schema.UnifiedModelList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("models")); err != nil {
		return nil, err
	}

	// Return the response
	return response.Data, nil
}

// ChatCompletion generates a chat completion through the unified
// endpoint. Streaming is disabled on the request, so the call blocks
// until the completion is finished. Completions can run for longer
// than the client timeout allows.
func (c *Client) ChatCompletion(ctx context.Context, request schema.CompletionRequest) (*schema.Completion, error) {
	if request.Model == "" {
		return nil, ErrBadParameter.With("model")
	}
	if len(request.Messages) == 0 {
		return nil, ErrBadParameter.With("messages")
	}

	// Create request. Streaming responses are not supported.
	request.Stream = false
	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Completion
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("chat/completions"), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// Embeddings generates embeddings for the input through the unified
// endpoint. The input is a string or a list of strings.
func (c *Client) Embeddings(ctx context.Context, request schema.EmbeddingRequest) (*schema.EmbeddingList, error) {
	if request.Model == "" {
		return nil, ErrBadParameter.With("model")
	}
	if request.Input == nil {
		return nil, ErrBadParameter.With("input")
	}

	// Create request
	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.EmbeddingList
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("embeddings")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
