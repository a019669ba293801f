package openwebui

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListPrompts returns the prompts accessible to the current user.
func (c *Client) ListPrompts(ctx context.Context) ([]schema.Prompt, error) {
	// Perform request
	var response []schema.Prompt
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/prompts/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListAllPrompts returns the prompts accessible to the current user,
// with owner information.
func (c *Client) ListAllPrompts(ctx context.Context) ([]schema.Prompt, error) {
	// Perform request
	var response []schema.Prompt
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/prompts/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreatePrompt creates a new prompt.
func (c *Client) CreatePrompt(ctx context.Context, form schema.PromptForm) (*schema.Prompt, error) {
	if form.Command == "" {
		return nil, ErrBadParameter.With("command")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Prompt
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/prompts/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetPrompt returns a prompt by its command, with or without the
// leading slash.
func (c *Client) GetPrompt(ctx context.Context, command string) (*schema.Prompt, error) {
	command = strings.TrimLeft(command, "/")
	if command == "" {
		return nil, ErrBadParameter.With("command")
	}

	// Perform request
	var response schema.Prompt
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/prompts/command", command)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdatePrompt updates a prompt by its command.
func (c *Client) UpdatePrompt(ctx context.Context, command string, form schema.PromptForm) (*schema.Prompt, error) {
	command = strings.TrimLeft(command, "/")
	if command == "" {
		return nil, ErrBadParameter.With("command")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Prompt
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/prompts/command", command, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeletePrompt removes a prompt by its command.
func (c *Client) DeletePrompt(ctx context.Context, command string) (bool, error) {
	command = strings.TrimLeft(command, "/")
	if command == "" {
		return false, ErrBadParameter.With("command")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/prompts/command", command, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
