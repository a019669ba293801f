package openwebui

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LISTING

// ListTools returns every tool available to the current user,
// including tools provided by external tool servers.
func (c *Client) ListTools(ctx context.Context) ([]schema.Tool, error) {
	// Perform request
	var response []schema.Tool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListAllTools returns the tools the current user has write access
// to.
func (c *Client) ListAllTools(ctx context.Context) ([]schema.Tool, error) {
	// Perform request
	var response []schema.Tool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ExportTools returns every tool the current user can read, with
// full source code.
func (c *Client) ExportTools(ctx context.Context) ([]schema.Tool, error) {
	// Perform request
	var response []schema.Tool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/export")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// LoadToolFromURL fetches tool source code from a URL and returns its
// name and content, without creating the tool.
func (c *Client) LoadToolFromURL(ctx context.Context, url string) (map[string]any, error) {
	if url == "" {
		return nil, ErrBadParameter.With("url")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		URL string `json:"url"`
	}{URL: url})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tools/load/url")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreateTool creates a new tool from source code. The server parses
// the code to derive the function specifications.
func (c *Client) CreateTool(ctx context.Context, form schema.ToolForm) (*schema.Tool, error) {
	if form.ID == "" {
		return nil, ErrBadParameter.With("id")
	} else if form.Content == "" {
		return nil, ErrBadParameter.With("content")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Tool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tools/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetTool returns a tool with its source code.
func (c *Client) GetTool(ctx context.Context, id string) (*schema.Tool, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response schema.Tool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/id", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateTool updates a tool's source code, name or access control.
func (c *Client) UpdateTool(ctx context.Context, id string, form schema.ToolForm) (*schema.Tool, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Tool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tools/id", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteTool removes a tool.
func (c *Client) DeleteTool(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/tools/id", id, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VALVES

// GetToolValves returns the current valve settings of a tool.
func (c *Client) GetToolValves(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/id", id, "valves")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetToolValvesSpec returns the JSON schema for a tool's valves.
func (c *Client) GetToolValvesSpec(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/id", id, "valves/spec")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateToolValves replaces the valve settings of a tool.
func (c *Client) UpdateToolValves(ctx context.Context, id string, valves map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Create request
	req, err := client.NewJSONRequest(valves)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tools/id", id, "valves/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetToolUserValves returns the current user's valve settings for a
// tool.
func (c *Client) GetToolUserValves(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/id", id, "valves/user")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetToolUserValvesSpec returns the JSON schema for a tool's
// per-user valves.
func (c *Client) GetToolUserValvesSpec(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tools/id", id, "valves/user/spec")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateToolUserValves replaces the current user's valve settings for
// a tool.
func (c *Client) UpdateToolUserValves(ctx context.Context, id string, valves map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("tool id")
	}

	// Create request
	req, err := client.NewJSONRequest(valves)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tools/id", id, "valves/user/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
