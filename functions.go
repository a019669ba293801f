package openwebui

import (
	"context"
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LISTING

// ListFunctions returns every function. Admin only.
func (c *Client) ListFunctions(ctx context.Context) ([]schema.Function, error) {
	// Perform request
	var response []schema.Function
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListAllFunctions returns every function with owner information.
// Admin only.
func (c *Client) ListAllFunctions(ctx context.Context) ([]schema.Function, error) {
	// Perform request
	var response []schema.Function
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ExportFunctions returns every function with full source code. Use
// WithIncludeValves to include valve settings in the export.
func (c *Client) ExportFunctions(ctx context.Context, opts ...opt.Opt) ([]schema.Function, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where valves are excluded unless requested
	// otherwise
	query := url.Values{opt.ValvesKey: []string{"false"}}
	for key, values := range o.Query(opt.ValvesKey) {
		query[key] = values
	}

	// Perform request
	var response []schema.Function
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/export"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// LoadFunctionFromURL fetches function source code from a URL and
// returns its name and content, without creating the function.
func (c *Client) LoadFunctionFromURL(ctx context.Context, url string) (map[string]any, error) {
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
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/load/url")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SyncFunctions replaces the full set of functions with the ones
// given, including their valve settings. Admin only.
func (c *Client) SyncFunctions(ctx context.Context, functions []schema.Function) ([]schema.Function, error) {
	// Create request, where a nil list is sent as an empty array rather
	// than null
	form := struct {
		Functions []schema.Function `json:"functions"`
	}{Functions: functions}
	if form.Functions == nil {
		form.Functions = []schema.Function{}
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Function
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/sync")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreateFunction creates a new function from source code. The server
// parses the code to derive the function type.
func (c *Client) CreateFunction(ctx context.Context, form schema.FunctionForm) (*schema.Function, error) {
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
	var response schema.Function
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetFunction returns a function with its source code.
func (c *Client) GetFunction(ctx context.Context, id string) (*schema.Function, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response schema.Function
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/id", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ToggleFunction activates or deactivates a function.
func (c *Client) ToggleFunction(ctx context.Context, id string) (*schema.Function, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response schema.Function
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/functions/id", id, "toggle")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ToggleFunctionGlobal toggles whether a function applies to every
// model.
func (c *Client) ToggleFunctionGlobal(ctx context.Context, id string) (*schema.Function, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response schema.Function
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/functions/id", id, "toggle/global")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateFunction updates a function's source code or name.
func (c *Client) UpdateFunction(ctx context.Context, id string, form schema.FunctionForm) (*schema.Function, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Function
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/id", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteFunction removes a function.
func (c *Client) DeleteFunction(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("function id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/functions/id", id, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VALVES

// GetFunctionValves returns the current valve settings of a function.
func (c *Client) GetFunctionValves(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/id", id, "valves")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetFunctionValvesSpec returns the JSON schema for a function's
// valves.
func (c *Client) GetFunctionValvesSpec(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/id", id, "valves/spec")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateFunctionValves replaces the valve settings of a function.
func (c *Client) UpdateFunctionValves(ctx context.Context, id string, valves map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Create request
	req, err := client.NewJSONRequest(valves)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/id", id, "valves/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetFunctionUserValves returns the current user's valve settings for
// a function.
func (c *Client) GetFunctionUserValves(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/id", id, "valves/user")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetFunctionUserValvesSpec returns the JSON schema for a function's
// per-user valves.
func (c *Client) GetFunctionUserValvesSpec(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/functions/id", id, "valves/user/spec")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateFunctionUserValves replaces the current user's valve settings
// for a function.
func (c *Client) UpdateFunctionUserValves(ctx context.Context, id string, valves map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("function id")
	}

	// Create request
	req, err := client.NewJSONRequest(valves)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/functions/id", id, "valves/user/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
