package openwebui

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - IMPORT AND EXPORT

// ExportConfig returns the full system configuration. Admin only.
func (c *Client) ExportConfig(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/export")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ImportConfig merges a configuration into the system configuration
// and returns the result. Admin only.
func (c *Client) ImportConfig(ctx context.Context, config map[string]any) (map[string]any, error) {
	if config == nil {
		return nil, ErrBadParameter.With("config")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Config map[string]any `json:"config"`
	}{Config: config})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/import")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONNECTIONS

// GetConnectionsConfig returns the connections configuration. Admin
// only.
func (c *Client) GetConnectionsConfig(ctx context.Context) (*schema.ConnectionsConfig, error) {
	// Perform request
	var response schema.ConnectionsConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/connections")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetConnectionsConfig replaces the connections configuration. Admin
// only.
func (c *Client) SetConnectionsConfig(ctx context.Context, form schema.ConnectionsConfig) (*schema.ConnectionsConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ConnectionsConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/connections")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// RegisterOAuthClient registers an OAuth client for a tool server and
// returns the encrypted client information. Use WithType to prefix
// the client id. Admin only.
func (c *Client) RegisterOAuthClient(ctx context.Context, form schema.OAuthClientRegistrationForm, opts ...opt.Opt) (map[string]any, error) {
	if form.URL == "" {
		return nil, ErrBadParameter.With("url")
	} else if form.ClientID == "" {
		return nil, ErrBadParameter.With("client id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}
	reqOpts := []client.RequestOpt{client.OptPath("v1/configs/oauth/clients/register")}
	if q := o.Query(opt.TypeKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - TOOL SERVERS

// GetToolServersConfig returns the external tool server
// configuration. Admin only.
func (c *Client) GetToolServersConfig(ctx context.Context) (*schema.ToolServersConfig, error) {
	// Perform request
	var response schema.ToolServersConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/tool_servers")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetToolServersConfig replaces the external tool server
// configuration. Admin only.
func (c *Client) SetToolServersConfig(ctx context.Context, form schema.ToolServersConfig) (*schema.ToolServersConfig, error) {
	// A nil list is sent as an empty array rather than null
	if form.ToolServerConnections == nil {
		form.ToolServerConnections = []schema.ToolServerConnection{}
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ToolServersConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/tool_servers")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// VerifyToolServer checks that a tool server connection works and
// returns the server's function specifications. Admin only.
func (c *Client) VerifyToolServer(ctx context.Context, conn schema.ToolServerConnection) (map[string]any, error) {
	if conn.URL == "" {
		return nil, ErrBadParameter.With("url")
	}

	// Create request
	req, err := client.NewJSONRequest(conn)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/tool_servers/verify")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CODE EXECUTION

// GetCodeExecutionConfig returns the code execution configuration.
// Admin only.
func (c *Client) GetCodeExecutionConfig(ctx context.Context) (*schema.CodeExecutionConfig, error) {
	// Perform request
	var response schema.CodeExecutionConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/code_execution")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetCodeExecutionConfig replaces the code execution configuration.
// Admin only.
func (c *Client) SetCodeExecutionConfig(ctx context.Context, form schema.CodeExecutionConfig) (*schema.CodeExecutionConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.CodeExecutionConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/code_execution")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MODELS

// GetModelsConfig returns the model defaults and ordering
// configuration. Admin only.
func (c *Client) GetModelsConfig(ctx context.Context) (*schema.ModelsConfig, error) {
	// Perform request
	var response schema.ModelsConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/models")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetModelsConfig replaces the model defaults and ordering
// configuration. Admin only.
func (c *Client) SetModelsConfig(ctx context.Context, form schema.ModelsConfig) (*schema.ModelsConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ModelsConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/models")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - BANNERS AND SUGGESTIONS

// SetDefaultSuggestions replaces the prompt suggestions shown on the
// new chat page. Admin only.
func (c *Client) SetDefaultSuggestions(ctx context.Context, suggestions []schema.PromptSuggestion) ([]schema.PromptSuggestion, error) {
	// Create request, where a nil list is sent as an empty array rather
	// than null
	form := struct {
		Suggestions []schema.PromptSuggestion `json:"suggestions"`
	}{Suggestions: suggestions}
	if form.Suggestions == nil {
		form.Suggestions = []schema.PromptSuggestion{}
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.PromptSuggestion
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/suggestions")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetBanners returns the banners shown at the top of the chat
// interface.
func (c *Client) GetBanners(ctx context.Context) ([]schema.Banner, error) {
	// Perform request
	var response []schema.Banner
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/configs/banners")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SetBanners replaces the banners shown at the top of the chat
// interface. Admin only.
func (c *Client) SetBanners(ctx context.Context, banners []schema.Banner) ([]schema.Banner, error) {
	// Create request, where a nil list is sent as an empty array rather
	// than null
	form := struct {
		Banners []schema.Banner `json:"banners"`
	}{Banners: banners}
	if form.Banners == nil {
		form.Banners = []schema.Banner{}
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Banner
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/configs/banners")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
