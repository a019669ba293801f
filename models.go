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
// PUBLIC METHODS

// ListModels returns a page of workspace models. Use WithQuery, WithTag
// and WithView to filter, WithOrderBy and WithDirection to sort, and
// WithPage to paginate.
func (c *Client) ListModels(ctx context.Context, opts ...opt.Opt) (*schema.ModelList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/models/list")}
	if q := o.Query(opt.QueryKey, opt.ViewKey, opt.TagKey, opt.OrderByKey, opt.DirectionKey, opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.ModelList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListBaseModels returns the base models available to build workspace
// models on.
func (c *Client) ListBaseModels(ctx context.Context) ([]schema.Model, error) {
	// Perform request
	var response []schema.Model
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/models/base")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListModelTags returns the tag names in use across workspace models.
func (c *Client) ListModelTags(ctx context.Context) ([]string, error) {
	// Perform request
	var response []string
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/models/tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreateModel creates a workspace model.
func (c *Client) CreateModel(ctx context.Context, form schema.ModelForm) (*schema.Model, error) {
	if form.ID == "" {
		return nil, ErrBadParameter.With("model id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Model
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/models/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetModel returns a workspace model by id.
func (c *Client) GetModel(ctx context.Context, id string) (*schema.Model, error) {
	if id == "" {
		return nil, ErrBadParameter.With("model id")
	}

	// Create request
	reqOpts := []client.RequestOpt{
		client.OptPath("v1/models/model"),
		client.OptQuery(url.Values{"id": []string{id}}),
	}

	// Perform request
	var response schema.Model
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetModelProfileImage returns the raw image content for a model's
// profile picture.
func (c *Client) GetModelProfileImage(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrBadParameter.With("model id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodGet, client.ContentTypeAny)
	reqOpts := []client.RequestOpt{
		client.OptPath("v1/models/model/profile/image"),
		client.OptQuery(url.Values{"id": []string{id}}),
	}

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ToggleModel toggles whether a workspace model is active and returns
// the updated model.
func (c *Client) ToggleModel(ctx context.Context, id string) (*schema.Model, error) {
	if id == "" {
		return nil, ErrBadParameter.With("model id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)
	reqOpts := []client.RequestOpt{
		client.OptPath("v1/models/model/toggle"),
		client.OptQuery(url.Values{"id": []string{id}}),
	}

	// Perform request
	var response schema.Model
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateModel updates the workspace model identified by the form's id.
func (c *Client) UpdateModel(ctx context.Context, form schema.ModelForm) (*schema.Model, error) {
	if form.ID == "" {
		return nil, ErrBadParameter.With("model id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Model
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/models/model/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteModel removes a workspace model by id.
func (c *Client) DeleteModel(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("model id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		ID string `json:"id"`
	}{id})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/models/model/delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// DeleteAllModels removes every workspace model.
func (c *Client) DeleteAllModels(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/models/delete/all")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ExportModels returns every workspace model for backup.
func (c *Client) ExportModels(ctx context.Context) ([]schema.Model, error) {
	// Perform request
	var response []schema.Model
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/models/export")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ImportModels imports previously exported models. Each entry is the
// raw model dictionary from an export.
func (c *Client) ImportModels(ctx context.Context, models []map[string]any) (bool, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Models []map[string]any `json:"models"`
	}{models})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/models/import")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// SyncModels replaces the workspace model set with the given models and
// returns the stored set.
func (c *Client) SyncModels(ctx context.Context, models []schema.Model) ([]schema.Model, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Models []schema.Model `json:"models"`
	}{models})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Model
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/models/sync")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
