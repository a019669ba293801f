package openwebui

import (
	"context"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListFolders returns the folders belonging to the current user.
func (c *Client) ListFolders(ctx context.Context) ([]schema.Folder, error) {
	// Perform request
	var response []schema.Folder
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/folders/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreateFolder creates a new folder.
func (c *Client) CreateFolder(ctx context.Context, form schema.FolderForm) (*schema.Folder, error) {
	if form.Name == "" {
		return nil, ErrBadParameter.With("name")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Folder
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/folders/")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetFolder returns a folder by its identifier.
func (c *Client) GetFolder(ctx context.Context, id string) (*schema.Folder, error) {
	if id == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Perform request
	var response schema.Folder
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/folders", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateFolder updates the name, data or metadata of a folder. Unset
// form fields are left unchanged.
func (c *Client) UpdateFolder(ctx context.Context, id string, form schema.FolderForm) (*schema.Folder, error) {
	if id == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Folder
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/folders", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// MoveFolder moves a folder under a new parent. An empty parent
// moves the folder to the root.
func (c *Client) MoveFolder(ctx context.Context, id, parentID string) (*schema.Folder, error) {
	if id == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Create request, where a null parent means the root
	form := struct {
		ParentID *string `json:"parent_id"`
	}{}
	if parentID != "" {
		form.ParentID = types.Ptr(parentID)
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Folder
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/folders", id, "update/parent")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetFolderExpanded updates the expansion state of a folder.
func (c *Client) SetFolderExpanded(ctx context.Context, id string, expanded bool) (*schema.Folder, error) {
	if id == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		IsExpanded bool `json:"is_expanded"`
	}{IsExpanded: expanded})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Folder
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/folders", id, "update/expanded")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteFolder removes a folder and its contents. Use
// WithDeleteContents(false) to keep chats, which are detached rather
// than removed.
func (c *Client) DeleteFolder(ctx context.Context, id string, opts ...opt.Opt) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("folder id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return false, err
	}

	// Contents are removed with the folder unless requested otherwise
	query := url.Values{opt.ContentsKey: []string{"true"}}
	for key, values := range o.Query(opt.ContentsKey) {
		query[key] = values
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/folders", id), client.OptQuery(query)); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
