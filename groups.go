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

// ListGroups returns all groups visible to the current user. Admins see
// every group. Use WithShare to filter by share status.
func (c *Client) ListGroups(ctx context.Context, opts ...opt.Opt) ([]schema.Group, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/groups/")}
	if q := o.Query(opt.ShareKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []schema.Group
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context, form schema.GroupForm) (*schema.Group, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/groups/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetGroup returns a group by id.
func (c *Client) GetGroup(ctx context.Context, id string) (*schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/groups/id", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ExportGroup returns a group by id including its member user ids, for
// backup or migration.
func (c *Client) ExportGroup(ctx context.Context, id string) (*schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/groups/id", id, "export")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetGroupUsers returns the members of a group.
func (c *Client) GetGroupUsers(ctx context.Context, id string) ([]schema.UserInfo, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response []schema.UserInfo
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/groups/id", id, "users")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateGroup updates a group by id.
func (c *Client) UpdateGroup(ctx context.Context, id string, form schema.GroupForm) (*schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/groups/id", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// AddGroupUsers adds users to a group by user id.
func (c *Client) AddGroupUsers(ctx context.Context, id string, userIDs ...string) (*schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Create request
	req, err := client.NewJSONRequest(schema.GroupUserIDsForm{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/groups/id", id, "users/add")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// RemoveGroupUsers removes users from a group by user id.
func (c *Client) RemoveGroupUsers(ctx context.Context, id string, userIDs ...string) (*schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("group id")
	}

	// Create request
	req, err := client.NewJSONRequest(schema.GroupUserIDsForm{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Group
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/groups/id", id, "users/remove")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteGroup removes a group by id.
func (c *Client) DeleteGroup(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("group id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/groups/id", id, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
