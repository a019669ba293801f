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

// ListUsers returns a page of users with their group memberships.
// Use WithQuery to filter by name or email, WithOrderBy and
// WithDirection to sort, and WithPage to paginate.
func (c *Client) ListUsers(ctx context.Context, opts ...opt.Opt) (*schema.UserList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/users/")}
	if q := o.Query(opt.QueryKey, opt.OrderByKey, opt.DirectionKey, opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.UserList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListAllUsers returns abbreviated information for every user.
func (c *Client) ListAllUsers(ctx context.Context) (*schema.UserInfoList, error) {
	// Perform request
	var response schema.UserInfoList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/all")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SearchUsers returns users whose name or email matches the query.
func (c *Client) SearchUsers(ctx context.Context, query string) (*schema.UserNameList, error) {
	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/users/search")}
	if query != "" {
		reqOpts = append(reqOpts, client.OptQuery(url.Values{"query": []string{query}}))
	}

	// Perform request
	var response schema.UserNameList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CURRENT USER

// GetUserGroups returns the groups the current user belongs to.
func (c *Client) GetUserGroups(ctx context.Context) ([]schema.Group, error) {
	// Perform request
	var response []schema.Group
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/groups")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetUserPermissions returns the current user's effective permissions.
func (c *Client) GetUserPermissions(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/permissions")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetUserSettings returns the current user's settings, or nil when the
// user has never stored any.
func (c *Client) GetUserSettings(ctx context.Context) (*schema.UserSettings, error) {
	// Perform request
	var response *schema.UserSettings
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/user/settings")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateUserSettings replaces the current user's settings.
func (c *Client) UpdateUserSettings(ctx context.Context, settings schema.UserSettings) (*schema.UserSettings, error) {
	// Create request
	req, err := client.NewJSONRequest(settings)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.UserSettings
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users/user/settings/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetUserStatus returns the current user, including presence status.
func (c *Client) GetUserStatus(ctx context.Context) (*schema.User, error) {
	// Perform request
	var response schema.User
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/user/status")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateUserStatus sets the current user's presence status.
func (c *Client) UpdateUserStatus(ctx context.Context, status schema.UserStatus) (*schema.User, error) {
	// Create request
	req, err := client.NewJSONRequest(status)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.User
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users/user/status/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetUserInfo returns the free-form info dictionary stored on the
// current user, or nil when none is stored.
func (c *Client) GetUserInfo(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/user/info")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateUserInfo merges the given keys into the current user's info
// dictionary and returns the merged result.
func (c *Client) UpdateUserInfo(ctx context.Context, info map[string]any) (map[string]any, error) {
	// Create request
	req, err := client.NewJSONRequest(info)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users/user/info/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - DEFAULT PERMISSIONS

// GetDefaultPermissions returns the permission set applied to new users.
func (c *Client) GetDefaultPermissions(ctx context.Context) (*schema.UserPermissions, error) {
	// Perform request
	var response schema.UserPermissions
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users/default/permissions")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateDefaultPermissions replaces the permission set applied to new
// users.
func (c *Client) UpdateDefaultPermissions(ctx context.Context, permissions schema.UserPermissions) (*schema.UserPermissions, error) {
	// Create request
	req, err := client.NewJSONRequest(permissions)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.UserPermissions
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users/default/permissions")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - USER BY ID

// GetUser returns a user by id, including presence information.
func (c *Client) GetUser(ctx context.Context, id string) (*schema.UserActive, error) {
	if id == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Perform request
	var response schema.UserActive
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateUser updates a user by id, including role and password changes.
func (c *Client) UpdateUser(ctx context.Context, id string, form schema.UserUpdateForm) (*schema.User, error) {
	if id == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.User
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("user id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/users", id)); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// GetUserOAuthSessions returns the federated login sessions for a user.
func (c *Client) GetUserOAuthSessions(ctx context.Context, id string) ([]schema.OAuthSession, error) {
	if id == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Perform request
	var response []schema.OAuthSession
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users", id, "oauth/sessions")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetUserProfileImage returns the raw image content for a user's
// profile picture.
func (c *Client) GetUserProfileImage(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodGet, client.ContentTypeAny)

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/users", id, "profile/image")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetUserActiveStatus reports whether a user is currently active.
func (c *Client) GetUserActiveStatus(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("user id")
	}

	// Perform request
	var response struct {
		Active bool `json:"active"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users", id, "active")); err != nil {
		return false, err
	}

	// Return the response
	return response.Active, nil
}

// GetGroupsForUser returns the groups a user belongs to.
func (c *Client) GetGroupsForUser(ctx context.Context, id string) ([]schema.Group, error) {
	if id == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Perform request
	var response []schema.Group
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/users", id, "groups")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
