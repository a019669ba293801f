package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SESSION

// GetSessionUser returns the user for the current credential, including
// permissions and profile details.
func (c *Client) GetSessionUser(ctx context.Context) (*schema.SessionUser, error) {
	// Perform request
	var response schema.SessionUser
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SignIn authenticates with an email and password. When the server issues
// a session token, the client adopts it for subsequent requests.
func (c *Client) SignIn(ctx context.Context, email, password string) (*schema.SessionUser, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.SessionUser
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/signin")); err != nil {
		return nil, err
	}

	// Adopt the session token
	if response.Token != "" {
		c.SetToken(client.Token{Scheme: client.Bearer, Value: response.Token})
	}

	// Return the response
	return &response, nil
}

// SignInLDAP authenticates against the configured LDAP server. When the
// server issues a session token, the client adopts it for subsequent
// requests.
func (c *Client) SignInLDAP(ctx context.Context, user, password string) (*schema.SessionUser, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}{user, password})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.SessionUser
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/ldap")); err != nil {
		return nil, err
	}

	// Adopt the session token
	if response.Token != "" {
		c.SetToken(client.Token{Scheme: client.Bearer, Value: response.Token})
	}

	// Return the response
	return &response, nil
}

// SignUp registers a new user account. When the server issues a session
// token for the new account, the client adopts it for subsequent requests.
func (c *Client) SignUp(ctx context.Context, form schema.SignupForm) (*schema.SessionUser, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.SessionUser
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/signup")); err != nil {
		return nil, err
	}

	// Adopt the session token
	if response.Token != "" {
		c.SetToken(client.Token{Scheme: client.Bearer, Value: response.Token})
	}

	// Return the response
	return &response, nil
}

// SignOut ends the current session. The local credential is cleared even
// when the remote call fails, so the client never keeps a token the
// caller asked to discard.
func (c *Client) SignOut(ctx context.Context) (*schema.SignoutResponse, error) {
	defer c.DeleteToken()

	// Perform request
	var response schema.SignoutResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/signout")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateProfile updates the current user's name and profile image.
func (c *Client) UpdateProfile(ctx context.Context, form schema.UpdateProfileForm) (*schema.UserProfile, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.UserProfile
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/update/profile")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdatePassword changes the current user's password. The current
// password is required to authorise the change.
func (c *Client) UpdatePassword(ctx context.Context, password, newPassword string) (bool, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Password    string `json:"password"`
		NewPassword string `json:"new_password"`
	}{password, newPassword})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/update/password")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - API KEYS

// GenerateAPIKey creates a new API key for the current user, replacing
// any existing key.
func (c *Client) GenerateAPIKey(ctx context.Context) (string, error) {
	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response struct {
		APIKey *string `json:"api_key"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/api_key")); err != nil {
		return "", err
	}

	// Return the key
	return types.Value(response.APIKey), nil
}

// GetAPIKey returns the current user's API key.
func (c *Client) GetAPIKey(ctx context.Context) (string, error) {
	// Perform request
	var response struct {
		APIKey *string `json:"api_key"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/api_key")); err != nil {
		return "", err
	}

	// Return the key
	return types.Value(response.APIKey), nil
}

// DeleteAPIKey revokes the current user's API key.
func (c *Client) DeleteAPIKey(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/auths/api_key")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ADMINISTRATION

// AddUser creates a new user account with an explicit role. Unlike
// SignUp, the returned token belongs to the new account and is not
// adopted by the client.
func (c *Client) AddUser(ctx context.Context, form schema.AddUserForm) (*schema.SessionUser, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.SessionUser
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/add")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetAdminDetails returns the name and email of the administrator to
// contact for account requests.
func (c *Client) GetAdminDetails(ctx context.Context) (*schema.AdminDetails, error) {
	// Perform request
	var response schema.AdminDetails
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/admin/details")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetAdminConfig returns the global application configuration.
func (c *Client) GetAdminConfig(ctx context.Context) (*schema.AdminConfig, error) {
	// Perform request
	var response schema.AdminConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/admin/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateAdminConfig replaces the global application configuration and
// returns the stored values.
func (c *Client) UpdateAdminConfig(ctx context.Context, config schema.AdminConfig) (*schema.AdminConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.AdminConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/admin/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LDAP

// GetLDAPConfig returns whether LDAP authentication is enabled.
func (c *Client) GetLDAPConfig(ctx context.Context) (bool, error) {
	// Perform request
	var response struct {
		Enabled bool `json:"ENABLE_LDAP"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/admin/config/ldap")); err != nil {
		return false, err
	}

	// Return the response
	return response.Enabled, nil
}

// UpdateLDAPConfig enables or disables LDAP authentication.
func (c *Client) UpdateLDAPConfig(ctx context.Context, enabled bool) (bool, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Enabled bool `json:"enable_ldap"`
	}{enabled})
	if err != nil {
		return false, err
	}

	// Perform request
	var response struct {
		Enabled bool `json:"ENABLE_LDAP"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/admin/config/ldap")); err != nil {
		return false, err
	}

	// Return the response
	return response.Enabled, nil
}

// GetLDAPServer returns the LDAP server connection settings.
func (c *Client) GetLDAPServer(ctx context.Context) (*schema.LDAPServerConfig, error) {
	// Perform request
	var response schema.LDAPServerConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/auths/admin/config/ldap/server")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateLDAPServer replaces the LDAP server connection settings.
func (c *Client) UpdateLDAPServer(ctx context.Context, config schema.LDAPServerConfig) (*schema.LDAPServerConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.LDAPServerConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/auths/admin/config/ldap/server")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
