package client

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Token is a credential attached to requests as an Authorization header.
// The zero value means no credential.
type Token struct {
	Scheme string `json:"scheme"`
	Value  string `json:"value"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Bearer is the authorization scheme used for API keys and session tokens
	Bearer = "Bearer"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsZero returns true when no credential is set.
func (t Token) IsZero() bool {
	return t.Value == ""
}

func (t Token) String() string {
	return t.Scheme + " " + t.Value
}

// Token returns the credential currently attached to the client.
func (c *Client) Token() Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the credential attached to the client. Requests
// already in flight keep the credential they were dispatched with.
func (c *Client) SetToken(token Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// DeleteToken removes the credential from the client, so that subsequent
// requests are sent unauthenticated.
func (c *Client) DeleteToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = Token{}
}
