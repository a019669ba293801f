package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// OAuthSession is an active federated login session for a user. The
// token dictionary carries the provider tokens (access_token and
// optionally refresh_token, id_token and expiry fields).
type OAuthSession struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Provider  string         `json:"provider"`
	Token     map[string]any `json:"token"`
	ExpiresAt int64          `json:"expires_at"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o OAuthSession) String() string {
	return Stringify(o)
}
