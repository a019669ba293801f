package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// SessionUser is returned by sign-in, sign-up and session lookup. The
// token fields are only present when the endpoint issued a session
// token, and the bio fields only on session lookup.
type SessionUser struct {
	Token           string         `json:"token,omitempty"`
	TokenType       string         `json:"token_type,omitempty"`
	ExpiresAt       *int64         `json:"expires_at,omitempty"`
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	Name            string         `json:"name"`
	Role            string         `json:"role"`
	ProfileImageURL string         `json:"profile_image_url"`
	Permissions     map[string]any `json:"permissions,omitempty"`
	Bio             *string        `json:"bio,omitempty"`
	Gender          *string        `json:"gender,omitempty"`
	DateOfBirth     *string        `json:"date_of_birth,omitempty"`
}

// SignupForm creates a new user account.
type SignupForm struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// AddUserForm creates a new user account with an explicit role.
type AddUserForm struct {
	SignupForm
	Role *string `json:"role,omitempty"`
}

// SignoutResponse reports the result of a sign-out, with an optional
// redirect for federated sessions.
type SignoutResponse struct {
	Status      bool    `json:"status"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

// AdminConfig is the global application configuration. The field names
// mirror the remote configuration keys.
type AdminConfig struct {
	ShowAdminDetails                  bool    `json:"SHOW_ADMIN_DETAILS"`
	WebUIURL                          string  `json:"WEBUI_URL"`
	EnableSignup                      bool    `json:"ENABLE_SIGNUP"`
	EnableAPIKeys                     bool    `json:"ENABLE_API_KEYS"`
	EnableAPIKeysEndpointRestrictions bool    `json:"ENABLE_API_KEYS_ENDPOINT_RESTRICTIONS"`
	APIKeysAllowedEndpoints           string  `json:"API_KEYS_ALLOWED_ENDPOINTS"`
	DefaultUserRole                   string  `json:"DEFAULT_USER_ROLE"`
	DefaultGroupID                    string  `json:"DEFAULT_GROUP_ID"`
	JWTExpiresIn                      string  `json:"JWT_EXPIRES_IN"`
	EnableCommunitySharing            bool    `json:"ENABLE_COMMUNITY_SHARING"`
	EnableMessageRating               bool    `json:"ENABLE_MESSAGE_RATING"`
	EnableFolders                     bool    `json:"ENABLE_FOLDERS"`
	EnableChannels                    bool    `json:"ENABLE_CHANNELS"`
	EnableNotes                       bool    `json:"ENABLE_NOTES"`
	EnableUserWebhooks                bool    `json:"ENABLE_USER_WEBHOOKS"`
	PendingUserOverlayTitle           *string `json:"PENDING_USER_OVERLAY_TITLE,omitempty"`
	PendingUserOverlayContent         *string `json:"PENDING_USER_OVERLAY_CONTENT,omitempty"`
	ResponseWatermark                 *string `json:"RESPONSE_WATERMARK,omitempty"`
}

// AdminDetails is the admin contact shown to pending users.
type AdminDetails struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// LDAPServerConfig is the LDAP connection configuration.
type LDAPServerConfig struct {
	Label                string  `json:"label"`
	Host                 string  `json:"host"`
	Port                 *int    `json:"port,omitempty"`
	AttributeForMail     string  `json:"attribute_for_mail"`
	AttributeForUsername string  `json:"attribute_for_username"`
	AppDN                string  `json:"app_dn"`
	AppDNPassword        string  `json:"app_dn_password"`
	SearchBase           string  `json:"search_base"`
	SearchFilters        string  `json:"search_filters"`
	UseTLS               bool    `json:"use_tls"`
	CertificatePath      *string `json:"certificate_path,omitempty"`
	ValidateCert         bool    `json:"validate_cert"`
	Ciphers              *string `json:"ciphers,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (u SessionUser) String() string {
	return Stringify(u)
}

func (c AdminConfig) String() string {
	return Stringify(c)
}
