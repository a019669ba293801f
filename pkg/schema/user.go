package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// User is a user account, including profile, status and system
// metadata. Timestamps are Unix epoch seconds.
type User struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Email                 string         `json:"email"`
	Username              *string        `json:"username,omitempty"`
	Role                  string         `json:"role,omitempty"`
	ProfileImageURL       *string        `json:"profile_image_url,omitempty"`
	ProfileBannerImageURL *string        `json:"profile_banner_image_url,omitempty"`
	Bio                   *string        `json:"bio,omitempty"`
	Gender                *string        `json:"gender,omitempty"`
	DateOfBirth           *string        `json:"date_of_birth,omitempty"`
	Timezone              *string        `json:"timezone,omitempty"`
	PresenceState         *string        `json:"presence_state,omitempty"`
	StatusEmoji           *string        `json:"status_emoji,omitempty"`
	StatusMessage         *string        `json:"status_message,omitempty"`
	StatusExpiresAt       *int64         `json:"status_expires_at,omitempty"`
	Info                  map[string]any `json:"info,omitempty"`
	Settings              *UserSettings  `json:"settings,omitempty"`
	APIKey                *string        `json:"api_key,omitempty"`
	OAuth                 map[string]any `json:"oauth,omitempty"`
	OAuthSub              *string        `json:"oauth_sub,omitempty"`
	GroupIDs              []string       `json:"group_ids,omitempty"`
	LastActiveAt          int64          `json:"last_active_at,omitempty"`
	UpdatedAt             int64          `json:"updated_at,omitempty"`
	CreatedAt             int64          `json:"created_at,omitempty"`
}

// UserSettings holds user preferences, primarily for the UI.
type UserSettings struct {
	UI map[string]any `json:"ui,omitempty"`
}

// UserList is a page of users with the total count of matching users.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// UserStatus is a user's presence status.
type UserStatus struct {
	StatusEmoji     *string `json:"status_emoji,omitempty"`
	StatusMessage   *string `json:"status_message,omitempty"`
	StatusExpiresAt *int64  `json:"status_expires_at,omitempty"`
}

// UserActive is an abbreviated user with presence information.
type UserActive struct {
	UserStatus
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	IsActive        bool    `json:"is_active"`
}

// UserProfile is an abbreviated user with profile image.
type UserProfile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UpdateProfileForm updates the current user's profile.
type UpdateProfileForm struct {
	ProfileImageURL string  `json:"profile_image_url"`
	Name            string  `json:"name"`
	Bio             *string `json:"bio,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`
}

// UserUpdateForm updates a user account by ID.
type UserUpdateForm struct {
	Role            string  `json:"role"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ProfileImageURL string  `json:"profile_image_url"`
	Password        *string `json:"password,omitempty"`
}

// UserPermissions is the permission set applied to a user or used as
// the default for new users.
type UserPermissions struct {
	Workspace WorkspacePermissions `json:"workspace"`
	Sharing   SharingPermissions   `json:"sharing"`
	Chat      ChatPermissions      `json:"chat"`
	Features  FeaturesPermissions  `json:"features"`
}

// WorkspacePermissions control access to workspace resources.
type WorkspacePermissions struct {
	Models        bool `json:"models"`
	Knowledge     bool `json:"knowledge"`
	Prompts       bool `json:"prompts"`
	Tools         bool `json:"tools"`
	ModelsImport  bool `json:"models_import"`
	ModelsExport  bool `json:"models_export"`
	PromptsImport bool `json:"prompts_import"`
	PromptsExport bool `json:"prompts_export"`
	ToolsImport   bool `json:"tools_import"`
	ToolsExport   bool `json:"tools_export"`
}

// SharingPermissions control sharing of workspace resources.
type SharingPermissions struct {
	Models          bool `json:"models"`
	PublicModels    bool `json:"public_models"`
	Knowledge       bool `json:"knowledge"`
	PublicKnowledge bool `json:"public_knowledge"`
	Prompts         bool `json:"prompts"`
	PublicPrompts   bool `json:"public_prompts"`
	Tools           bool `json:"tools"`
	PublicTools     bool `json:"public_tools"`
	Notes           bool `json:"notes"`
	PublicNotes     bool `json:"public_notes"`
}

// ChatPermissions control chat functionality.
type ChatPermissions struct {
	Controls           bool `json:"controls"`
	Valves             bool `json:"valves"`
	SystemPrompt       bool `json:"system_prompt"`
	Params             bool `json:"params"`
	FileUpload         bool `json:"file_upload"`
	Delete             bool `json:"delete"`
	DeleteMessage      bool `json:"delete_message"`
	ContinueResponse   bool `json:"continue_response"`
	RegenerateResponse bool `json:"regenerate_response"`
	RateResponse       bool `json:"rate_response"`
	Edit               bool `json:"edit"`
	Share              bool `json:"share"`
	Export             bool `json:"export"`
	STT                bool `json:"stt"`
	TTS                bool `json:"tts"`
	Call               bool `json:"call"`
	MultipleModels     bool `json:"multiple_models"`
	Temporary          bool `json:"temporary"`
	TemporaryEnforced  bool `json:"temporary_enforced"`
}

// FeaturesPermissions control access to application features.
type FeaturesPermissions struct {
	APIKeys           bool `json:"api_keys"`
	DirectToolServers bool `json:"direct_tool_servers"`
	WebSearch         bool `json:"web_search"`
	ImageGeneration   bool `json:"image_generation"`
	CodeInterpreter   bool `json:"code_interpreter"`
	Notes             bool `json:"notes"`
	Channels          bool `json:"channels"`
	Folders           bool `json:"folders"`
}

// UserName is a minimal user reference, optionally carrying role, email
// and presence.
type UserName struct {
	UserStatus
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UserNameList is a page of minimal user references.
type UserNameList struct {
	Users []UserName `json:"users"`
	Total int        `json:"total"`
}

// UserInfo is abbreviated user information including presence.
type UserInfo struct {
	UserStatus
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserInfoList is a page of abbreviated user information.
type UserInfoList struct {
	Users []UserInfo `json:"users"`
	Total int        `json:"total"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (u User) String() string {
	return Stringify(u)
}

func (l UserList) String() string {
	return Stringify(l)
}
