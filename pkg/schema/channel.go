package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Channel is a communication channel: a standard channel, a group or
// a direct message thread. Timestamps on channels, members and
// messages are epoch nanoseconds. UserIDs, Users, LastMessageAt and
// UnreadCount are only populated for the channel kinds and endpoints
// which carry them. A null AccessControl means public read access
// with owner-only write access, and an empty map means completely
// public.
type Channel struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id,omitempty"`
	Type          string         `json:"type,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	IsPrivate     *bool          `json:"is_private,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	AccessControl map[string]any `json:"access_control,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	UpdatedAt     int64          `json:"updated_at,omitempty"`
	UpdatedBy     string         `json:"updated_by,omitempty"`
	ArchivedAt    *int64         `json:"archived_at,omitempty"`
	ArchivedBy    string         `json:"archived_by,omitempty"`
	DeletedAt     *int64         `json:"deleted_at,omitempty"`
	DeletedBy     string         `json:"deleted_by,omitempty"`

	// Per-caller fields from the extended channel responses
	IsManager     bool       `json:"is_manager,omitempty"`
	WriteAccess   bool       `json:"write_access,omitempty"`
	UserCount     *int       `json:"user_count,omitempty"`
	UserIDs       []string   `json:"user_ids,omitempty"`
	Users         []UserName `json:"users,omitempty"`
	LastMessageAt *int64     `json:"last_message_at,omitempty"`
	LastReadAt    *int64     `json:"last_read_at,omitempty"`
	UnreadCount   int        `json:"unread_count,omitempty"`
}

// ChannelMember is a user's membership of a channel.
type ChannelMember struct {
	ID              string         `json:"id"`
	ChannelID       string         `json:"channel_id"`
	UserID          string         `json:"user_id"`
	Role            string         `json:"role,omitempty"`
	Status          string         `json:"status,omitempty"`
	IsActive        bool           `json:"is_active,omitempty"`
	IsChannelMuted  bool           `json:"is_channel_muted,omitempty"`
	IsChannelPinned bool           `json:"is_channel_pinned,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	Meta            map[string]any `json:"meta,omitempty"`
	InvitedAt       int64          `json:"invited_at,omitempty"`
	InvitedBy       string         `json:"invited_by,omitempty"`
	JoinedAt        int64          `json:"joined_at,omitempty"`
	LeftAt          int64          `json:"left_at,omitempty"`
	LastReadAt      int64          `json:"last_read_at,omitempty"`
	CreatedAt       int64          `json:"created_at,omitempty"`
	UpdatedAt       int64          `json:"updated_at,omitempty"`
}

// ChannelForm creates or updates a channel. Type is only used on
// creation, "group" or "dm" for member based channels. UserIDs and
// GroupIDs grant initial membership. AccessControl is always
// marshalled so that null keeps its meaning of public read access.
type ChannelForm struct {
	Name          string         `json:"name"`
	Type          string         `json:"type,omitempty"`
	Description   string         `json:"description,omitempty"`
	IsPrivate     *bool          `json:"is_private,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	AccessControl map[string]any `json:"access_control"`
	UserIDs       []string       `json:"user_ids,omitempty"`
	GroupIDs      []string       `json:"group_ids,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Channel) String() string {
	return Stringify(c)
}

func (c ChannelMember) String() string {
	return Stringify(c)
}
