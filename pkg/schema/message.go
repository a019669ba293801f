package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a channel message. Timestamps are epoch nanoseconds.
// User, ReplyToMessage, Reactions, LatestReplyAt and ReplyCount are
// only populated by the endpoints which return them.
type Message struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id,omitempty"`
	ChannelID      string         `json:"channel_id,omitempty"`
	ReplyToID      *string        `json:"reply_to_id,omitempty"`
	ParentID       *string        `json:"parent_id,omitempty"`
	IsPinned       bool           `json:"is_pinned,omitempty"`
	PinnedBy       string         `json:"pinned_by,omitempty"`
	PinnedAt       *int64         `json:"pinned_at,omitempty"`
	Content        string         `json:"content"`
	Data           map[string]any `json:"data,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      int64          `json:"created_at,omitempty"`
	UpdatedAt      int64          `json:"updated_at,omitempty"`
	User           *UserName      `json:"user,omitempty"`
	ReplyToMessage *Message       `json:"reply_to_message,omitempty"`
	Reactions      []Reaction     `json:"reactions,omitempty"`
	LatestReplyAt  *int64         `json:"latest_reply_at,omitempty"`
	ReplyCount     int            `json:"reply_count,omitempty"`
}

// Reaction is an emoji reaction to a message, with the users who
// added it.
type Reaction struct {
	Name  string           `json:"name"`
	Users []map[string]any `json:"users"`
	Count int              `json:"count"`
}

// MessageForm creates or updates a channel message. TempID lets the
// poster correlate the stored message with an optimistic local copy,
// ReplyToID marks the message as a reply and ParentID places it in a
// thread.
type MessageForm struct {
	TempID    string         `json:"temp_id,omitempty"`
	Content   string         `json:"content"`
	ReplyToID string         `json:"reply_to_id,omitempty"`
	ParentID  string         `json:"parent_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return Stringify(m)
}
