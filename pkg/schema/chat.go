package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Chat is a chat conversation. The Chat dictionary holds the full
// conversation state: the message history keyed by message id, the
// models in use, parameters and options. ShareID points at the
// read-only shared copy when the chat has been shared.
type Chat struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Chat      map[string]any `json:"chat"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
	ShareID   *string        `json:"share_id,omitempty"`
	Archived  bool           `json:"archived"`
	Pinned    *bool          `json:"pinned,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	FolderID  *string        `json:"folder_id,omitempty"`
}

// ChatTitleID is an abbreviated chat for list views.
type ChatTitleID struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt int64  `json:"updated_at"`
	CreatedAt int64  `json:"created_at"`
}

// ChatForm creates or updates a chat. The Chat dictionary carries the
// conversation state, with the history under "history" keyed by
// message id.
type ChatForm struct {
	Chat     map[string]any `json:"chat"`
	FolderID *string        `json:"folder_id,omitempty"`
}

// ChatImportForm imports a chat preserving its original metadata and
// timestamps.
type ChatImportForm struct {
	ChatForm
	Meta      map[string]any `json:"meta,omitempty"`
	Pinned    bool           `json:"pinned"`
	CreatedAt *int64         `json:"created_at,omitempty"`
	UpdatedAt *int64         `json:"updated_at,omitempty"`
}

// ChatTitleMessagesForm carries a chat title and its ordered messages,
// used for document export.
type ChatTitleMessagesForm struct {
	Title    string           `json:"title"`
	Messages []map[string]any `json:"messages"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Chat) String() string {
	return Stringify(c)
}

func (c ChatTitleID) String() string {
	return Stringify(c)
}
