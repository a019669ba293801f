package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Prompt is a slash command prompt, for example "/summarize". User is
// only populated by listing endpoints. A null AccessControl means the
// prompt is public and an empty map means private.
type Prompt struct {
	Command       string         `json:"command"`
	UserID        string         `json:"user_id,omitempty"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Timestamp     int64          `json:"timestamp,omitempty"`
	AccessControl map[string]any `json:"access_control,omitempty"`
	User          *UserName      `json:"user,omitempty"`
}

// PromptForm creates or updates a prompt. AccessControl is always
// marshalled so that null keeps its meaning of public access.
type PromptForm struct {
	Command       string         `json:"command"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	AccessControl map[string]any `json:"access_control"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Prompt) String() string {
	return Stringify(p)
}
