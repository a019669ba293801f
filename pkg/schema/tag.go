package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Tag is a label on a chat. The id is derived from the name, lowercased
// with spaces replaced by underscores.
type Tag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Tag) String() string {
	return Stringify(t)
}
