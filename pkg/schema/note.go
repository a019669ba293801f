package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Note is a rich text note. Data carries the content in several
// formats under "content" ("md", "html") along with prior versions,
// and Meta is merged shallowly on update. User is only populated by
// listing endpoints. A null AccessControl means public read access
// and an empty map means owner-only.
type Note struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id,omitempty"`
	Title         string         `json:"title"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	AccessControl map[string]any `json:"access_control,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	UpdatedAt     int64          `json:"updated_at,omitempty"`
	User          *UserName      `json:"user,omitempty"`
}

// NoteList is a page of notes.
type NoteList struct {
	Items []Note `json:"items"`
	Total int    `json:"total"`
}

// NoteForm creates or updates a note. On update, unset fields are
// left unchanged and Meta is merged with the existing metadata.
// AccessControl is always marshalled so that null keeps its meaning
// of public read access.
type NoteForm struct {
	Title         string         `json:"title,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	AccessControl map[string]any `json:"access_control"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (n Note) String() string {
	return Stringify(n)
}

func (n NoteList) String() string {
	return Stringify(n)
}
