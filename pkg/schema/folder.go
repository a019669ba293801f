package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Folder organizes chats into a hierarchy. Items references the chats
// and files the folder contains, Data carries chat defaults such as a
// system prompt and model ids, and Meta holds the display icon.
type Folder struct {
	ID         string         `json:"id"`
	ParentID   *string        `json:"parent_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Name       string         `json:"name"`
	Items      map[string]any `json:"items,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	IsExpanded bool           `json:"is_expanded,omitempty"`
	CreatedAt  int64          `json:"created_at,omitempty"`
	UpdatedAt  int64          `json:"updated_at,omitempty"`
}

// FolderForm creates or updates a folder. Unset fields are left
// unchanged by update endpoints.
type FolderForm struct {
	Name string         `json:"name,omitempty"`
	Data map[string]any `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Folder) String() string {
	return Stringify(f)
}
