package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a workspace model: a preset layered over a base model with
// its own parameters, metadata and access control. AccessControl is
// always marshalled so that null keeps its meaning of public access.
type Model struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id,omitempty"`
	BaseModelID   *string        `json:"base_model_id,omitempty"`
	Name          string         `json:"name"`
	Params        map[string]any `json:"params"`
	Meta          ModelMeta      `json:"meta"`
	AccessControl map[string]any `json:"access_control"`
	IsActive      bool           `json:"is_active"`
	UpdatedAt     int64          `json:"updated_at,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	User          *UserName      `json:"user,omitempty"`
}

// ModelMeta is the user-facing metadata for a model.
type ModelMeta struct {
	ProfileImageURL *string        `json:"profile_image_url,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Capabilities    map[string]any `json:"capabilities,omitempty"`
}

// ModelList is a page of models with the total count.
type ModelList struct {
	Items []Model `json:"items"`
	Total int     `json:"total"`
}

// ModelForm creates or updates a model. IsActive must be set for the
// model to be enabled.
type ModelForm struct {
	ID            string         `json:"id"`
	BaseModelID   *string        `json:"base_model_id,omitempty"`
	Name          string         `json:"name"`
	Meta          ModelMeta      `json:"meta"`
	Params        map[string]any `json:"params"`
	AccessControl map[string]any `json:"access_control"`
	IsActive      bool           `json:"is_active"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}

func (l ModelList) String() string {
	return Stringify(l)
}
