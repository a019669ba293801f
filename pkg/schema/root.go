package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Version is the application version and deployment identifier.
type Version struct {
	Version      string `json:"version"`
	DeploymentID string `json:"deployment_id,omitempty"`
}

// AppConfig is the public application configuration. The server omits
// the authenticated-only fields (default models, permissions) when the
// request carries no credential.
type AppConfig struct {
	Status        bool            `json:"status,omitempty"`
	Name          string          `json:"name,omitempty"`
	Version       string          `json:"version,omitempty"`
	DefaultLocale string          `json:"default_locale,omitempty"`
	OAuth         map[string]any  `json:"oauth,omitempty"`
	Features      map[string]bool `json:"features,omitempty"`
	DefaultModels *string         `json:"default_models,omitempty"`
	Permissions   map[string]any  `json:"permissions,omitempty"`
}

// UnifiedModel is one entry in the unified model list, which merges
// models from every configured provider with the workspace presets.
// Info carries the workspace model record when the entry is a preset.
type UnifiedModel struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Object    string         `json:"object,omitempty"`
	Created   int64          `json:"created,omitempty"`
	OwnedBy   string         `json:"owned_by,omitempty"`
	Info      *Model         `json:"info,omitempty"`
	Preset    bool           `json:"preset,omitempty"`
	Actions   []any          `json:"actions,omitempty"`
	Filters   []any          `json:"filters,omitempty"`
	Ollama    map[string]any `json:"ollama,omitempty"`
	OpenAI    map[string]any `json:"openai,omitempty"`
	Direct    bool           `json:"direct,omitempty"`
	Arena     bool           `json:"arena,omitempty"`
	Pipe      map[string]any `json:"pipe,omitempty"`
	Connected bool           `json:"connected,omitempty"`
}

// UnifiedModelList is the response of the unified models endpoint.
type UnifiedModelList struct {
	Data []UnifiedModel `json:"data"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Version) String() string {
	return Stringify(v)
}

func (m UnifiedModel) String() string {
	return Stringify(m)
}
