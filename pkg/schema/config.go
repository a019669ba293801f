package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ConnectionsConfig controls how users may connect to model
// providers.
type ConnectionsConfig struct {
	EnableDirectConnections bool `json:"ENABLE_DIRECT_CONNECTIONS"`
	EnableBaseModelsCache   bool `json:"ENABLE_BASE_MODELS_CACHE"`
}

// ToolServerConnection configures a single external tool server.
// Type is "openapi" or "mcp", and Config can carry an enable flag, a
// function name filter and access control for the connection.
type ToolServerConnection struct {
	URL      string         `json:"url"`
	Path     string         `json:"path"`
	Type     string         `json:"type,omitempty"`
	AuthType string         `json:"auth_type,omitempty"`
	Headers  map[string]any `json:"headers,omitempty"`
	Key      string         `json:"key,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
}

// ToolServersConfig holds the configured external tool servers.
type ToolServersConfig struct {
	ToolServerConnections []ToolServerConnection `json:"TOOL_SERVER_CONNECTIONS"`
}

// CodeExecutionConfig controls code execution for tools and the chat
// code interpreter. The engines are "pyodide" or "jupyter", and the
// Jupyter fields only apply when the corresponding engine is
// "jupyter".
type CodeExecutionConfig struct {
	EnableCodeExecution                bool   `json:"ENABLE_CODE_EXECUTION"`
	CodeExecutionEngine                string `json:"CODE_EXECUTION_ENGINE"`
	CodeExecutionJupyterURL            string `json:"CODE_EXECUTION_JUPYTER_URL,omitempty"`
	CodeExecutionJupyterAuth           string `json:"CODE_EXECUTION_JUPYTER_AUTH,omitempty"`
	CodeExecutionJupyterAuthToken      string `json:"CODE_EXECUTION_JUPYTER_AUTH_TOKEN,omitempty"`
	CodeExecutionJupyterAuthPassword   string `json:"CODE_EXECUTION_JUPYTER_AUTH_PASSWORD,omitempty"`
	CodeExecutionJupyterTimeout        uint   `json:"CODE_EXECUTION_JUPYTER_TIMEOUT,omitempty"`
	EnableCodeInterpreter              bool   `json:"ENABLE_CODE_INTERPRETER"`
	CodeInterpreterEngine              string `json:"CODE_INTERPRETER_ENGINE"`
	CodeInterpreterPromptTemplate      string `json:"CODE_INTERPRETER_PROMPT_TEMPLATE,omitempty"`
	CodeInterpreterJupyterURL          string `json:"CODE_INTERPRETER_JUPYTER_URL,omitempty"`
	CodeInterpreterJupyterAuth         string `json:"CODE_INTERPRETER_JUPYTER_AUTH,omitempty"`
	CodeInterpreterJupyterAuthToken    string `json:"CODE_INTERPRETER_JUPYTER_AUTH_TOKEN,omitempty"`
	CodeInterpreterJupyterAuthPassword string `json:"CODE_INTERPRETER_JUPYTER_AUTH_PASSWORD,omitempty"`
	CodeInterpreterJupyterTimeout      uint   `json:"CODE_INTERPRETER_JUPYTER_TIMEOUT,omitempty"`
}

// ModelsConfig sets the default and pinned models for new chats, and
// the order models are listed in. The model lists are comma
// separated.
type ModelsConfig struct {
	DefaultModels       string   `json:"DEFAULT_MODELS,omitempty"`
	DefaultPinnedModels string   `json:"DEFAULT_PINNED_MODELS,omitempty"`
	ModelOrderList      []string `json:"MODEL_ORDER_LIST,omitempty"`
}

// PromptSuggestion is a suggested prompt shown on the new chat page.
// Title holds the title and subtitle pair.
type PromptSuggestion struct {
	Title   []string `json:"title"`
	Content string   `json:"content"`
}

// Banner is a notice shown at the top of the chat interface. Type is
// the severity, one of "info", "warning", "error" or "success".
type Banner struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content"`
	Dismissible bool   `json:"dismissible"`
	Timestamp   int64  `json:"timestamp"`
}

// OAuthClientRegistrationForm registers an OAuth client for a tool
// server.
type OAuthClientRegistrationForm struct {
	URL        string `json:"url"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (b Banner) String() string {
	return Stringify(b)
}
