package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// TaskConfig holds the settings for background tasks such as title,
// tag and query generation. Every field is marshalled so that an
// update replaces the whole configuration.
type TaskConfig struct {
	TaskModel                            string `json:"TASK_MODEL"`
	TaskModelExternal                    string `json:"TASK_MODEL_EXTERNAL"`
	EnableTitleGeneration                bool   `json:"ENABLE_TITLE_GENERATION"`
	TitleGenerationPromptTemplate        string `json:"TITLE_GENERATION_PROMPT_TEMPLATE"`
	ImagePromptGenerationPromptTemplate  string `json:"IMAGE_PROMPT_GENERATION_PROMPT_TEMPLATE"`
	EnableAutocompleteGeneration         bool   `json:"ENABLE_AUTOCOMPLETE_GENERATION"`
	AutocompleteGenerationInputMaxLength int    `json:"AUTOCOMPLETE_GENERATION_INPUT_MAX_LENGTH"`
	TagsGenerationPromptTemplate         string `json:"TAGS_GENERATION_PROMPT_TEMPLATE"`
	FollowUpGenerationPromptTemplate     string `json:"FOLLOW_UP_GENERATION_PROMPT_TEMPLATE"`
	EnableFollowUpGeneration             bool   `json:"ENABLE_FOLLOW_UP_GENERATION"`
	EnableTagsGeneration                 bool   `json:"ENABLE_TAGS_GENERATION"`
	EnableSearchQueryGeneration          bool   `json:"ENABLE_SEARCH_QUERY_GENERATION"`
	EnableRetrievalQueryGeneration       bool   `json:"ENABLE_RETRIEVAL_QUERY_GENERATION"`
	QueryGenerationPromptTemplate        string `json:"QUERY_GENERATION_PROMPT_TEMPLATE"`
	ToolsFunctionCallingPromptTemplate   string `json:"TOOLS_FUNCTION_CALLING_PROMPT_TEMPLATE"`
	VoiceModePromptTemplate              string `json:"VOICE_MODE_PROMPT_TEMPLATE"`
}

// TaskForm requests a task model completion. Most tasks send Model
// and the chat Messages; Type selects between search and retrieval
// query generation, while Prompt and Responses serve the
// autocompletion and mixture of agents tasks.
type TaskForm struct {
	Model     string              `json:"model"`
	Messages  []CompletionMessage `json:"messages,omitempty"`
	ChatID    string              `json:"chat_id,omitempty"`
	Type      string              `json:"type,omitempty"`
	Prompt    string              `json:"prompt,omitempty"`
	Responses []string            `json:"responses,omitempty"`
	Stream    bool                `json:"stream,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t TaskConfig) String() string {
	return Stringify(t)
}
