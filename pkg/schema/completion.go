package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CompletionMessage is a chat message in the OpenAI wire format.
// Content is either a string or a list of content parts.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// CompletionFile attaches an uploaded file or a knowledge collection
// to a completion request. Type is "file" or "collection".
type CompletionFile struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CompletionRequest requests a chat completion. Stream is always
// marshalled as streaming has to be disabled explicitly, ChatID and
// ID attach the completion to a stored chat message, and Features
// toggles server features such as "web_search" and
// "image_generation" for the request.
type CompletionRequest struct {
	Model         string              `json:"model"`
	Messages      []CompletionMessage `json:"messages"`
	Stream        bool                `json:"stream"`
	ChatID        string              `json:"chat_id,omitempty"`
	ID            string              `json:"id,omitempty"`
	SessionID     string              `json:"session_id,omitempty"`
	Files         []CompletionFile    `json:"files,omitempty"`
	Features      map[string]bool     `json:"features,omitempty"`
	ToolIDs       []string            `json:"tool_ids,omitempty"`
	Temperature   *float64            `json:"temperature,omitempty"`
	MaxTokens     uint                `json:"max_tokens,omitempty"`
	StopSequences []string            `json:"stop,omitempty"`
}

// Completion is a chat completion response in the OpenAI wire
// format.
type Completion struct {
	ID      string             `json:"id,omitempty"`
	Object  string             `json:"object,omitempty"`
	Created int64              `json:"created,omitempty"`
	Model   string             `json:"model,omitempty"`
	Choices []CompletionChoice `json:"choices,omitempty"`
	Usage   *CompletionUsage   `json:"usage,omitempty"`
}

// CompletionChoice is one completion variant. Message is set for
// complete responses and Delta for streamed chunks.
type CompletionChoice struct {
	Index        uint               `json:"index"`
	Message      *CompletionMessage `json:"message,omitempty"`
	Delta        *CompletionMessage `json:"delta,omitempty"`
	FinishReason string             `json:"finish_reason,omitempty"`
}

// CompletionUsage counts the tokens used by a completion.
type CompletionUsage struct {
	PromptTokens     uint `json:"prompt_tokens,omitempty"`
	CompletionTokens uint `json:"completion_tokens,omitempty"`
	TotalTokens      uint `json:"total_tokens,omitempty"`
}

// EmbeddingRequest requests embeddings. Input is a string or a list
// of strings.
type EmbeddingRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"`
}

// EmbeddingList is an embeddings response in the OpenAI wire format.
type EmbeddingList struct {
	Object string           `json:"object,omitempty"`
	Data   []Embedding      `json:"data"`
	Model  string           `json:"model,omitempty"`
	Usage  *CompletionUsage `json:"usage,omitempty"`
}

// Embedding is the embedding vector for one input.
type Embedding struct {
	Object    string    `json:"object,omitempty"`
	Index     uint      `json:"index"`
	Embedding []float64 `json:"embedding"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the text content of the first completion choice, or
// an empty string when there is none.
func (c Completion) Text() string {
	if len(c.Choices) == 0 || c.Choices[0].Message == nil {
		return ""
	}
	if text, ok := c.Choices[0].Message.Content.(string); ok {
		return text
	}
	return ""
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Completion) String() string {
	return Stringify(c)
}
