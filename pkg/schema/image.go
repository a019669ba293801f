package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ImagesConfig holds the image generation and editing settings. The
// engine is "openai", "comfyui", "automatic1111" or "gemini", with
// the matching connection fields set. Every field is marshalled so
// that an update replaces the whole configuration.
type ImagesConfig struct {
	EnableImageGeneration       bool    `json:"ENABLE_IMAGE_GENERATION"`
	EnableImagePromptGeneration bool    `json:"ENABLE_IMAGE_PROMPT_GENERATION"`
	Engine                      string  `json:"IMAGE_GENERATION_ENGINE"`
	Model                       string  `json:"IMAGE_GENERATION_MODEL"`
	Size                        *string `json:"IMAGE_SIZE"`
	Steps                       *int    `json:"IMAGE_STEPS"`

	// OpenAI
	OpenAIAPIBaseURL string `json:"IMAGES_OPENAI_API_BASE_URL"`
	OpenAIAPIKey     string `json:"IMAGES_OPENAI_API_KEY"`
	OpenAIAPIVersion string `json:"IMAGES_OPENAI_API_VERSION"`
	OpenAIAPIParams  any    `json:"IMAGES_OPENAI_API_PARAMS"`

	// Automatic1111
	Automatic1111BaseURL string `json:"AUTOMATIC1111_BASE_URL"`
	Automatic1111APIAuth any    `json:"AUTOMATIC1111_API_AUTH"`
	Automatic1111Params  any    `json:"AUTOMATIC1111_PARAMS"`

	// ComfyUI
	ComfyUIBaseURL       string           `json:"COMFYUI_BASE_URL"`
	ComfyUIAPIKey        string           `json:"COMFYUI_API_KEY"`
	ComfyUIWorkflow      string           `json:"COMFYUI_WORKFLOW"`
	ComfyUIWorkflowNodes []map[string]any `json:"COMFYUI_WORKFLOW_NODES"`

	// Gemini
	GeminiAPIBaseURL     string `json:"IMAGES_GEMINI_API_BASE_URL"`
	GeminiAPIKey         string `json:"IMAGES_GEMINI_API_KEY"`
	GeminiEndpointMethod string `json:"IMAGES_GEMINI_ENDPOINT_METHOD"`

	// Image editing
	EnableImageEdit          bool             `json:"ENABLE_IMAGE_EDIT"`
	EditEngine               string           `json:"IMAGE_EDIT_ENGINE"`
	EditModel                string           `json:"IMAGE_EDIT_MODEL"`
	EditSize                 *string          `json:"IMAGE_EDIT_SIZE"`
	EditOpenAIAPIBaseURL     string           `json:"IMAGES_EDIT_OPENAI_API_BASE_URL"`
	EditOpenAIAPIKey         string           `json:"IMAGES_EDIT_OPENAI_API_KEY"`
	EditOpenAIAPIVersion     string           `json:"IMAGES_EDIT_OPENAI_API_VERSION"`
	EditGeminiAPIBaseURL     string           `json:"IMAGES_EDIT_GEMINI_API_BASE_URL"`
	EditGeminiAPIKey         string           `json:"IMAGES_EDIT_GEMINI_API_KEY"`
	EditComfyUIBaseURL       string           `json:"IMAGES_EDIT_COMFYUI_BASE_URL"`
	EditComfyUIAPIKey        string           `json:"IMAGES_EDIT_COMFYUI_API_KEY"`
	EditComfyUIWorkflow      string           `json:"IMAGES_EDIT_COMFYUI_WORKFLOW"`
	EditComfyUIWorkflowNodes []map[string]any `json:"IMAGES_EDIT_COMFYUI_WORKFLOW_NODES"`
}

// ImageModel is an image model offered by the configured engine.
type ImageModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Image is a generated or edited image, referenced by a server path
// or a data URL.
type Image struct {
	URL string `json:"url"`
}

// CreateImageForm generates images from a prompt. Model, Size and N
// fall back to the configured defaults when unset.
type CreateImageForm struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size,omitempty"`
	N              int    `json:"n,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

// EditImageForm edits one or more images following a prompt. Image
// is a base64 encoded image or URL, or a list of them.
type EditImageForm struct {
	Image          any    `json:"image"`
	Prompt         string `json:"prompt"`
	Model          string `json:"model,omitempty"`
	Size           string `json:"size,omitempty"`
	N              *int   `json:"n,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i Image) String() string {
	return Stringify(i)
}
