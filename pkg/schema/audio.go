package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// TTSConfig holds the text to speech settings. The engine is
// "openai", "elevenlabs", "azure" or "transformers", with APIKey
// serving the engines which do not have dedicated fields.
type TTSConfig struct {
	OpenAIAPIBaseURL        string         `json:"OPENAI_API_BASE_URL"`
	OpenAIAPIKey            string         `json:"OPENAI_API_KEY"`
	OpenAIParams            map[string]any `json:"OPENAI_PARAMS,omitempty"`
	APIKey                  string         `json:"API_KEY"`
	Engine                  string         `json:"ENGINE"`
	Model                   string         `json:"MODEL"`
	Voice                   string         `json:"VOICE"`
	SplitOn                 string         `json:"SPLIT_ON"`
	AzureSpeechRegion       string         `json:"AZURE_SPEECH_REGION"`
	AzureSpeechBaseURL      string         `json:"AZURE_SPEECH_BASE_URL"`
	AzureSpeechOutputFormat string         `json:"AZURE_SPEECH_OUTPUT_FORMAT"`
}

// STTConfig holds the speech to text settings. The engine is
// "openai", "deepgram", "azure", "mistral" or empty for the local
// whisper model.
type STTConfig struct {
	OpenAIAPIBaseURL          string   `json:"OPENAI_API_BASE_URL"`
	OpenAIAPIKey              string   `json:"OPENAI_API_KEY"`
	Engine                    string   `json:"ENGINE"`
	Model                     string   `json:"MODEL"`
	SupportedContentTypes     []string `json:"SUPPORTED_CONTENT_TYPES"`
	WhisperModel              string   `json:"WHISPER_MODEL"`
	DeepgramAPIKey            string   `json:"DEEPGRAM_API_KEY"`
	AzureAPIKey               string   `json:"AZURE_API_KEY"`
	AzureRegion               string   `json:"AZURE_REGION"`
	AzureLocales              string   `json:"AZURE_LOCALES"`
	AzureBaseURL              string   `json:"AZURE_BASE_URL"`
	AzureMaxSpeakers          string   `json:"AZURE_MAX_SPEAKERS"`
	MistralAPIKey             string   `json:"MISTRAL_API_KEY"`
	MistralAPIBaseURL         string   `json:"MISTRAL_API_BASE_URL"`
	MistralUseChatCompletions bool     `json:"MISTRAL_USE_CHAT_COMPLETIONS"`
}

// AudioConfig holds the text to speech and speech to text settings.
// Every field is marshalled so that an update replaces the whole
// configuration.
type AudioConfig struct {
	TTS TTSConfig `json:"tts"`
	STT STTConfig `json:"stt"`
}

// AudioModel is a speech model offered by the configured engine.
type AudioModel struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// AudioVoice is a voice offered by the configured speech engine.
type AudioVoice struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
