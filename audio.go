package openwebui

import (
	"context"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	multipart "github.com/mutablelogic/go-openwebui/pkg/multipart"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONFIG

// GetAudioConfig returns the text to speech and speech to text
// configuration.
func (c *Client) GetAudioConfig(ctx context.Context) (*schema.AudioConfig, error) {
	// Perform request
	var response schema.AudioConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/audio/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateAudioConfig replaces the text to speech and speech to text
// configuration and returns the stored settings.
func (c *Client) UpdateAudioConfig(ctx context.Context, config schema.AudioConfig) (*schema.AudioConfig, error) {
	// Normalize the content types, where a nil list is sent as an
	// empty array rather than null
	if config.STT.SupportedContentTypes == nil {
		config.STT.SupportedContentTypes = []string{}
	}

	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.AudioConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/audio/config/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SPEECH

// Transcribe converts an audio file to text using the configured
// speech to text engine, reading the audio from body. Use
// WithLanguage to guide the transcription. The transcribed text is
// returned under "text".
func (c *Client) Transcribe(ctx context.Context, filename string, body io.Reader, opts ...opt.Opt) (map[string]any, error) {
	if filename == "" {
		return nil, ErrBadParameter.With("filename")
	} else if body == nil {
		return nil, ErrBadParameter.With("body")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req, err := client.NewMultipartRequest(struct {
		File     multipart.File `json:"file"`
		Language string         `json:"language,omitempty"`
	}{
		File:     multipart.File{Path: filename, Body: body},
		Language: o.GetString(opt.LanguageKey),
	}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/audio/transcriptions")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// Speech converts text to speech using the configured text to speech
// engine and returns the audio content. Use WithModel and WithVoice
// to override the configured defaults.
func (c *Client) Speech(ctx context.Context, text string, opts ...opt.Opt) ([]byte, error) {
	if text == "" {
		return nil, ErrBadParameter.With("text")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req, err := client.NewJSONRequestEx(http.MethodPost, struct {
		Input string `json:"input"`
		Model string `json:"model,omitempty"`
		Voice string `json:"voice,omitempty"`
	}{
		Input: text,
		Model: o.GetString(opt.ModelKey),
		Voice: o.GetString(opt.VoiceKey),
	}, client.ContentTypeAny)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/audio/speech")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MODELS AND VOICES

// ListAudioModels returns the speech models offered by the
// configured text to speech engine.
func (c *Client) ListAudioModels(ctx context.Context) ([]schema.AudioModel, error) {
	// Perform request
	var response struct {
		Models []schema.AudioModel `json:"models"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/audio/models")); err != nil {
		return nil, err
	}

	// Return the response
	return response.Models, nil
}

// ListAudioVoices returns the voices offered by the configured text
// to speech engine.
func (c *Client) ListAudioVoices(ctx context.Context) ([]schema.AudioVoice, error) {
	// Perform request
	var response struct {
		Voices []schema.AudioVoice `json:"voices"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/audio/voices")); err != nil {
		return nil, err
	}

	// Return the response
	return response.Voices, nil
}
