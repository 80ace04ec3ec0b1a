package llmprovider

import (
	"context"

	"dwed-assistant/pkg/gemini"
	"dwed-assistant/pkg/openaichat"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, len(req.Messages))
	for i, msg := range req.Messages {
		role := msg.Role
		// Gemini calls the assistant role "model"
		if role == "assistant" {
			role = "model"
		}
		messages[i] = gemini.Message{Role: role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIChatAdapter adapts pkg/openaichat to the Provider interface
type OpenAIChatAdapter struct {
	name   string
	client openaichat.IClient
}

// NewOpenAIChatAdapter creates a new adapter for an OpenAI-compatible backend.
// The name distinguishes multiple compatible vendors in config and logs.
func NewOpenAIChatAdapter(name string, client openaichat.IClient) *OpenAIChatAdapter {
	return &OpenAIChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider
func (a *OpenAIChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openaichat.Message, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openaichat.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &openaichat.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIChatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIChatAdapter) Model() string {
	return a.client.Model()
}
