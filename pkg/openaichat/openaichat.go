package openaichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type clientImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// newClientImpl creates a new OpenAI-compatible implementation
func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openaichat: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openaichat: API error %d: %s", resp.StatusCode, string(raw))
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openaichat: failed to decode response: %w", err)
	}

	return c.transformResponse(&out)
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

// transformRequest converts the normalized request to the OpenAI wire format
func (c *clientImpl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, openAIMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, openAIMessage{Role: msg.Role, Content: msg.Text})
	}

	return out
}

// transformResponse extracts the first choice's content from the wire response
func (c *clientImpl) transformResponse(resp *openAIResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openaichat: empty response from model %s", c.model)
	}

	out := &Response{Text: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		out.Usage = Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}
