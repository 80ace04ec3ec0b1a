package completion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwed-assistant/internal/chat"
	"dwed-assistant/internal/chat/completion"
	"dwed-assistant/pkg/llmprovider"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type stubProvider struct {
	fn func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return s.fn(ctx, req)
}
func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

func newCompleter(fn func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)) completion.Completer {
	m := llmprovider.NewManager(
		[]llmprovider.Provider{&stubProvider{fn: fn}},
		&llmprovider.Config{RetryAttempts: 1},
		nopLogger{},
	)
	return completion.New(m, nopLogger{})
}

func TestComplete_PassesHistoryAndInstruction(t *testing.T) {
	var captured *llmprovider.Request
	c := newCompleter(func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		captured = req
		return &llmprovider.Response{Text: "reply"}, nil
	})

	text, err := c.Complete(context.Background(), []chat.Turn{
		{Role: chat.RoleUser, Content: "venue in Delhi"},
		{Role: chat.RoleAssistant, Content: `{"task": "find_venue", "filters": {"location": "Delhi"}}`},
		{Role: chat.RoleUser, Content: "what about Mumbai?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "reply", text)

	require.NotNil(t, captured)
	assert.Equal(t, completion.SystemInstruction, captured.SystemInstruction)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "assistant", captured.Messages[1].Role)
	assert.Equal(t, "what about Mumbai?", captured.Messages[2].Text)
}

func TestComplete_WrapsProviderFailure(t *testing.T) {
	c := newCompleter(func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return nil, errors.New("upstream 503")
	})

	_, err := c.Complete(context.Background(), []chat.Turn{{Role: chat.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, chat.ErrProviderUnavailable)
}
