package completion

import (
	"context"
	"fmt"

	"dwed-assistant/internal/chat"
	"dwed-assistant/pkg/llmprovider"
	"dwed-assistant/pkg/log"
)

// Completer produces one assistant reply for a conversation history.
type Completer interface {
	Complete(ctx context.Context, turns []chat.Turn) (string, error)
}

type implCompleter struct {
	manager *llmprovider.Manager
	l       log.Logger
}

// New wraps the provider manager as a Completer. Provider failures are
// folded into chat.ErrProviderUnavailable so the layers above never see
// provider-specific errors.
func New(manager *llmprovider.Manager, l log.Logger) Completer {
	return &implCompleter{manager: manager, l: l}
}

func (c *implCompleter) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: SystemInstruction,
		Messages:          toMessages(turns),
	}

	resp, err := c.manager.GenerateContent(ctx, req)
	if err != nil {
		c.l.Errorf(ctx, "chat/completion.Complete: %v", err)
		return "", fmt.Errorf("%w: %v", chat.ErrProviderUnavailable, err)
	}

	c.l.Debugf(ctx, "chat/completion.Complete: provider=%s model=%s instruction=v%d tokens=%d",
		resp.ProviderName, resp.ModelName, InstructionVersion, resp.Usage.TotalTokens)
	return resp.Text, nil
}

func toMessages(turns []chat.Turn) []llmprovider.Message {
	msgs := make([]llmprovider.Message, len(turns))
	for i, t := range turns {
		msgs[i] = llmprovider.Message{Role: string(t.Role), Text: t.Content}
	}
	return msgs
}
