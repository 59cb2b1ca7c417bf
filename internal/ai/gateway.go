// README: Gateway reply strategy; routes every utterance to the LLM provider.
package ai

import (
	"context"
	"unicode/utf8"

	"hestia/internal/modules/dialog"
)

// Gateway adapts a ReplyProvider to the transport's replier contract. In
// gateway mode it replaces the rule-based dialogue core entirely; the two
// strategies are never composed.
type Gateway struct {
	provider ReplyProvider
}

func NewGateway(provider ReplyProvider) *Gateway {
	return &Gateway{provider: provider}
}

func (g *Gateway) Handle(ctx context.Context, sessionID, utterance string) (dialog.Reply, error) {
	text, err := g.provider.Reply(ctx, sessionID, utterance)
	if err != nil {
		return dialog.Reply{}, err
	}

	in := utf8.RuneCountInString(utterance)
	out := utf8.RuneCountInString(text)
	return dialog.Reply{
		Text: text,
		Usage: dialog.Usage{
			PromptTokens:     in,
			CompletionTokens: out,
			TotalTokens:      in + out,
		},
	}, nil
}
