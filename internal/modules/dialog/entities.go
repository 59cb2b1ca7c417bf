// README: Slot extraction: order ids by literal match, times via the token table.
package dialog

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Extractor binds slot values from an utterance, conditioned on the intent.
// It reads the live order list so only ids that actually exist can bind;
// it never writes.
type Extractor struct {
	// tokens are the recognized date/day tokens, sorted so extraction is
	// deterministic regardless of config map iteration order.
	tokens []timeToken
}

type timeToken struct {
	token string
	t     time.Time
}

func NewExtractor(timeTokens map[string]time.Time) *Extractor {
	tokens := make([]timeToken, 0, len(timeTokens))
	for tok, t := range timeTokens {
		tokens = append(tokens, timeToken{token: strings.ToLower(tok), t: t})
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].token < tokens[j].token })
	return &Extractor{tokens: tokens}
}

// Extract binds the order id and, for modify requests, the new service time.
// Confirmation intents bind nothing here: their entities live in the
// session's pending action, which the responder resolves.
func (e *Extractor) Extract(ctx context.Context, utterance string, intent Intent, store EntityStore) (Entities, error) {
	var ents Entities

	if intent == IntentModifyOrder || intent == IntentCancelOrder {
		orders, err := store.ListOrders(ctx)
		if err != nil {
			return Entities{}, err
		}
		for _, o := range orders {
			if strings.Contains(utterance, o.ID) {
				ents.OrderID = o.ID
				break
			}
		}
	}

	if intent == IntentModifyOrder {
		lower := strings.ToLower(utterance)
		for _, tok := range e.tokens {
			if strings.Contains(lower, tok.token) {
				ents.NewTime = tok.t
				break
			}
		}
	}

	return ents, nil
}
