// README: Rule-based intent classifier; first match wins over a fixed rule order.
package dialog

import (
	"strings"

	"hestia/internal/config"
)

type rule struct {
	intent   Intent
	keywords []string
}

// Classifier maps an utterance to one Intent. The rule order is a contract:
// confirmation phrases outrank operation keywords, which outrank query
// keywords, so "please cancel, yes confirm cancel" is ConfirmCancel even
// though it also contains a cancel-order keyword. Keyword lists come from
// configuration; their order inside a group does not matter.
type Classifier struct {
	rules []rule
}

func NewClassifier(cfg config.IntentConfig) *Classifier {
	return &Classifier{rules: []rule{
		{IntentConfirmModify, cfg.ConfirmModifyPhrases},
		{IntentConfirmCancel, cfg.ConfirmCancelPhrases},
		{IntentCancelOperation, cfg.CancelOperationPhrases},
		{IntentModifyOrder, cfg.ModifyKeywords},
		{IntentCancelOrder, cfg.CancelKeywords},
		{IntentQueryNotes, cfg.NotesKeywords},
		{IntentQueryOrders, cfg.OrdersKeywords},
		// Greeting sits below the contractual rules so an utterance that
		// both greets and asks still routes to the ask.
		{IntentGreeting, cfg.GreetingKeywords},
	}}
}

// Classify is a pure function of the lower-cased utterance text.
func (c *Classifier) Classify(utterance string) Intent {
	lower := strings.ToLower(utterance)
	for _, r := range c.rules {
		if matchesAny(lower, r.keywords) {
			return r.intent
		}
	}
	return IntentUnknown
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
