// README: Dialogue orchestrator: classify → extract → respond under the session lock.
package dialog

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"hestia/internal/config"
)

const replyServiceError = "Sorry, the service ran into a temporary problem. Please try again later."

// Service is the façade the transport layer calls. One Handle call is one
// dialogue turn: it runs the pipeline in strict order, single pass, and
// persists the pending-action transition before returning. Every path,
// including store failures, yields a reply string.
type Service struct {
	store      EntityStore
	classifier *Classifier
	extractor  *Extractor
	tracker    *Tracker
	responder  *Responder
	log        *zap.Logger
}

func NewService(store EntityStore, cfg config.IntentConfig, tracker *Tracker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:      store,
		classifier: NewClassifier(cfg),
		extractor:  NewExtractor(cfg.TimeTokens),
		tracker:    tracker,
		responder:  NewResponder(store),
		log:        log,
	}
}

// Handle processes one utterance for the given session identity and returns
// the reply with its usage counters.
func (s *Service) Handle(ctx context.Context, sessionID, utterance string) (Reply, error) {
	intent := s.classifier.Classify(utterance)
	s.log.Debug("classified utterance",
		zap.String("session", sessionID),
		zap.String("intent", string(intent)))

	ents, err := s.extractor.Extract(ctx, utterance, intent, s.store)
	if err != nil {
		s.log.Error("entity extraction failed", zap.String("session", sessionID), zap.Error(err))
		return s.reply(utterance, replyServiceError), nil
	}

	// The session lock covers the read of the pending action, the store
	// mutation inside Respond, and the transition write: concurrent turns
	// for one session serialize here.
	sess := s.tracker.acquire(sessionID)
	defer sess.mu.Unlock()

	var pending *PendingAction
	if sess.pending != nil {
		p := *sess.pending
		pending = &p
	}

	res, err := s.responder.Respond(ctx, Input{
		Intent:    intent,
		Entities:  ents,
		Pending:   pending,
		UserID:    sessionID,
		Utterance: utterance,
	})
	if err != nil {
		s.log.Error("response generation failed",
			zap.String("session", sessionID),
			zap.String("intent", string(intent)),
			zap.Error(err))
		return s.reply(utterance, replyServiceError), nil
	}

	switch {
	case res.Propose != nil:
		sess.pending = res.Propose
	case res.Clear:
		sess.pending = nil
	}

	return s.reply(utterance, res.Text), nil
}

func (s *Service) reply(utterance, text string) Reply {
	in := utf8.RuneCountInString(utterance)
	out := utf8.RuneCountInString(text)
	return Reply{
		Text: text,
		Usage: Usage{
			PromptTokens:     in,
			CompletionTokens: out,
			TotalTokens:      in + out,
		},
	}
}
