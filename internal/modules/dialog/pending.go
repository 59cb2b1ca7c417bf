// README: Per-session pending-action tracker with TTL and capacity bounds.
package dialog

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type PendingKind string

const (
	KindModifyOrder PendingKind = "modify_order"
	KindCancelOrder PendingKind = "cancel_order"
)

// PendingAction is an unconfirmed mutating operation. A ModifyOrder action
// always carries a NewTime; a CancelOrder action never does.
type PendingAction struct {
	Kind    PendingKind
	OrderID string
	NewTime time.Time
}

type session struct {
	mu      sync.Mutex
	pending *PendingAction
}

// Tracker keeps at most one PendingAction per session. Sessions live in an
// expirable LRU so an abandoned proposal disappears after the TTL and total
// retention is capped; both bounds come from configuration. The per-session
// mutex serializes concurrent turns for one session, so two in-flight
// confirmations cannot both consume the same proposal.
type Tracker struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

func NewTracker(ttl time.Duration, capacity int) *Tracker {
	return &Tracker{
		sessions: expirable.NewLRU[string, *session](capacity, nil, ttl),
	}
}

// acquire returns the session record for id, creating it on first use, and
// takes the session lock. The caller must release it via session.mu.
func (t *Tracker) acquire(id string) *session {
	t.mu.Lock()
	sess, ok := t.sessions.Get(id)
	if !ok {
		sess = &session{}
		t.sessions.Add(id, sess)
	}
	t.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// Propose records a new pending action, overwriting any existing one.
// Last proposal wins; there is no queue.
func (t *Tracker) Propose(id string, action PendingAction) {
	sess := t.acquire(id)
	defer sess.mu.Unlock()
	a := action
	sess.pending = &a
}

// Resolve consumes and returns the pending action, if any.
func (t *Tracker) Resolve(id string) (PendingAction, bool) {
	sess := t.acquire(id)
	defer sess.mu.Unlock()
	if sess.pending == nil {
		return PendingAction{}, false
	}
	a := *sess.pending
	sess.pending = nil
	return a, true
}

// Cancel clears the pending action without applying it.
func (t *Tracker) Cancel(id string) {
	sess := t.acquire(id)
	defer sess.mu.Unlock()
	sess.pending = nil
}

// Peek returns the pending action without consuming it.
func (t *Tracker) Peek(id string) (PendingAction, bool) {
	sess := t.acquire(id)
	defer sess.mu.Unlock()
	if sess.pending == nil {
		return PendingAction{}, false
	}
	return *sess.pending, true
}

// Len reports how many sessions are currently retained.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessions.Len()
}
