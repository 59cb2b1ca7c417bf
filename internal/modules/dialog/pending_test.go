// README: Pending-action tracker tests (overwrite, consume, TTL, capacity).
package dialog

import (
	"testing"
	"time"
)

func TestTrackerProposeResolve(t *testing.T) {
	tr := NewTracker(time.Minute, 16)

	if _, ok := tr.Peek("s1"); ok {
		t.Fatal("fresh session should have no pending action")
	}

	tr.Propose("s1", PendingAction{Kind: KindCancelOrder, OrderID: "order_124"})

	got, ok := tr.Peek("s1")
	if !ok || got.OrderID != "order_124" {
		t.Fatalf("peek = %+v, %v", got, ok)
	}

	got, ok = tr.Resolve("s1")
	if !ok || got.Kind != KindCancelOrder {
		t.Fatalf("resolve = %+v, %v", got, ok)
	}
	if _, ok := tr.Resolve("s1"); ok {
		t.Fatal("resolve must consume the pending action")
	}
}

func TestTrackerLastProposalWins(t *testing.T) {
	tr := NewTracker(time.Minute, 16)

	tr.Propose("s1", PendingAction{Kind: KindModifyOrder, OrderID: "order_123"})
	tr.Propose("s1", PendingAction{Kind: KindCancelOrder, OrderID: "order_124"})

	got, ok := tr.Peek("s1")
	if !ok {
		t.Fatal("expected a pending action")
	}
	if got.Kind != KindCancelOrder || got.OrderID != "order_124" {
		t.Fatalf("expected the later proposal, got %+v", got)
	}
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(time.Minute, 16)

	tr.Propose("s1", PendingAction{Kind: KindModifyOrder, OrderID: "order_123"})
	tr.Cancel("s1")

	if _, ok := tr.Peek("s1"); ok {
		t.Fatal("cancel must clear the pending action")
	}
}

func TestTrackerSessionsAreIsolated(t *testing.T) {
	tr := NewTracker(time.Minute, 16)

	tr.Propose("s1", PendingAction{Kind: KindCancelOrder, OrderID: "order_124"})

	if _, ok := tr.Peek("s2"); ok {
		t.Fatal("pending action leaked across sessions")
	}
}

func TestTrackerTTLExpiry(t *testing.T) {
	tr := NewTracker(20*time.Millisecond, 16)

	tr.Propose("s1", PendingAction{Kind: KindCancelOrder, OrderID: "order_124"})
	time.Sleep(60 * time.Millisecond)

	if _, ok := tr.Peek("s1"); ok {
		t.Fatal("pending action should have expired with the session")
	}
}

func TestTrackerCapacityBound(t *testing.T) {
	tr := NewTracker(time.Minute, 2)

	tr.Propose("s1", PendingAction{Kind: KindCancelOrder, OrderID: "order_123"})
	tr.Propose("s2", PendingAction{Kind: KindCancelOrder, OrderID: "order_123"})
	tr.Propose("s3", PendingAction{Kind: KindCancelOrder, OrderID: "order_123"})

	if n := tr.Len(); n > 2 {
		t.Fatalf("expected at most 2 retained sessions, got %d", n)
	}
	// The oldest session was evicted; the newest survives.
	if _, ok := tr.Peek("s3"); !ok {
		t.Fatal("newest session should still be retained")
	}
}
