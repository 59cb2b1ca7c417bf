// README: Catalog store and service tests.
package catalog

import (
	"context"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(NewStore(DemoOrders(), DemoNotes()))
}

func TestFindOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	o, err := svc.FindOrder(ctx, "order_123")
	if err != nil {
		t.Fatalf("find order_123: %v", err)
	}
	if o.ServiceType != "deep cleaning" || o.ServicePerson != "Auntie Zhang" {
		t.Fatalf("unexpected order: %+v", o)
	}

	if _, err := svc.FindOrder(ctx, "order_999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.FindOrder(ctx, ""); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestUpdateOrderTime(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	newTime := mustTime("2023-11-02 14:00:00")
	updated, err := svc.UpdateOrderTime(ctx, "order_123", newTime)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.ServiceTime.Equal(newTime) {
		t.Fatalf("expected %v, got %v", newTime, updated.ServiceTime)
	}

	// The change is visible through a fresh read, not just the return value.
	o, err := svc.FindOrder(ctx, "order_123")
	if err != nil {
		t.Fatalf("re-find: %v", err)
	}
	if !o.ServiceTime.Equal(newTime) {
		t.Fatalf("expected persisted time %v, got %v", newTime, o.ServiceTime)
	}

	if _, err := svc.UpdateOrderTime(ctx, "order_999", newTime); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.DeleteOrder(ctx, "order_124"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	orders, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, o := range orders {
		if o.ID == "order_124" {
			t.Fatalf("order_124 still listed after delete")
		}
	}

	if err := svc.DeleteOrder(ctx, "order_124"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListNotesKeywordFallback(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name     string
		userID   string
		keywords []string
		want     int
	}{
		{"keyword match", "user_123", []string{"kitchen"}, 2},
		{"single match", "user_123", []string{"bedrooms"}, 1},
		{"no keywords falls back to all", "user_123", nil, 2},
		{"unmatched keywords fall back to all", "user_123", []string{"plumbing"}, 2},
		{"unknown user has nothing", "user_999", []string{"kitchen"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notes, err := svc.ListNotes(ctx, tc.userID, tc.keywords)
			if err != nil {
				t.Fatalf("list notes: %v", err)
			}
			if len(notes) != tc.want {
				t.Fatalf("expected %d notes, got %d", tc.want, len(notes))
			}
		})
	}
}

func TestCheckModify(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	slot := mustTime("2023-11-02 14:00:00")
	check, err := svc.CheckModify(ctx, "order_123", slot)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !check.OK {
		t.Fatalf("expected modifiable, got %+v", check)
	}
	if len(check.AvailableSlots) == 0 || !check.AvailableSlots[0].Equal(slot) {
		t.Fatalf("expected requested slot first, got %v", check.AvailableSlots)
	}

	if _, err := svc.CheckModify(ctx, "order_999", slot); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.CheckModify(ctx, "order_123", time.Time{}); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
