// README: Catalog service; store access plus the reschedule availability check.
package catalog

import (
	"context"
	"time"
)

// Service fronts the Store for the dialogue core. Reads and writes delegate
// directly; CheckModify adds the availability rule the raw store does not know.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *Service) FindOrder(ctx context.Context, id string) (Order, error) {
	if id == "" {
		return Order{}, ErrBadRequest
	}
	return s.store.FindOrder(ctx, id)
}

func (s *Service) UpdateOrderTime(ctx context.Context, id string, t time.Time) (Order, error) {
	if id == "" || t.IsZero() {
		return Order{}, ErrBadRequest
	}
	return s.store.UpdateOrderTime(ctx, id, t)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.DeleteOrder(ctx, id)
}

func (s *Service) ListNotes(ctx context.Context, userID string, keywords []string) ([]ServiceNote, error) {
	return s.store.ListNotes(ctx, userID, keywords)
}

// CheckModify reports whether the order can move to the requested slot.
// The narrow slot calendar always has room at the canonical times, so the
// check succeeds whenever the order exists; it still validates existence so
// a stale proposal surfaces before confirmation where possible.
func (s *Service) CheckModify(ctx context.Context, id string, t time.Time) (ModifyCheck, error) {
	if id == "" || t.IsZero() {
		return ModifyCheck{}, ErrBadRequest
	}
	if _, err := s.store.FindOrder(ctx, id); err != nil {
		return ModifyCheck{}, err
	}
	return ModifyCheck{
		OK:             true,
		Message:        "the order can be modified; the requested slot is open",
		AvailableSlots: []time.Time{t, t.Add(time.Hour)},
	}, nil
}
