// README: In-memory catalog store; the mutable order list and read-only notes.
package catalog

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store holds the seeded catalog in memory. A single RWMutex guards both
// collections: every check-then-write on an order happens under one write
// lock, so two concurrent confirmations cannot both mutate the same record.
type Store struct {
	mu     sync.RWMutex
	orders []Order
	notes  []ServiceNote
}

func NewStore(orders []Order, notes []ServiceNote) *Store {
	s := &Store{
		orders: make([]Order, len(orders)),
		notes:  make([]ServiceNote, len(notes)),
	}
	copy(s.orders, orders)
	copy(s.notes, notes)
	return s
}

// ListOrders returns copies of all live orders in seed order.
func (s *Store) ListOrders(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *Store) FindOrder(ctx context.Context, id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// UpdateOrderTime sets a new service time and returns the updated order.
func (s *Store) UpdateOrderTime(ctx context.Context, id string, t time.Time) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].ServiceTime = t
			return s.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}

// DeleteOrder removes the order entirely; a cancelled visit leaves no record.
func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListNotes returns the user's notes whose content contains any keyword.
// An empty keyword set, or a keyword set matching nothing, falls back to all
// of the user's notes: a vague question still gets the full history.
func (s *Store) ListNotes(ctx context.Context, userID string, keywords []string) ([]ServiceNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []ServiceNote
	for _, n := range s.notes {
		if n.UserID != userID {
			continue
		}
		if containsAny(n.Content, keywords) {
			matched = append(matched, n)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}

	var all []ServiceNote
	for _, n := range s.notes {
		if n.UserID == userID {
			all = append(all, n)
		}
	}
	return all, nil
}

func containsAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
