// Package cart holds the in-memory shopping cart of a single browsing
// session. The Store is the only owner of cart state: every mutation goes
// through its methods and is serialized behind a mutex, and subscribers
// receive a fresh snapshot after each successful mutation.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alisha-attire/storefront/internal/models"
)

// Snapshot is an immutable view of the cart. The item slice is a copy and
// safe to hand out.
type Snapshot struct {
	Items      []models.CartItem `json:"items"`
	Open       bool              `json:"open"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

type Store struct {
	mu     sync.Mutex
	items  []models.CartItem
	open   bool
	nextID int
	subs   map[int]func(Snapshot)
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Snapshot))}
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// The returned func cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// AddItem merges quantity into an existing line for the same product or
// appends a new one. A quantity below 1 is clamped to 1; adding never fails.
func (s *Store) AddItem(p models.Product, quantity int, size string) {
	s.mu.Lock()
	if quantity < 1 {
		quantity = 1
	}
	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.CartItem{Product: p, Quantity: quantity, Size: size})
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

// RemoveItem deletes the line for productID. Unknown IDs are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or below removes the line. Unknown IDs are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

// Clear empties the cart. The open flag is left as is.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

func (s *Store) ToggleOpen() {
	s.mu.Lock()
	s.open = !s.open
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	publish(snap, subs)
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.items)
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.items)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, _ := s.snapshotLocked()
	return snap
}

func (s *Store) snapshotLocked() (Snapshot, []func(Snapshot)) {
	snap := Snapshot{
		Items:      copyItems(s.items),
		Open:       s.open,
		TotalItems: totalItems(s.items),
		TotalPrice: totalPrice(s.items),
	}
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

// publish runs outside the store lock so subscribers may call back into the
// store without deadlocking.
func publish(snap Snapshot, subs []func(Snapshot)) {
	for _, fn := range subs {
		fn(snap)
	}
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

func totalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func totalPrice(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
