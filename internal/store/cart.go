package store

import (
	"sync"

	"github.com/example/lessence/internal/models"
)

// CartStore keeps one shopping cart per session, in memory. Every
// operation is a total function: mutations targeting absent lines are
// silent no-ops and nothing here returns an error.
type CartStore struct {
	mu      sync.Mutex
	catalog *Catalog
	carts   map[string][]models.CartLine
}

// NewCartStore constructs an empty CartStore backed by the catalogue
// for price lookups.
func NewCartStore(catalog *Catalog) *CartStore {
	return &CartStore{
		catalog: catalog,
		carts:   make(map[string][]models.CartLine),
	}
}

// Add puts one unit of the perfume into the session's cart. If a line
// for the perfume already exists its quantity is incremented; a second
// line is never created.
func (s *CartStore) Add(sessionID, perfumeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].PerfumeID == perfumeID {
			lines[i].Quantity++
			return
		}
	}
	s.carts[sessionID] = append(lines, models.CartLine{PerfumeID: perfumeID, Quantity: 1})
}

// Remove deletes the line for the perfume regardless of its quantity.
// Removing an absent line is a no-op.
func (s *CartStore) Remove(sessionID, perfumeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].PerfumeID == perfumeID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts the line's quantity by delta, clamping at 1.
// Updating an absent line is a no-op; lines are only deleted via
// Remove.
func (s *CartStore) UpdateQuantity(sessionID, perfumeID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].PerfumeID == perfumeID {
			q := lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			lines[i].Quantity = q
			return
		}
	}
}

// Lines returns the session's cart lines in insertion order.
func (s *CartStore) Lines(sessionID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// TotalCount sums the quantities across all lines of the session.
func (s *CartStore) TotalCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.carts[sessionID] {
		total += line.Quantity
	}
	return total
}

// Subtotal sums price*quantity over the session's lines using the
// catalogue's static prices.
func (s *CartStore) Subtotal(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.carts[sessionID] {
		if p, ok := s.catalog.Get(line.PerfumeID); ok {
			total += p.Price * line.Quantity
		}
	}
	return total
}
