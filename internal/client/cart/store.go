// Package cart holds the in-memory shopping cart used by the ordering
// client. The cart lives for the span of a browsing session and is
// never persisted; reloading the app starts with an empty cart.
package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

// Line is one dish in the cart. Lines are addressed by a surrogate ID
// so reordering or removal never shifts another line's identity.
type Line struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"qty"`
}

// Store is a concurrency-safe cart. Observers registered through
// Subscribe run synchronously after every mutation, mirroring how the
// UI re-renders on change.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	observers []func()
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the named dish in the cart. Adding a name that
// is already present bumps its quantity and keeps the price the line
// was first added with.
func (s *Store) Add(name string, price decimal.Decimal) (Line, error) {
	if name == "" {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "dish name required")
	}
	if price.IsNegative() {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Name == name {
			s.lines[i].Quantity++
			line := s.lines[i]
			s.mu.Unlock()
			s.notify()
			return line, nil
		}
	}

	line := Line{ID: uuid.New(), Name: name, Price: price, Quantity: 1}
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	s.notify()
	return line, nil
}

// IncrementLine adds one unit to the identified line.
func (s *Store) IncrementLine(id uuid.UUID) (Line, error) {
	return s.adjust(id, 1)
}

// DecrementLine removes one unit from the identified line. Quantity
// never drops below one; removal is an explicit separate action.
func (s *Store) DecrementLine(id uuid.UUID) (Line, error) {
	return s.adjust(id, -1)
}

func (s *Store) adjust(id uuid.UUID, delta int) (Line, error) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		next := s.lines[i].Quantity + delta
		if next < 1 {
			next = 1
		}
		changed := next != s.lines[i].Quantity
		s.lines[i].Quantity = next
		line := s.lines[i]
		s.mu.Unlock()
		if changed {
			s.notify()
		}
		return line, nil
	}
	s.mu.Unlock()
	return Line{}, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
}

// RemoveLine deletes the identified line entirely.
func (s *Store) RemoveLine(id uuid.UUID) error {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
}

// Lines returns a snapshot of the cart in insertion order. Mutating
// the returned slice does not affect the cart.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// Total returns the cart value, price times quantity summed over lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count returns the number of units across all lines, the badge number
// shown next to the cart icon.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers an observer invoked after every cart mutation.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}
