// Package session keeps the ordering client's durable state: who is
// logged in, the last delivery estimate shown, and the order history.
// Storage is best-effort, the same contract the browser build had with
// localStorage: a failed read behaves like absent data and a failed
// write is dropped silently so the UI never breaks over persistence.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/foodexpress/foodexpress-backend/internal/client/cart"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/kvstore"
)

const (
	keyUser     = "fx_user"
	keyLocation = "fx_location"
	keyOrders   = "fx_orders"
)

// Identity is the logged-in user. There are no credentials on record;
// login accepts any non-blank email/password pair.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LocationEstimate is the last delivery estimate shown to the user.
// It is overwritten whole on every new estimate.
type LocationEstimate struct {
	Label      string `json:"label"`
	EtaMinutes int    `json:"eta"`
}

// OrderRecord is one locally recorded order with the cart snapshot at
// the moment of payment.
type OrderRecord struct {
	ID    string      `json:"id"`
	When  time.Time   `json:"when"`
	Items []cart.Line `json:"items"`
}

// Store wraps a durable KV with the session's record semantics.
type Store struct {
	kv kvstore.Store
}

// NewStore wraps the given KV backend.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Login signs the user in, deriving the display name from the part of
// the email before the @. The password is required but never checked.
func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return Identity{}, pkgerrors.New(pkgerrors.CodeValidation, "email and password required")
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	identity := Identity{Name: name, Email: email}
	_ = s.kv.Set(ctx, keyUser, identity)
	return identity, nil
}

// Signup registers the user with an explicit display name. Like Login
// it stores no credentials.
func (s *Store) Signup(ctx context.Context, name, email, password string) (Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return Identity{}, pkgerrors.New(pkgerrors.CodeValidation, "name, email and password required")
	}

	identity := Identity{Name: name, Email: email}
	_ = s.kv.Set(ctx, keyUser, identity)
	return identity, nil
}

// CurrentUser returns the logged-in identity, if any.
func (s *Store) CurrentUser(ctx context.Context) (Identity, bool) {
	var identity Identity
	found, err := s.kv.Get(ctx, keyUser, &identity)
	if err != nil || !found {
		return Identity{}, false
	}
	return identity, true
}

// Logout clears the identity. The delivery estimate and order history
// stay behind; history belongs to the device, not the account.
func (s *Store) Logout(ctx context.Context) {
	_ = s.kv.Remove(ctx, keyUser)
}

// SaveEstimate stores the delivery estimate currently on display.
func (s *Store) SaveEstimate(ctx context.Context, estimate LocationEstimate) {
	_ = s.kv.Set(ctx, keyLocation, estimate)
}

// Estimate returns the stored delivery estimate, if any.
func (s *Store) Estimate(ctx context.Context) (LocationEstimate, bool) {
	var estimate LocationEstimate
	found, err := s.kv.Get(ctx, keyLocation, &estimate)
	if err != nil || !found {
		return LocationEstimate{}, false
	}
	return estimate, true
}

// ClearEstimate removes the stored estimate.
func (s *Store) ClearEstimate(ctx context.Context) {
	_ = s.kv.Remove(ctx, keyLocation)
}

// RecordOrder prepends the record so history reads most recent first.
func (s *Store) RecordOrder(ctx context.Context, record OrderRecord) {
	history := s.Orders(ctx)
	history = append([]OrderRecord{record}, history...)
	_ = s.kv.Set(ctx, keyOrders, history)
}

// Orders returns the order history, most recent first. History is
// never pruned.
func (s *Store) Orders(ctx context.Context) []OrderRecord {
	var history []OrderRecord
	found, err := s.kv.Get(ctx, keyOrders, &history)
	if err != nil || !found {
		return nil
	}
	return history
}
