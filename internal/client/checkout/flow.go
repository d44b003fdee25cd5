// Package checkout drives the ordering client from estimate request to
// simulated payment. The flow is a small state machine; payments never
// talk to a real processor and always succeed for a signed-in user.
package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/internal/client/cart"
	"github.com/foodexpress/foodexpress-backend/internal/client/session"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

// State is the checkout flow position.
type State int

const (
	StateIdle State = iota
	StateAwaitingEstimate
	StateEstimateReady
	StatePaymentSimulated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingEstimate:
		return "awaiting_estimate"
	case StateEstimateReady:
		return "estimate_ready"
	case StatePaymentSimulated:
		return "payment_simulated"
	}
	return "unknown"
}

// Pages the flow navigates to.
const (
	PageLogin    = "login"
	PageTracking = "track-order"
)

// Fallback estimate bounds used when the remote estimator fails.
const (
	fallbackMinMinutes  = 25
	fallbackSpreadMinutes = 16
)

// Estimator produces delivery minutes for a location. The remote API
// client satisfies this; tests and offline builds use EstimatorFunc
// over the local estimation rules.
type Estimator interface {
	EstimateDelivery(ctx context.Context, location string) (int, error)
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(ctx context.Context, location string) (int, error)

func (f EstimatorFunc) EstimateDelivery(ctx context.Context, location string) (int, error) {
	return f(ctx, location)
}

// RemoteOrders submits the order upstream. Submission is best-effort;
// the local OrderRecord stands regardless of the outcome.
type RemoteOrders interface {
	PlaceOrder(ctx context.Context, submission OrderSubmission) error
}

// OrderSubmission is the payload sent to the order API at payment.
type OrderSubmission struct {
	FoodName    string
	City        string
	TotalAmount decimal.Decimal
}

// Navigator abstracts page navigation.
type Navigator interface {
	Redirect(page string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(page string)

func (f NavigatorFunc) Redirect(page string) {
	f(page)
}

// Flow coordinates cart, session and the remote API through checkout.
type Flow struct {
	cart      *cart.Store
	session   *session.Store
	estimator Estimator
	orders    RemoteOrders
	nav       Navigator

	randInt func(n int) int
	now     func() time.Time

	mu       sync.Mutex
	state    State
	inFlight bool
}

// NewFlow wires a checkout flow. Cart, session, estimator and
// navigator are required; orders may be nil for offline use.
func NewFlow(cartStore *cart.Store, sessionStore *session.Store, estimator Estimator, orders RemoteOrders, nav Navigator) (*Flow, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if sessionStore == nil {
		return nil, fmt.Errorf("session store required")
	}
	if estimator == nil {
		return nil, fmt.Errorf("estimator required")
	}
	if nav == nil {
		return nil, fmt.Errorf("navigator required")
	}
	return &Flow{
		cart:      cartStore,
		session:   sessionStore,
		estimator: estimator,
		orders:    orders,
		nav:       nav,
		randInt:   rand.Intn,
		now:       time.Now,
	}, nil
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RequestEstimate fetches a delivery estimate for the location and
// stores it for display. While a request is outstanding further calls
// are no-ops; the first caller wins. Estimator failures degrade to a
// randomized 25-40 minute fallback rather than surfacing an error.
func (f *Flow) RequestEstimate(ctx context.Context, location string) (session.LocationEstimate, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return session.LocationEstimate{}, pkgerrors.New(pkgerrors.CodeValidation, "Missing location (pincode or city)")
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return session.LocationEstimate{}, pkgerrors.New(pkgerrors.CodeStateConflict, "estimate request already in flight")
	}
	f.inFlight = true
	f.state = StateAwaitingEstimate
	f.mu.Unlock()

	minutes, err := f.estimator.EstimateDelivery(ctx, location)
	if err != nil || minutes <= 0 {
		minutes = fallbackMinMinutes + f.randInt(fallbackSpreadMinutes)
	}

	estimate := session.LocationEstimate{Label: location, EtaMinutes: minutes}
	f.session.SaveEstimate(ctx, estimate)

	f.mu.Lock()
	f.inFlight = false
	f.state = StateEstimateReady
	f.mu.Unlock()

	return estimate, nil
}

// ProceedToPay simulates payment. Anonymous users are sent to the
// login page and no order is recorded. For a signed-in user payment
// always succeeds: a local OrderRecord with the cart snapshot goes to
// the front of the history, the order is submitted upstream on a
// best-effort basis, the displayed estimate is cleared and the flow
// navigates to tracking.
func (f *Flow) ProceedToPay(ctx context.Context) (session.OrderRecord, error) {
	if _, ok := f.session.CurrentUser(ctx); !ok {
		f.nav.Redirect(PageLogin)
		return session.OrderRecord{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to pay")
	}

	items := f.cart.Lines()
	if len(items) == 0 {
		return session.OrderRecord{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	record := session.OrderRecord{
		ID:    fmt.Sprintf("FX%d", 100000+f.randInt(900000)),
		When:  f.now(),
		Items: items,
	}
	f.session.RecordOrder(ctx, record)

	if f.orders != nil {
		names := make([]string, 0, len(items))
		for _, line := range items {
			names = append(names, line.Name)
		}
		city := ""
		if estimate, ok := f.session.Estimate(ctx); ok {
			city = estimate.Label
		}
		// The remote order is uncorrelated with the local record; a
		// failed submission does not undo the payment.
		_ = f.orders.PlaceOrder(ctx, OrderSubmission{
			FoodName:    strings.Join(names, ", "),
			City:        city,
			TotalAmount: f.cart.Total(),
		})
	}

	f.session.ClearEstimate(ctx)

	f.mu.Lock()
	f.state = StatePaymentSimulated
	f.mu.Unlock()

	f.nav.Redirect(PageTracking)
	return record, nil
}

// Reset returns the flow to idle, e.g. when the user starts a fresh
// browsing session.
func (f *Flow) Reset() {
	f.mu.Lock()
	f.state = StateIdle
	f.inFlight = false
	f.mu.Unlock()
}
