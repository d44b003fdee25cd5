package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/internal/client/cart"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/kvstore"
)

func TestLoginDerivesNameFromEmail(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	identity, err := store.Login(ctx, "a@b.com", "whatever")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Name != "a" || identity.Email != "a@b.com" {
		t.Fatalf("unexpected identity %+v", identity)
	}

	current, ok := store.CurrentUser(ctx)
	if !ok || current != identity {
		t.Fatalf("expected persisted identity, got %+v ok=%v", current, ok)
	}
}

func TestLoginValidation(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"blank email", "", "pw"},
		{"blank password", "a@b.com", ""},
		{"whitespace only", "   ", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Login(ctx, tt.email, tt.password)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSignupRequiresAllFields(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	if _, err := store.Signup(ctx, "", "a@b.com", "pw"); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for blank name")
	}

	identity, err := store.Signup(ctx, "Asha", "asha@example.com", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if identity.Name != "Asha" {
		t.Fatalf("expected explicit name kept, got %q", identity.Name)
	}
}

func TestLogoutClearsIdentityOnly(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	store.Login(ctx, "a@b.com", "pw")
	store.SaveEstimate(ctx, LocationEstimate{Label: "Mumbai", EtaMinutes: 25})
	store.RecordOrder(ctx, OrderRecord{ID: "FX123456", When: time.Now()})

	store.Logout(ctx)

	if _, ok := store.CurrentUser(ctx); ok {
		t.Fatal("expected identity cleared")
	}
	if _, ok := store.Estimate(ctx); !ok {
		t.Fatal("expected estimate preserved across logout")
	}
	if len(store.Orders(ctx)) != 1 {
		t.Fatal("expected order history preserved across logout")
	}
}

func TestOrderHistoryMostRecentFirst(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	store.RecordOrder(ctx, OrderRecord{ID: "FX111111"})
	store.RecordOrder(ctx, OrderRecord{ID: "FX222222"})
	store.RecordOrder(ctx, OrderRecord{ID: "FX333333"})

	history := store.Orders(ctx)
	if len(history) != 3 {
		t.Fatalf("expected 3 records got %d", len(history))
	}
	if history[0].ID != "FX333333" || history[2].ID != "FX111111" {
		t.Fatalf("expected most recent first, got %+v", history)
	}
}

func TestOrderRecordKeepsCartSnapshot(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	ctx := context.Background()

	items := []cart.Line{{Name: "Dosa", Price: decimal.RequireFromString("50"), Quantity: 2}}
	store.RecordOrder(ctx, OrderRecord{ID: "FX123456", Items: items})

	history := store.Orders(ctx)
	if len(history[0].Items) != 1 || history[0].Items[0].Name != "Dosa" {
		t.Fatalf("expected snapshot preserved, got %+v", history[0].Items)
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string, any) (bool, error) {
	return false, errors.New("storage down")
}

func (failingKV) Set(context.Context, string, any) error {
	return errors.New("storage down")
}

func (failingKV) Remove(context.Context, string) error {
	return errors.New("storage down")
}

func TestStorageFailuresSwallowed(t *testing.T) {
	store := NewStore(failingKV{})
	ctx := context.Background()

	identity, err := store.Login(ctx, "a@b.com", "pw")
	if err != nil {
		t.Fatalf("login must succeed despite storage failure: %v", err)
	}
	if identity.Name != "a" {
		t.Fatalf("unexpected identity %+v", identity)
	}

	if _, ok := store.CurrentUser(ctx); ok {
		t.Fatal("failed read should behave like absent data")
	}

	store.SaveEstimate(ctx, LocationEstimate{Label: "Pune", EtaMinutes: 25})
	store.RecordOrder(ctx, OrderRecord{ID: "FX123456"})
	store.Logout(ctx)
	if history := store.Orders(ctx); history != nil {
		t.Fatalf("expected empty history on failing storage, got %+v", history)
	}
}
