package foodapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/internal/client/checkout"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

func TestMenuFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/menu" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"name":"Masala Dosa","price":"99.00","category":"Mains"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items, err := client.Menu(context.Background())
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Masala Dosa" {
		t.Fatalf("unexpected items %+v", items)
	}
	if !items[0].Price.Equal(decimal.RequireFromString("99.00")) {
		t.Fatalf("unexpected price %s", items[0].Price)
	}
}

func TestEstimateDelivery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/delivery-time" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("location"); got != "Mumbai 400001" {
			t.Fatalf("unexpected location %q", got)
		}
		_, _ = w.Write([]byte(`{"location":"Mumbai 400001","etaMinutes":20,"etaText":"20-35 mins"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	minutes, err := client.EstimateDelivery(context.Background(), "Mumbai 400001")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if minutes != 20 {
		t.Fatalf("expected 20 got %d", minutes)
	}
}

func TestEstimateDeliveryNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing location (pincode or city)"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.EstimateDelivery(context.Background(), "x")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestPlaceOrder(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/order" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"order":{"foodName":"Dosa, Biryani"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.PlaceOrder(context.Background(), checkout.OrderSubmission{
		FoodName:    "Dosa, Biryani",
		City:        "Mumbai",
		TotalAmount: decimal.RequireFromString("299"),
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if received["foodName"] != "Dosa, Biryani" {
		t.Fatalf("unexpected foodName %v", received["foodName"])
	}
	location, _ := received["userLocation"].(map[string]any)
	if location["city"] != "Mumbai" {
		t.Fatalf("unexpected city %v", location)
	}
}

func TestPlaceOrderRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid or missing foodName"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.PlaceOrder(context.Background(), checkout.OrderSubmission{FoodName: ""})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
