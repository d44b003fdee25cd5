package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ordersvc "github.com/foodexpress/foodexpress-backend/internal/orders"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

type stubOrderService struct {
	created *ordersvc.CreatedDTO
	err     error
	input   ordersvc.PlaceOrderInput
}

func (s *stubOrderService) PlaceOrder(_ context.Context, input ordersvc.PlaceOrderInput) (*ordersvc.CreatedDTO, error) {
	s.input = input
	return s.created, s.err
}

func TestOrderCreateSuccess(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrderService{created: &ordersvc.CreatedDTO{Order: ordersvc.OrderDTO{
		ID:          orderID,
		FoodName:    "Chicken Biryani",
		TotalAmount: decimal.RequireFromString("199.00"),
		Status:      "received",
	}}}
	handler := OrderCreate(svc, nil)

	body := `{"foodName":"Chicken Biryani","userLocation":{"pincode":"560001","city":"Bengaluru"},"totalAmount":199.00}`
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var payload struct {
		Order struct {
			ID       uuid.UUID `json:"id"`
			FoodName string    `json:"foodName"`
			Status   string    `json:"status"`
		} `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Order.ID != orderID || payload.Order.Status != "received" {
		t.Fatalf("unexpected order %+v", payload.Order)
	}

	if svc.input.FoodName != "Chicken Biryani" {
		t.Fatalf("food name not passed through: %q", svc.input.FoodName)
	}
	if svc.input.Location.Pincode != "560001" || svc.input.Location.City != "Bengaluru" {
		t.Fatalf("location not passed through: %+v", svc.input.Location)
	}
	if svc.input.TotalAmount == nil || !svc.input.TotalAmount.Equal(decimal.RequireFromString("199.00")) {
		t.Fatalf("amount not passed through: %v", svc.input.TotalAmount)
	}
}

func TestOrderCreateMissingAmountReachesService(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeValidation, "Invalid totalAmount")}
	handler := OrderCreate(svc, nil)

	body := `{"foodName":"Dosa","userLocation":{}}`
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.input.TotalAmount != nil {
		t.Fatal("expected nil amount for missing field")
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error != "Invalid totalAmount" {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
}

func TestOrderCreateMalformedBody(t *testing.T) {
	svc := &stubOrderService{}
	handler := OrderCreate(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(`{not json`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
