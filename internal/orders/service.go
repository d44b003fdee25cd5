package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/pkg/db/models"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
)

// Service exposes order placement.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*CreatedDTO, error)
}

// PlaceOrderInput holds the decoded order payload. TotalAmount is a
// pointer so a missing field is distinguishable from an explicit zero.
type PlaceOrderInput struct {
	FoodName    string
	Location    LocationInput
	TotalAmount *decimal.Decimal
}

// LocationInput carries the optional delivery location fields.
type LocationInput struct {
	Pincode string
	City    string
	Address string
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService constructs an order service instance.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// PlaceOrder validates and persists a new order. Every order starts in
// the received status.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*CreatedDTO, error) {
	foodName := strings.TrimSpace(input.FoodName)
	if foodName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid or missing foodName")
	}
	if input.TotalAmount == nil || input.TotalAmount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid totalAmount")
	}

	order := &models.Order{
		FoodName:        foodName,
		LocationPincode: strings.TrimSpace(input.Location.Pincode),
		LocationCity:    strings.TrimSpace(input.Location.City),
		LocationAddress: strings.TrimSpace(input.Location.Address),
		TotalAmount:     *input.TotalAmount,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"order_id":  created.ID.String(),
			"food_name": created.FoodName,
		}), "order.placed")
	}

	dto := toOrderDTO(*created)
	return &CreatedDTO{Order: dto}, nil
}
