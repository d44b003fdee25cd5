package delivery

import (
	"context"
	"fmt"

	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

// Service exposes delivery-time estimation.
type Service interface {
	EstimateDelivery(ctx context.Context, location string) (*EstimateDTO, error)
}

// EstimateDTO is the delivery estimate payload returned to clients.
type EstimateDTO struct {
	Location   string `json:"location"`
	EtaMinutes int    `json:"etaMinutes"`
	EtaText    string `json:"etaText"`
}

type service struct{}

// NewService constructs a delivery estimation service.
func NewService() Service {
	return &service{}
}

// EstimateDelivery estimates delivery time for a raw location string.
// The location must be non-empty; callers normalize whitespace first.
func (s *service) EstimateDelivery(_ context.Context, location string) (*EstimateDTO, error) {
	if location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing location (pincode or city)")
	}

	minutes := Estimate(location)
	return &EstimateDTO{
		Location:   location,
		EtaMinutes: minutes,
		EtaText:    fmt.Sprintf("%d-%d mins", minutes, minutes+EtaWindowMinutes),
	}, nil
}
