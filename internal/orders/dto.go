package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/pkg/db/models"
)

// LocationDTO mirrors the userLocation object accepted and echoed by
// the order endpoint. All fields are optional.
type LocationDTO struct {
	Pincode string `json:"pincode,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderDTO is the public order payload.
type OrderDTO struct {
	ID           uuid.UUID       `json:"id"`
	FoodName     string          `json:"foodName"`
	UserLocation LocationDTO     `json:"userLocation"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreatedDTO wraps a newly placed order.
type CreatedDTO struct {
	Order OrderDTO `json:"order"`
}

func toOrderDTO(order models.Order) OrderDTO {
	return OrderDTO{
		ID:       order.ID,
		FoodName: order.FoodName,
		UserLocation: LocationDTO{
			Pincode: order.LocationPincode,
			City:    order.LocationCity,
			Address: order.LocationAddress,
		},
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
}
