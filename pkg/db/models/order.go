package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/foodexpress/foodexpress-backend/pkg/enums"
)

// Order is a received food order. The delivery location is denormalized
// onto the row; none of the fields are required individually.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	FoodName        string            `gorm:"column:food_name;not null"`
	LocationPincode string            `gorm:"column:location_pincode;not null;default:''"`
	LocationCity    string            `gorm:"column:location_city;not null;default:''"`
	LocationAddress string            `gorm:"column:location_address;not null;default:''"`
	TotalAmount     decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'received'"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = enums.OrderStatusReceived
	}
	return nil
}
