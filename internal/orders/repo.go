package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodexpress/foodexpress-backend/pkg/db/models"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

// Repository defines persistence operations for orders.
type Repository interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository constructs an order repository over a gorm handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return order, nil
}
