package menu

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodexpress/foodexpress-backend/pkg/db/models"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

// Repository defines read operations over the menu catalog.
type Repository interface {
	ListItems(ctx context.Context) ([]models.MenuItem, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository constructs a menu repository over a gorm handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListItems returns every menu item, newest first so recently added
// dishes surface at the top of the menu.
func (r *repository) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return items, nil
}
