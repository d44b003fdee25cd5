package menu

import (
	"context"
	"fmt"
)

// Service exposes the public menu.
type Service interface {
	ListMenu(ctx context.Context) (*ListDTO, error)
}

type service struct {
	repo Repository
}

// NewService constructs a menu service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

// ListMenu returns all menu items, newest first. The items slice is
// always non-nil so the response serializes as an empty array rather
// than null.
func (s *service) ListMenu(ctx context.Context) (*ListDTO, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}
	return &ListDTO{Items: dtos}, nil
}
