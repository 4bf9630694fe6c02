package repository

import (
	"context"

	"booking-service/internal/domain"
)

// CatalogRepository is the read side of the category-partitioned catalog.
// The set of valid category names is data, never compiled in.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]string, error)

	// ListAvailable returns the sellable products of a category, i.e.
	// those with status "on". An unknown category yields
	// domain.ErrCategoryNotFound.
	ListAvailable(ctx context.Context, category string) ([]domain.Product, error)

	// FindProduct returns nil, nil when no product matches (category, id).
	FindProduct(ctx context.Context, category string, id uint64) (*domain.Product, error)
}

// CustomerRepository reads standing customer records.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.Customer, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
}
