package repository

import (
	"context"

	"booking-service/internal/domain"
)

// BookingRepository is the transactional persistence boundary for bookings.
type BookingRepository interface {
	// Save inserts the booking with its items and applies the stock
	// decrements in one transaction. A duplicate order id yields
	// domain.ErrDuplicateOrder; a failed decrement yields
	// domain.ErrInsufficientStock and rolls back the whole insert.
	Save(ctx context.Context, b *domain.Booking, decs []domain.StockDecrement) error

	// FindByOrderID returns nil, nil when no booking matches.
	FindByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)

	FindByID(ctx context.Context, id uint64) (*domain.Booking, error)

	// UpdateStatus sets the status and, when shipment is non-nil, inserts
	// the shipment row in the same transaction.
	UpdateStatus(ctx context.Context, id uint64, status domain.BookingStatus, shipment *domain.Shipment) (*domain.Booking, error)

	// List filters by status and customer type; empty strings match all.
	List(ctx context.Context, status domain.BookingStatus, customerType string) ([]domain.Booking, error)

	// ListByStatuses returns bookings whose status is in the given set,
	// with shipment details preloaded.
	ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error)

	UpdateArtifactPath(ctx context.Context, orderID, path string) error
}
