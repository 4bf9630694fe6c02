package whatsapp

import (
	"context"

	"booking-service/internal/domain"
)

type NotifierInterface interface {
	SendInvoice(ctx context.Context, b *domain.Booking, pdfPath string) error
	SendStatusChange(ctx context.Context, b *domain.Booking, status domain.BookingStatus, shipment *domain.Shipment) error
}

var _ NotifierInterface = (*Client)(nil)
