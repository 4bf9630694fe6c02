package services

import (
	"context"
	"os"
	"strings"

	"booking-service/internal/domain"
	"booking-service/internal/invoice"
)

// InvoiceDownload points at a rendered artifact ready to stream.
type InvoiceDownload struct {
	Path     string
	Filename string
}

// GetInvoice resolves a raw invoice identifier to a booking and makes sure
// its artifact exists on disk, regenerating from the booking row when the
// cached file is gone. Accepted identifier shapes, tried in order:
//
//	<orderID>            direct match
//	<orderID>.pdf        suffix stripped first
//	<slug>-<orderID>     externally constructed download links
func (s *BookingService) GetInvoice(ctx context.Context, rawID string) (*InvoiceDownload, error) {
	id := strings.TrimSuffix(rawID, ".pdf")
	if id == "" || !orderIDPattern.MatchString(id) {
		return nil, domain.NewValidationError("order_id", "invalid order_id format")
	}

	b, err := s.bookings.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		// The slug part may be empty: all-punctuation customer names
		// slug to "", giving filenames like "-ORD-1.pdf".
		if _, after, ok := strings.Cut(id, "-"); ok && after != "" {
			b, err = s.bookings.FindByOrderID(ctx, after)
			if err != nil {
				return nil, err
			}
		}
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}

	path, err := s.ensureArtifact(ctx, b)
	if err != nil {
		return nil, err
	}

	return &InvoiceDownload{
		Path:     path,
		Filename: invoice.DownloadFilename(b.CustomerName, b.OrderID),
	}, nil
}

// ensureArtifact returns the cached artifact when present and re-renders
// otherwise. Concurrent regenerations for one order id are collapsed; the
// render itself is deterministic, so a lost race just overwrites identical
// bytes.
func (s *BookingService) ensureArtifact(ctx context.Context, b *domain.Booking) (string, error) {
	if b.PDFPath != "" {
		if _, err := os.Stat(b.PDFPath); err == nil {
			return b.PDFPath, nil
		}
	}

	v, err, _ := s.regen.Do(b.OrderID, func() (interface{}, error) {
		path, err := s.renderer.Render(b)
		if err != nil {
			return nil, err
		}
		if path != b.PDFPath {
			if err := s.bookings.UpdateArtifactPath(ctx, b.OrderID, path); err != nil {
				return nil, err
			}
		}
		return path, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
