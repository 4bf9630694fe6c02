package invoice

import "booking-service/internal/domain"

type RendererInterface interface {
	Render(b *domain.Booking) (string, error)
	ArtifactPath(customerName, orderID string) string
}

var _ RendererInterface = (*Renderer)(nil)
