package domain

import "time"

type BookingCreatedEvent struct {
	BookingID    uint64    `json:"bookingId"`
	OrderID      string    `json:"orderId"`
	CustomerType string    `json:"customerType"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingStatusChangedEvent struct {
	BookingID uint64        `json:"bookingId"`
	OrderID   string        `json:"orderId"`
	Status    BookingStatus `json:"status"`
	ChangedAt time.Time     `json:"changedAt"`
}
