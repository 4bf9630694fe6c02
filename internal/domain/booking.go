package domain

import "time"

type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusPaid       BookingStatus = "paid"
	StatusPacked     BookingStatus = "packed"
	StatusDispatched BookingStatus = "dispatched"
	StatusDelivered  BookingStatus = "delivered"
)

// ValidStatus reports whether s is one of the five workflow statuses.
// Any valid status may be set from any other; operators use this to
// correct bookings manually, so there is deliberately no transition table.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusBooked, StatusPaid, StatusPacked, StatusDispatched, StatusDelivered:
		return true
	}
	return false
}

type Booking struct {
	ID           uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      string        `json:"order_id" gorm:"size:64;uniqueIndex;not null"`
	CustomerID   *uint64       `json:"customer_id"`
	CustomerName string        `json:"customer_name" gorm:"size:100"`
	Address      string        `json:"address" gorm:"type:text"`
	MobileNumber string        `json:"mobile_number" gorm:"size:15"`
	Email        string        `json:"email" gorm:"size:100"`
	District     string        `json:"district" gorm:"size:100"`
	State        string        `json:"state" gorm:"size:100"`
	CustomerType string        `json:"customer_type" gorm:"size:32;default:User"`
	Items        []BookingItem `json:"items" gorm:"foreignKey:BookingID"`
	Total        float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	Status       BookingStatus `json:"status" gorm:"type:enum('booked','paid','packed','dispatched','delivered');default:'booked'"`
	PDFPath      string        `json:"pdf_path" gorm:"size:255"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`
	Shipment     *Shipment     `json:"shipment,omitempty" gorm:"foreignKey:BookingOrderID;references:OrderID"`
}

// BookingItem is a line item with price and discount captured at booking
// time, so later catalog edits do not change historical invoices.
type BookingItem struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingID uint64  `json:"-" gorm:"index;not null"`
	Category  string  `json:"product_type" gorm:"size:100;not null"`
	ProductID uint64  `json:"product_id" gorm:"not null"`
	Name      string  `json:"productname" gorm:"size:150;not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Discount  float64 `json:"discount" gorm:"type:decimal(5,2);not null"`
}

// Shipment carries the carrier details recorded when a booking enters
// dispatched. Rows are insert-only.
type Shipment struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingOrderID string    `json:"order_id" gorm:"size:64;uniqueIndex;not null"`
	Courier        string    `json:"courier" gorm:"size:100;not null"`
	LRNumber       string    `json:"lr_number" gorm:"size:64;not null"`
	Contact        string    `json:"contact" gorm:"size:20"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// StockDecrement is applied inside the booking insert transaction for
// inventory-tracked products.
type StockDecrement struct {
	Category  string
	ProductID uint64
	Quantity  int
}
