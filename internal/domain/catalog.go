package domain

import "time"

// Category is an administrator-defined product classification. The set of
// categories is data, not code: new ones appear at runtime.
type Category struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Product identity is (category, id); ids are not unique across categories,
// so every lookup is category-scoped.
type Product struct {
	ID           uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Category     string  `json:"product_type" gorm:"size:100;not null;index:idx_products_category_status,priority:1"`
	SerialNumber string  `json:"serial_number" gorm:"size:50"`
	Name         string  `json:"productname" gorm:"size:150;not null"`
	Price        float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Per          string  `json:"per" gorm:"type:enum('pieces','box','pkt');default:'pieces'"`
	Discount     float64 `json:"discount" gorm:"type:decimal(5,2);default:0.00"`
	Image        string  `json:"image" gorm:"size:255"`
	Status       string  `json:"status" gorm:"type:enum('on','off');default:'on';index:idx_products_category_status,priority:2"`
	Stock        *int    `json:"stock,omitempty"`
	FastMoving   bool    `json:"fast_moving" gorm:"default:false"`
}

func (p *Product) Available() bool {
	return p.Status == "on"
}

// Customer is a standing record referenced by id at booking time. Walk-in
// bookings carry the same fields inline instead.
type Customer struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName string    `json:"name" gorm:"size:100;not null"`
	Address      string    `json:"address" gorm:"type:text"`
	MobileNumber string    `json:"mobile_number" gorm:"size:15;not null"`
	Email        string    `json:"email" gorm:"size:100"`
	District     string    `json:"district" gorm:"size:100"`
	State        string    `json:"state" gorm:"size:100"`
	CustomerType string    `json:"customer_type" gorm:"size:32;default:User"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DefaultCustomerType is forced for walk-in bookings that carry no
// standing customer reference.
const DefaultCustomerType = "User"
