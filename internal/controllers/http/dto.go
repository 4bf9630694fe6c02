package http

import "time"

type LineItemDTO struct {
	ID          uint64 `json:"id" binding:"required"`
	ProductType string `json:"product_type" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

type CreateBookingRequest struct {
	OrderID      string        `json:"order_id"`
	CustomerID   *uint64       `json:"customer_id"`
	Products     []LineItemDTO `json:"products"`
	Total        float64       `json:"total"`
	CustomerType string        `json:"customer_type"`
	CustomerName string        `json:"customer_name"`
	Address      string        `json:"address"`
	MobileNumber string        `json:"mobile_number"`
	Email        string        `json:"email"`
	District     string        `json:"district"`
	State        string        `json:"state"`
}

type CreateBookingResponse struct {
	Message      string    `json:"message"`
	ID           uint64    `json:"id"`
	OrderID      string    `json:"order_id"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerType string    `json:"customer_type"`
	PDFPath      string    `json:"pdf_path"`
	Notified     bool      `json:"notified"`
	NotifyError  string    `json:"notify_error,omitempty"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Courier  string `json:"courier"`
	LRNumber string `json:"lr_number"`
	Contact  string `json:"contact"`
}

type BookingSummary struct {
	ID           uint64  `json:"id"`
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	CustomerType string  `json:"customer_type"`
	District     string  `json:"district"`
	State        string  `json:"state"`
	Status       string  `json:"status"`
	Total        float64 `json:"total"`
}
