package http

import (
	"errors"
	"net/http"
	"strconv"

	"booking-service/internal/domain"
	"booking-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *services.BookingService
}

func NewHandler(s *services.BookingService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/filtered", h.ListFilteredBookings)
		api.PUT("/bookings/:id/status", h.UpdateBookingStatus)
		api.GET("/bookings/invoice/:order_id", h.GetInvoice)
		api.GET("/catalog/categories", h.ListCategories)
		api.GET("/catalog/:category/products", h.ListProducts)
		api.GET("/customers", h.ListCustomers)
	}
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	items := make([]services.LineItemRequest, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, services.LineItemRequest{
			Category:  p.ProductType,
			ProductID: p.ID,
			Quantity:  p.Quantity,
		})
	}

	result, err := h.service.CreateBooking(c.Request.Context(), &services.CreateBookingRequest{
		OrderID:      req.OrderID,
		CustomerID:   req.CustomerID,
		Items:        items,
		Total:        req.Total,
		CustomerType: req.CustomerType,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		District:     req.District,
		State:        req.State,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	b := result.Booking
	resp := CreateBookingResponse{
		Message:      "Booking created successfully",
		ID:           b.ID,
		OrderID:      b.OrderID,
		CreatedAt:    b.CreatedAt,
		CustomerType: b.CustomerType,
		PDFPath:      b.PDFPath,
		Notified:     result.NotifyErr == nil && result.RenderErr == nil,
	}
	if result.RenderErr != nil {
		resp.NotifyError = result.RenderErr.Error()
	} else if result.NotifyErr != nil {
		resp.NotifyError = result.NotifyErr.Error()
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListBookings(c *gin.Context) {
	status := domain.BookingStatus(c.Query("status"))
	customerType := c.Query("customer_type")

	bookings, err := h.service.ListBookings(c.Request.Context(), status, customerType)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingSummary{
			ID:           b.ID,
			OrderID:      b.OrderID,
			CustomerName: b.CustomerName,
			CustomerType: b.CustomerType,
			District:     b.District,
			State:        b.State,
			Status:       string(b.Status),
			Total:        b.Total,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListFilteredBookings(c *gin.Context) {
	status := domain.BookingStatus(c.Query("status"))

	bookings, err := h.service.ListFiltered(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var ship *services.ShipmentRequest
	if req.Courier != "" || req.LRNumber != "" || req.Contact != "" {
		ship = &services.ShipmentRequest{
			Courier:  req.Courier,
			LRNumber: req.LRNumber,
			Contact:  req.Contact,
		}
	}

	result, err := h.service.AdvanceStatus(c.Request.Context(), id, domain.BookingStatus(req.Status), ship)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"message": "Status updated successfully",
		"data": gin.H{
			"id":     result.Booking.ID,
			"status": result.Booking.Status,
		},
		"notified": result.NotifyErr == nil,
	}
	if result.NotifyErr != nil {
		resp["notify_error"] = result.NotifyErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	dl, err := h.service.GetInvoice(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+dl.Filename)
	c.Header("Content-Type", "application/pdf")
	c.File(dl.Path)
}

func (h *Handler) ListCategories(c *gin.Context) {
	names, err := h.service.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation 400, unknown resources 404, duplicate order id 409,
// everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrDuplicateOrder):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrShipmentExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
