package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"time"

	"booking-service/internal/domain"
	rabbit "booking-service/internal/infra/rabbitmq"
	"booking-service/internal/infra/whatsapp"
	"booking-service/internal/invoice"
	"booking-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

var orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type BookingService struct {
	bookings    repository.BookingRepository
	catalog     repository.CatalogRepository
	customers   repository.CustomerRepository
	renderer    invoice.RendererInterface
	notifier    whatsapp.NotifierInterface
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	regen       singleflight.Group
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog repository.CatalogRepository,
	customers repository.CustomerRepository,
	renderer invoice.RendererInterface,
	notifier whatsapp.NotifierInterface,
	publisher rabbit.PublisherInterface,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		catalog:   catalog,
		customers: customers,
		renderer:  renderer,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (s *BookingService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

type LineItemRequest struct {
	Category  string
	ProductID uint64
	Quantity  int
}

type ShipmentRequest struct {
	Courier  string
	LRNumber string
	Contact  string
}

type CreateBookingRequest struct {
	OrderID      string
	CustomerID   *uint64
	Items        []LineItemRequest
	Total        float64
	CustomerType string
	CustomerName string
	Address      string
	MobileNumber string
	Email        string
	District     string
	State        string
}

// CreateBookingResult reports the committed booking together with the
// outcome of the best-effort side effects. A non-nil RenderErr or
// NotifyErr never means the booking failed: the insert is durable by the
// time either runs.
type CreateBookingResult struct {
	Booking   *domain.Booking
	RenderErr error
	NotifyErr error
}

func (s *BookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResult, error) {
	if req.OrderID == "" {
		return nil, domain.NewValidationError("order_id", "order ID is required")
	}
	if !orderIDPattern.MatchString(req.OrderID) {
		return nil, domain.NewValidationError("order_id", "invalid order_id format")
	}
	if len(req.Items) == 0 {
		return nil, domain.NewValidationError("products", "products array is required and must not be empty")
	}

	items := make([]domain.BookingItem, 0, len(req.Items))
	var decs []domain.StockDecrement
	for _, it := range req.Items {
		if it.Category == "" || it.ProductID == 0 || it.Quantity < 1 {
			return nil, domain.NewValidationError("products", "each product must have a valid ID, product type, and positive quantity")
		}
		prod, err := s.getProductWithCache(ctx, it.Category, it.ProductID)
		if err != nil {
			return nil, err
		}
		if prod == nil || !prod.Available() {
			return nil, fmt.Errorf("product %d of type %s: %w", it.ProductID, it.Category, domain.ErrProductNotFound)
		}
		items = append(items, domain.BookingItem{
			Category:  prod.Category,
			ProductID: prod.ID,
			Name:      prod.Name,
			Quantity:  it.Quantity,
			Price:     prod.Price,
			Discount:  prod.Discount,
		})
		if prod.Stock != nil {
			decs = append(decs, domain.StockDecrement{
				Category:  prod.Category,
				ProductID: prod.ID,
				Quantity:  it.Quantity,
			})
		}
	}

	if req.Total <= 0 {
		return nil, domain.NewValidationError("total", "total must be a positive number")
	}

	b := &domain.Booking{
		OrderID:   req.OrderID,
		Items:     items,
		Status:    domain.StatusBooked,
		CreatedAt: time.Now(),
	}
	if err := s.resolveCustomer(ctx, req, b); err != nil {
		return nil, err
	}

	// The caller-declared total is only sanity-checked above; the stored
	// figure is always recomputed here.
	b.Total = domain.BookingTotal(items)
	b.PDFPath = s.renderer.ArtifactPath(b.CustomerName, b.OrderID)

	if err := s.bookings.Save(ctx, b, decs); err != nil {
		return nil, err
	}

	result := &CreateBookingResult{Booking: b}
	if _, err := s.renderer.Render(b); err != nil {
		log.Printf("invoice render failed for %s: %v", b.OrderID, err)
		result.RenderErr = err
	} else if err := s.notifier.SendInvoice(ctx, b, b.PDFPath); err != nil {
		log.Printf("invoice notification failed for %s: %v", b.OrderID, err)
		result.NotifyErr = err
	}

	go s.publishBookingCreated(context.Background(), b)

	return result, nil
}

func (s *BookingService) resolveCustomer(ctx context.Context, req *CreateBookingRequest, b *domain.Booking) error {
	if req.CustomerID != nil {
		cust, err := s.customers.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return err
		}
		if cust == nil {
			return domain.ErrCustomerNotFound
		}
		b.CustomerID = req.CustomerID
		b.CustomerName = cust.CustomerName
		b.Address = cust.Address
		b.MobileNumber = cust.MobileNumber
		b.Email = cust.Email
		b.District = cust.District
		b.State = cust.State
		b.CustomerType = req.CustomerType
		if b.CustomerType == "" {
			b.CustomerType = cust.CustomerType
		}
		if b.CustomerType == "" {
			b.CustomerType = domain.DefaultCustomerType
		}
		return nil
	}

	if req.CustomerType != "" && req.CustomerType != domain.DefaultCustomerType {
		return domain.NewValidationError("customer_type", `customer type must be %q for bookings without customer ID`, domain.DefaultCustomerType)
	}
	required := []struct{ field, value string }{
		{"customer_name", req.CustomerName},
		{"address", req.Address},
		{"district", req.District},
		{"state", req.State},
		{"mobile_number", req.MobileNumber},
		{"email", req.Email},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.NewValidationError(f.field, "%s is required", f.field)
		}
	}

	b.CustomerName = req.CustomerName
	b.Address = req.Address
	b.MobileNumber = req.MobileNumber
	b.Email = req.Email
	b.District = req.District
	b.State = req.State
	b.CustomerType = domain.DefaultCustomerType
	return nil
}

// AdvanceResult mirrors CreateBookingResult: the status change is durable
// whether or not the notification went out.
type AdvanceResult struct {
	Booking   *domain.Booking
	NotifyErr error
}

func (s *BookingService) AdvanceStatus(ctx context.Context, id uint64, status domain.BookingStatus, ship *ShipmentRequest) (*AdvanceResult, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.NewValidationError("status", "invalid status value")
	}

	var shipment *domain.Shipment
	if status == domain.StatusDispatched && ship != nil {
		if ship.Courier == "" {
			return nil, domain.NewValidationError("courier", "courier name is required")
		}
		if ship.LRNumber == "" {
			return nil, domain.NewValidationError("lr_number", "LR number is required")
		}
		shipment = &domain.Shipment{
			Courier:  ship.Courier,
			LRNumber: ship.LRNumber,
			Contact:  ship.Contact,
		}
	}

	b, err := s.bookings.UpdateStatus(ctx, id, status, shipment)
	if err != nil {
		return nil, err
	}

	// The transaction committed above; notification is best effort.
	result := &AdvanceResult{Booking: b}
	if err := s.notifier.SendStatusChange(ctx, b, status, b.Shipment); err != nil {
		log.Printf("status notification failed for %s: %v", b.OrderID, err)
		result.NotifyErr = err
	}

	go s.publishStatusChanged(context.Background(), b)

	return result, nil
}

func (s *BookingService) ListBookings(ctx context.Context, status domain.BookingStatus, customerType string) ([]domain.Booking, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.NewValidationError("status", "invalid status value")
	}
	return s.bookings.List(ctx, status, customerType)
}

// FilteredBooking joins shipment details to a booking and carries the
// total recomputed from line items rather than the stored figure.
type FilteredBooking struct {
	domain.Booking
	ComputedTotal float64 `json:"total"`
}

// ListFiltered covers the post-payment part of the workflow. An
// unrecognized status filter falls back to the whole post-payment set.
func (s *BookingService) ListFiltered(ctx context.Context, status domain.BookingStatus) ([]FilteredBooking, error) {
	allowed := []domain.BookingStatus{
		domain.StatusPaid, domain.StatusPacked, domain.StatusDispatched, domain.StatusDelivered,
	}
	query := allowed
	for _, a := range allowed {
		if status == a {
			query = []domain.BookingStatus{status}
			break
		}
	}

	rows, err := s.bookings.ListByStatuses(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]FilteredBooking, 0, len(rows))
	for _, b := range rows {
		out = append(out, FilteredBooking{
			Booking:       b,
			ComputedTotal: domain.BookingTotal(b.Items),
		})
	}
	return out, nil
}

func (s *BookingService) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(ctx)
}

func (s *BookingService) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.catalog.ListAvailable(ctx, category)
}

func (s *BookingService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListAll(ctx)
}

func (s *BookingService) getProductWithCache(ctx context.Context, category string, id uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%s:%d", category, id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var prod domain.Product
			if err := json.Unmarshal([]byte(cached), &prod); err == nil {
				return &prod, nil
			}
		}
	}

	prod, err := s.catalog.FindProduct(ctx, category, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && prod != nil {
		if data, err := json.Marshal(prod); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return prod, nil
}

func (s *BookingService) publishBookingCreated(ctx context.Context, b *domain.Booking) {
	evt := domain.BookingCreatedEvent{
		BookingID:    b.ID,
		OrderID:      b.OrderID,
		CustomerType: b.CustomerType,
		Total:        b.Total,
		CreatedAt:    b.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "booking.created", evt); err != nil {
		log.Printf("failed to publish booking.created for %s: %v", b.OrderID, err)
	}
}

func (s *BookingService) publishStatusChanged(ctx context.Context, b *domain.Booking) {
	evt := domain.BookingStatusChangedEvent{
		BookingID: b.ID,
		OrderID:   b.OrderID,
		Status:    b.Status,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "booking.status_changed", evt); err != nil {
		log.Printf("failed to publish booking.status_changed for %s: %v", b.OrderID, err)
	}
}
