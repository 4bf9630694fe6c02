package mocks

import (
	"context"

	"booking-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking, decs []domain.StockDecrement) error {
	args := m.Called(ctx, b, decs)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uint64, status domain.BookingStatus, shipment *domain.Shipment) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, shipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, status domain.BookingStatus, customerType string) ([]domain.Booking, error) {
	args := m.Called(ctx, status, customerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateArtifactPath(ctx context.Context, orderID, path string) error {
	args := m.Called(ctx, orderID, path)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) ListAvailable(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) FindProduct(ctx context.Context, category string, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, category, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListAll(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(b *domain.Booking) (string, error) {
	args := m.Called(b)
	return args.String(0), args.Error(1)
}

func (m *MockRenderer) ArtifactPath(customerName, orderID string) string {
	args := m.Called(customerName, orderID)
	return args.String(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInvoice(ctx context.Context, b *domain.Booking, pdfPath string) error {
	args := m.Called(ctx, b, pdfPath)
	return args.Error(0)
}

func (m *MockNotifier) SendStatusChange(ctx context.Context, b *domain.Booking, status domain.BookingStatus, shipment *domain.Shipment) error {
	args := m.Called(ctx, b, status, shipment)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, pattern string, data interface{}) error {
	args := m.Called(ctx, pattern, data)
	return args.Error(0)
}
