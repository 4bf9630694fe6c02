package mysql

import (
	"context"
	"errors"
	"log"

	"booking-service/internal/domain"
	"booking-service/internal/repository"

	"gorm.io/gorm"
)

type bookingRepo struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Save(ctx context.Context, b *domain.Booking, decs []domain.StockDecrement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateOrder
			}
			return err
		}

		for _, d := range decs {
			res := tx.Model(&domain.Product{}).
				Where("category = ? AND id = ? AND stock IS NOT NULL AND stock >= ?", d.Category, d.ProductID, d.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", d.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateOrder) && !errors.Is(err, domain.ErrInsufficientStock) {
			log.Printf("booking save error: %v", err)
		}
		return err
	}
	return nil
}

func (r *bookingRepo) FindByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Shipment").
		Where("order_id = ?", orderID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByOrderID error: %v", err)
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id uint64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Shipment").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id uint64, status domain.BookingStatus, shipment *domain.Shipment) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookingNotFound
			}
			return err
		}

		if err := tx.Model(&b).Update("status", status).Error; err != nil {
			return err
		}

		if shipment != nil {
			shipment.BookingOrderID = b.OrderID
			if err := tx.Create(shipment).Error; err != nil {
				// Shipment rows are insert-only; re-dispatching hits
				// the unique index on the order id.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrShipmentExists
				}
				return err
			}
			b.Shipment = shipment
		}
		b.Status = status
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrBookingNotFound) && !errors.Is(err, domain.ErrShipmentExists) {
			log.Printf("UpdateStatus error: %v", err)
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) List(ctx context.Context, status domain.BookingStatus, customerType string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if customerType != "" {
		q = q.Where("customer_type = ?", customerType)
	}

	var out []domain.Booking
	if err := q.Find(&out).Error; err != nil {
		log.Printf("List error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *bookingRepo) ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Shipment").
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("ListByStatuses error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *bookingRepo) UpdateArtifactPath(ctx context.Context, orderID, path string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("order_id = ?", orderID).
		Update("pdf_path", path).Error
	if err != nil {
		log.Printf("UpdateArtifactPath error: %v", err)
	}
	return err
}
