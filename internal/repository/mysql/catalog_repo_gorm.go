package mysql

import (
	"context"
	"errors"
	"log"

	"booking-service/internal/domain"
	"booking-service/internal/repository"

	"gorm.io/gorm"
)

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Categories(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		log.Printf("Categories error: %v", err)
		return nil, err
	}
	return names, nil
}

func (r *catalogRepo) ListAvailable(ctx context.Context, category string) ([]domain.Product, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("name = ?", category).
		Count(&count).Error; err != nil {
		log.Printf("ListAvailable category check error: %v", err)
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrCategoryNotFound
	}

	var out []domain.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, "on").
		Order("serial_number").
		Find(&out).Error
	if err != nil {
		log.Printf("ListAvailable error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindProduct(ctx context.Context, category string, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND id = ?", category, id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindProduct error: %v", err)
		return nil, err
	}
	return &p, nil
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("customer FindByID error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) ListAll(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.WithContext(ctx).Order("customer_name").Find(&out).Error; err != nil {
		log.Printf("customer ListAll error: %v", err)
		return nil, err
	}
	return out, nil
}
