package mysql

import (
	"fmt"

	"booking-service/config"
	"booking-service/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMySQL(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// TranslateError maps duplicate-key violations to
		// gorm.ErrDuplicatedKey, which the booking repo relies on.
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&domain.Customer{},
		&domain.Booking{},
		&domain.BookingItem{},
		&domain.Shipment{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
