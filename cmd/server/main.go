package main

import (
	"log"
	"time"

	"booking-service/config"
	"booking-service/internal/controllers/http"
	mmysql "booking-service/internal/infra/mysql"
	"booking-service/internal/infra/rabbitmq"
	"booking-service/internal/infra/whatsapp"
	"booking-service/internal/invoice"
	mysqlrepo "booking-service/internal/repository/mysql"
	"booking-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	db, err := mmysql.NewMySQL(cfg.Database)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	bookingRepo := mysqlrepo.NewBookingRepository(db)
	catalogRepo := mysqlrepo.NewCatalogRepository(db)
	customerRepo := mysqlrepo.NewCustomerRepository(db)

	renderer := invoice.NewRenderer(cfg.Invoice.Dir, invoice.Issuer{
		Name:    cfg.Invoice.CompanyName,
		Address: cfg.Invoice.CompanyAddr,
		Phone:   cfg.Invoice.CompanyPhone,
		Email:   cfg.Invoice.CompanyEmail,
	})

	notifier := whatsapp.NewClient(
		cfg.WhatsApp.BaseURL,
		cfg.WhatsApp.PhoneNumberID,
		cfg.WhatsApp.AccessToken,
		time.Duration(cfg.WhatsApp.TimeoutSecs)*time.Second,
	)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewBookingService(bookingRepo, catalogRepo, customerRepo, renderer, notifier, publisher)

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			DB:           0,
			PoolSize:     100,
			MinIdleConns: 10,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		s.SetRedisClient(redisClient)
	}

	handler := http.NewHandler(s)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	log.Printf("Starting booking service on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
