package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	WhatsApp WhatsAppConfig
	Invoice  InvoiceConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type WhatsAppConfig struct {
	BaseURL       string
	AccessToken   string
	PhoneNumberID string
	TimeoutSecs   int
}

// InvoiceConfig carries the issuer identity printed on every invoice and
// the directory the rendered documents are cached under.
type InvoiceConfig struct {
	Dir          string
	CompanyName  string
	CompanyAddr  string
	CompanyPhone string
	CompanyEmail string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com/v17.0")
	viper.SetDefault("WHATSAPP_TIMEOUT_SECS", 10)
	viper.SetDefault("PDF_DIR", "pdf_data")
	viper.SetDefault("RABBITMQ_EXCHANGE", "booking.exchange")

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("MYSQL_HOST"),
			Port:     viper.GetString("MYSQL_PORT"),
			User:     viper.GetString("MYSQL_USER"),
			Password: viper.GetString("MYSQL_PASSWORD"),
			Name:     viper.GetString("MYSQL_DATABASE"),
		},
		Redis: RedisConfig{
			Addr: viper.GetString("REDIS_ADDR"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      viper.GetString("RABBITMQ_URL"),
			Exchange: viper.GetString("RABBITMQ_EXCHANGE"),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:       viper.GetString("WHATSAPP_BASE_URL"),
			AccessToken:   viper.GetString("WHATSAPP_ACCESS_TOKEN"),
			PhoneNumberID: viper.GetString("WHATSAPP_PHONE_NUMBER_ID"),
			TimeoutSecs:   viper.GetInt("WHATSAPP_TIMEOUT_SECS"),
		},
		Invoice: InvoiceConfig{
			Dir:          viper.GetString("PDF_DIR"),
			CompanyName:  viper.GetString("COMPANY_NAME"),
			CompanyAddr:  viper.GetString("COMPANY_ADDRESS"),
			CompanyPhone: viper.GetString("COMPANY_PHONE"),
			CompanyEmail: viper.GetString("COMPANY_EMAIL"),
		},
	}

	log.Printf("Configuration loaded: port=%s env=%s db=%s", AppConfig.Server.Port, AppConfig.Server.Env, AppConfig.Database.Name)
}
