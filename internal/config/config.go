package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Payment Payment `validate:"required"`

	Checkout Checkout

	Auth Auth `validate:"required"`

	Cache Cache

	Sweeper Sweeper
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	NotificationsTopic string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	Migrate bool
}

type Payment struct {
	BaseURL         string `validate:"required,url"`
	KeyID           string `validate:"required"`
	KeySecret       string `validate:"required"`
	WebhookSecret   string `validate:"required"`
	SignatureHeader string `validate:"required"`
	Currency        string `validate:"required,len=3"`
	CompanyName     string

	RequestTimeout time.Duration `validate:"gt=0"`
}

type Checkout struct {
	FreeShippingAbove float64 `validate:"gte=0"`
	ShippingFee       float64 `validate:"gte=0"`

	OrderNumberFloor int64  `validate:"gt=0"`
	FallbackPrefix   string `validate:"required"`

	CreateAttempts int `validate:"gte=1"`
}

type Auth struct {
	AdminToken          string `validate:"required,min=16"`
	CustomerTokenSecret string `validate:"required,min=16"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Sweeper struct {
	// Interval == 0 отключает очистку
	Interval   time.Duration `validate:"gte=0"`
	// Нулевой TTL отменял бы заказы, которые ещё оплачиваются
	PendingTTL time.Duration `validate:"gt=0"`
	BatchSize  int           `validate:"gte=1"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "order-notifications"),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			WriteTimeout: envDuration("KAFKA_WRITE_TIMEOUT", 5*time.Second),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			Migrate: envBool("POSTGRES_MIGRATE", true),
		},

		Payment: Payment{
			BaseURL:         env("PAYMENT_BASE_URL", "https://api.razorpay.com"),
			KeyID:           env("PAYMENT_KEY_ID", ""),
			KeySecret:       env("PAYMENT_KEY_SECRET", ""),
			WebhookSecret:   env("PAYMENT_WEBHOOK_SECRET", ""),
			SignatureHeader: env("PAYMENT_SIGNATURE_HEADER", "X-Razorpay-Signature"),
			Currency:        env("PAYMENT_CURRENCY", "INR"),
			CompanyName:     env("PAYMENT_COMPANY_NAME", "Crafted Corners"),

			RequestTimeout: envDuration("PAYMENT_REQUEST_TIMEOUT", 10*time.Second),
		},

		Checkout: Checkout{
			FreeShippingAbove: envFloat("CHECKOUT_FREE_SHIPPING_ABOVE", 1000),
			ShippingFee:       envFloat("CHECKOUT_SHIPPING_FEE", 100),

			OrderNumberFloor: int64(envInt("ORDER_NUMBER_FLOOR", 10001)),
			FallbackPrefix:   env("ORDER_NUMBER_FALLBACK_PREFIX", "ORD-"),

			CreateAttempts: envInt("ORDER_CREATE_ATTEMPTS", 3),
		},

		Auth: Auth{
			AdminToken:          env("ADMIN_API_TOKEN", ""),
			CustomerTokenSecret: env("CUSTOMER_TOKEN_SECRET", ""),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Sweeper: Sweeper{
			Interval:   envDuration("SWEEPER_INTERVAL", 15*time.Minute),
			PendingTTL: envDuration("SWEEPER_PENDING_TTL", 24*time.Hour),
			BatchSize:  envInt("SWEEPER_BATCH_SIZE", 100),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
