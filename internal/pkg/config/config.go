package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, TTLs, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Checkout  CheckoutConfig
	Mail      MailConfig
	Sweeper   SweeperConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// CheckoutConfig carries the operational policy knobs of the reservation
// and fulfillment pipeline. TTL and reminder offsets are policy, not
// structure, so they are environment-driven.
type CheckoutConfig struct {
	ReservationTTL  time.Duration   `envconfig:"RESERVATION_TTL" default:"15m"`
	ReminderOffsets []time.Duration `envconfig:"REMINDER_OFFSETS" default:"168h,24h"`
}

type MailConfig struct {
	FromAddress string        `envconfig:"MAIL_FROM" default:"tickets@festival.example"`
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"5s"`
}

type SweeperConfig struct {
	Interval  time.Duration `envconfig:"SWEEPER_INTERVAL" default:"1m"`
	BatchSize int           `envconfig:"SWEEPER_BATCH_SIZE" default:"100"`
}

type TelemetryConfig struct {
	Enabled       bool   `envconfig:"OTEL_ENABLED" default:"false"`
	CollectorAddr string `envconfig:"OTEL_COLLECTOR_ADDR" default:"localhost:4317"`
	ServiceName   string `envconfig:"OTEL_SERVICE_NAME" default:"ticketline"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *CheckoutConfig) Validate() error {
	if c.ReservationTTL <= 0 {
		return fmt.Errorf("reservation TTL must be positive, got %s", c.ReservationTTL)
	}
	if len(c.ReminderOffsets) == 0 {
		return fmt.Errorf("at least one reminder offset is required")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Checkout.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid checkout config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Checkout: CheckoutConfig{
			ReservationTTL:  15 * time.Minute,
			ReminderOffsets: []time.Duration{168 * time.Hour, 24 * time.Hour},
		},
		Mail: MailConfig{
			FromAddress: "tickets@test.example",
			SendTimeout: time.Second,
		},
		Sweeper: SweeperConfig{
			Interval:  time.Minute,
			BatchSize: 100,
		},
	}
}
