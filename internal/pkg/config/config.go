package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Chapa   ChapaConfig
	Redis   RedisConfig
	Events  EventsConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Addis_Ababa"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Addis_Ababa"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// ChapaConfig holds the payment gateway credentials and the URLs handed to it.
type ChapaConfig struct {
	SecretKey       string        `envconfig:"CHAPA_SECRET_KEY" required:"true"`
	BaseURL         string        `envconfig:"CHAPA_BASE_URL" default:"https://api.chapa.co"`
	CallbackBaseURL string        `envconfig:"CHAPA_CALLBACK_BASE_URL" default:"http://localhost:8080"`
	ReturnURL       string        `envconfig:"CHAPA_RETURN_URL" default:"http://localhost:3000/payment-success/"`
	Currency        string        `envconfig:"CHAPA_CURRENCY" default:"ETB"`
	Timeout         time.Duration `envconfig:"CHAPA_TIMEOUT" default:"10s"`

	// breaker
	BreakerMaxFailures uint32        `envconfig:"CHAPA_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"CHAPA_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

// RedisConfig: an empty URL disables redis and falls back to in-process dedupe.
type RedisConfig struct {
	URL          string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	PoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"20"`
	MinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	MaxRetries   int    `envconfig:"REDIS_MAX_RETRIES" default:"3"`
}

const (
	EventsDriverGoChannel = "gochannel"
	EventsDriverRedis     = "redis"
)

type EventsConfig struct {
	Driver        string        `envconfig:"EVENTS_DRIVER" default:"gochannel"`
	ConsumerGroup string        `envconfig:"EVENTS_CONSUMER_GROUP" default:"travel-booking"`
	DedupeTTL     time.Duration `envconfig:"EVENTS_DEDUPE_TTL" default:"72h"`
	MaxRetries    int           `envconfig:"EVENTS_MAX_RETRIES" default:"5"`
}

type BookingConfig struct {
	// TimeZone decides which calendar day counts as "today" for past-date checks.
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"Africa/Addis_Ababa"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC for unknown zone names.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:          "test-secret-key-for-e2e-tests",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Chapa: ChapaConfig{
			SecretKey:          "CHASECK_TEST-secret",
			BaseURL:            "http://localhost:0",
			CallbackBaseURL:    "http://localhost:8889",
			ReturnURL:          "http://localhost:3000/payment-success/",
			Currency:           "ETB",
			Timeout:            2 * time.Second,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: time.Second,
		},
		Events: EventsConfig{
			Driver:        EventsDriverGoChannel,
			ConsumerGroup: "travel-booking-test",
			DedupeTTL:     time.Hour,
			MaxRetries:    1,
		},
		Booking: BookingConfig{
			TimeZone: "UTC",
		},
	}
}
