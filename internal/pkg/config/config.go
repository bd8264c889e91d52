package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Staff     StaffConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Stock     StockConfig
	Booking   BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"frontdesk"`
	Password        string        `envconfig:"DB_PASSWORD" default:""`
	DBName          string        `envconfig:"DB_NAME" default:"frontdesk"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Total-Count"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dhaka"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"21600"` // 6*60*60

	// Empty File keeps logs on stdout only.
	File       string `envconfig:"LOG_FILE" default:""`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"12h"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// StaffConfig seeds the first manager account when the staff table is empty.
type StaffConfig struct {
	SeedEmail    string `envconfig:"STAFF_SEED_EMAIL" default:""`
	SeedPassword string `envconfig:"STAFF_SEED_PASSWORD" default:""`
}

const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type CacheConfig struct {
	Driver   string        `envconfig:"CACHE_DRIVER" default:"memory"`
	RedisURL string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	Prefix   string        `envconfig:"CACHE_PREFIX" default:"frontdesk:"`
}

type RateLimitConfig struct {
	// ulule/limiter formatted rate, e.g. "300-M". Empty disables limiting.
	Rate      string `envconfig:"RATE_LIMIT" default:"300-M"`
	LoginRate string `envconfig:"RATE_LIMIT_LOGIN" default:"10-M"`
}

type StockConfig struct {
	// robfig/cron spec. Empty disables the scheduled run.
	ReconcileSchedule string `envconfig:"STOCK_RECONCILE_SCHEDULE" default:"@every 15m"`
}

type BookingConfig struct {
	IDMaxAttempts   int `envconfig:"BOOKING_ID_MAX_ATTEMPTS" default:"5"`
	DefaultPageSize int `envconfig:"BOOKING_PAGE_SIZE" default:"10"`
	MaxPageSize     int `envconfig:"BOOKING_MAX_PAGE_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads the environment after merging a local .env file, if any.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load env file", "file", envFile, "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Cache.Driver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("unknown CACHE_DRIVER %q", c.Cache.Driver)
	}
	if c.Booking.IDMaxAttempts < 1 {
		return fmt.Errorf("BOOKING_ID_MAX_ATTEMPTS must be at least 1")
	}
	if c.Booking.DefaultPageSize < 1 || c.Booking.MaxPageSize < c.Booking.DefaultPageSize {
		return fmt.Errorf("invalid booking page size settings")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Dhaka",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 21600,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-frontdesk-tests",
			AccessTokenDuration:  "1h",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Cache: CacheConfig{
			Driver: CacheDriverMemory,
			TTL:    time.Minute,
			Prefix: "test:",
		},
		Stock: StockConfig{
			ReconcileSchedule: "",
		},
		Booking: BookingConfig{
			IDMaxAttempts:   5,
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
	}
}
