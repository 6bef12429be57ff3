package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type (
	Tasks struct {
		DeliveryOverdueInterval time.Duration
		DeliveryOverdueGrace    time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Storage struct {
		Driver string // memory (default) or postgres
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		// SessionSecret may stay empty; an ephemeral secret is generated
		// at startup then, and sessions do not survive a restart.
		SessionSecret string
		SessionTTL    time.Duration
	}

	AI struct {
		// APIKey may stay empty; optimization and recommendations then
		// answer 503 instead of calling the collaborator.
		APIKey         string
		BaseURL        string
		Model          string
		RequestTimeout time.Duration
	}

	Seed struct {
		StationsPath string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Storage  Storage
		Database Database
		Auth     Auth
		AI       AI
		Seed     Seed
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	overdueInterval, err := osGetEnvDuration("BACKGROUND_DELIVERY_OVERDUE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overdueGrace, err := osGetEnvDuration("BACKGROUND_DELIVERY_OVERDUE_GRACE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if sessionTTL == time.Duration(0) {
		sessionTTL = 24 * time.Hour
	}

	aiTimeout, err := osGetEnvDuration("AI_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if aiTimeout == time.Duration(0) {
		aiTimeout = 30 * time.Second
	}

	return &Config{
		Tasks: Tasks{
			DeliveryOverdueInterval: overdueInterval,
			DeliveryOverdueGrace:    overdueGrace,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Storage: Storage{
			Driver: osGetDefault("STORAGE_DRIVER", StorageDriverMemory),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			SessionSecret: os.Getenv("SESSION_SECRET"),
			SessionTTL:    sessionTTL,
		},
		AI: AI{
			APIKey:         os.Getenv("AI_API_KEY"),
			BaseURL:        osGetDefault("AI_BASE_URL", "https://api.openai.com/v1"),
			Model:          osGetDefault("AI_MODEL", "gpt-4o-mini"),
			RequestTimeout: aiTimeout,
		},
		Seed: Seed{
			StationsPath: osGetDefault("SEED_STATIONS_PATH", "data/seeds/stations.json"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Storage.Driver != StorageDriverMemory && cfg.Storage.Driver != StorageDriverPostgres {
		return fmt.Errorf("unknown STORAGE_DRIVER %q (expected %s or %s)",
			cfg.Storage.Driver, StorageDriverMemory, StorageDriverPostgres)
	}

	if cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Database.Host == "" {
			return errors.New("POSTGRES_HOST is required")
		}
		if cfg.Database.Port == "" {
			return errors.New("POSTGRES_PORT is required")
		}
		if cfg.Database.User == "" {
			return errors.New("POSTGRES_USER is required")
		}
		if cfg.Database.Password == "" {
			return errors.New("POSTGRES_PASSWORD is required")
		}
		if cfg.Database.DBName == "" {
			return errors.New("POSTGRES_DB is required")
		}
		if cfg.Database.SSLMode == "" {
			return errors.New("POSTGRES_SSLMODE is required")
		}
	}

	if cfg.Tasks.DeliveryOverdueInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DELIVERY_OVERDUE_INTERVAL is required")
	}
	if cfg.Tasks.DeliveryOverdueGrace == time.Duration(0) {
		return errors.New("BACKGROUND_DELIVERY_OVERDUE_GRACE is required")
	}

	return nil
}

func osGetDefault(s, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
