package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"

	DefaultWhatsAppNumber = "9171917197"
	DefaultStoreLang      = "en-IN"
	DefaultPlaceID        = "ChIJw7QwQw2rADsR8Qn6e7iQn1A"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	AppEnv   string
	AppPort  string
	LogLevel string

	CatalogSource    string
	CatalogDir       string
	CatalogCacheTTL  time.Duration
	CatalogCacheSize int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	WhatsAppNumber string
	StoreLang      string
	StoreURL       string
	AllowedOrigins []string

	AdminJWTSecret     string
	RevalidationSecret string
	InternalSecretKey  string

	GooglePlacesAPIKey string
	GooglePlaceID      string
	ReviewsFile        string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getenv("APP_ENV", "development"),
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: os.Getenv("LOG_LEVEL"),

		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", SourceJSON)),
		CatalogDir:    getenv("CATALOG_DIR", "data"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),

		WhatsAppNumber: getenv("WHATSAPP_NUMBER", DefaultWhatsAppNumber),
		StoreLang:      getenv("STORE_LANG", DefaultStoreLang),
		StoreURL:       strings.TrimRight(getenv("STORE_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),

		AdminJWTSecret:     os.Getenv("ADMIN_JWT_SECRET"),
		RevalidationSecret: os.Getenv("REVALIDATION_SECRET"),
		InternalSecretKey:  os.Getenv("INTERNAL_SECRET_KEY"),

		GooglePlacesAPIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		GooglePlaceID:      getenv("GOOGLE_PLACE_ID", DefaultPlaceID),
		ReviewsFile:        os.Getenv("REVIEWS_FILE"),
	}

	var err error
	if cfg.CatalogCacheTTL, err = time.ParseDuration(getenv("CATALOG_CACHE_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("%w: CATALOG_CACHE_TTL: %w", ErrInvalidConfig, err)
	}
	if cfg.CatalogCacheSize, err = strconv.Atoi(getenv("CATALOG_CACHE_SIZE", "256")); err != nil {
		return nil, fmt.Errorf("%w: CATALOG_CACHE_SIZE: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load for main packages: it exits on error.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) Validate() error {
	var errs []error

	switch c.CatalogSource {
	case SourceJSON:
		if c.CatalogDir == "" {
			errs = append(errs, errors.New("CATALOG_DIR is required for the json catalog"))
		}
	case SourcePostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			errs = append(errs, errors.New("DB_HOST, DB_NAME and DB_USER are required for the postgres catalog"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource))
	}

	if c.CatalogCacheTTL < 0 {
		errs = append(errs, errors.New("CATALOG_CACHE_TTL must not be negative"))
	}
	if c.WhatsAppNumber == "" {
		errs = append(errs, errors.New("WHATSAPP_NUMBER must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
