package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction  bool
	ProdOrigins   []string
	HTTPAddr      string
	DataDir       string
	LockersFile   string
	StorageDriver string
	DBDSN         string
	InventoryFile string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == PROD_STRING

	// Allowed CORS origins in production, comma separated (default: none)
	cfg.ProdOrigins = splitList(getEnv("PROD_ORIGINS", ""))

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Bookings file location (default: ./lockers.json)
	cfg.DataDir = getEnv("DATA_DIR", ".")
	cfg.LockersFile = getEnv("LOCKERS_FILE", "lockers.json")
	if strings.TrimSpace(cfg.LockersFile) == "" {
		return nil, fmt.Errorf("LOCKERS_FILE must not be empty")
	}

	// Storage backend (default: json)
	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", DriverJSON))
	switch cfg.StorageDriver {
	case DriverJSON:
	case DriverPostgres:
		// Database DSN is required for the postgres driver
		cfg.DBDSN = os.Getenv("DB_DSN")
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when STORAGE_DRIVER=%s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: want %q or %q", cfg.StorageDriver, DriverJSON, DriverPostgres)
	}

	// Optional YAML station inventory; the built-in table is used otherwise
	cfg.InventoryFile = getEnv("INVENTORY_FILE", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
