package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// DefaultGeocoderURL is the public Nominatim search endpoint.
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org/search"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	WebhookURL   string
	GeocoderURL  string
}

// Driver maps the configured database type to its database/sql driver name.
func (c Config) Driver() string {
	if c.DatabaseType == DBTypePostgres {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("tripvote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// External collaborators
	fs.StringVar(&cfg.WebhookURL, "webhook-url", "", "Chat webhook URL for questionnaire submissions (prefer env)")
	fs.StringVar(&cfg.GeocoderURL, "geocoder-url", "", "Nominatim-compatible geocoding endpoint")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8090 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DBTypeSQLite
		}
	}
	if cfg.DatabaseType != DBTypeSQLite && cfg.DatabaseType != DBTypePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DBTypePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "tripvote.db"
	}

	// Webhook is optional; the questionnaire endpoint reports 503 when unset
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv("WEBHOOK_URL")
	}

	if cfg.GeocoderURL == "" {
		cfg.GeocoderURL = os.Getenv("GEOCODER_URL")
	}
	if cfg.GeocoderURL == "" {
		cfg.GeocoderURL = DefaultGeocoderURL
	}

	return cfg, nil
}
