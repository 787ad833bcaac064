package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr string

	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string

	JWTSecret        string
	GoogleClientID   string
	OAuthRedirectURL string
	CookieDomain     string
	CookieSameSite   http.SameSite
	CORSOrigins      []string

	LogLevel  slog.Level
	LogFormat string

	// TallyWorkers bounds how many polls polltally tallies at once.
	TallyWorkers int
}

// Load reads an optional .env file, then parses args with defaults taken
// from the environment. Flags win over environment variables.
func Load(name string, args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}
	return Parse(name, args, os.Getenv)
}

// Parse builds a Config from args, using getenv for defaults.
func Parse(name string, args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var sameSite, corsOrigins, logLevel, workers string

	fs.StringVar(&cfg.HTTPAddr, "addr", envOr(getenv, "HTTP_ADDR", "0.0.0.0:8080"), "HTTP listen address")
	fs.StringVar(&cfg.DatabaseDriver, "db-driver", envOr(getenv, "DATABASE_DRIVER", DriverPostgres), "Database driver (postgres or sqlite)")
	fs.StringVar(&cfg.DatabaseURL, "db-url", envOr(getenv, "DATABASE_URL", postgresURLFromEnv(getenv)), "PostgreSQL connection URL")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", envOr(getenv, "SQLITE_PATH", "polls.db"), "SQLite database file")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", getenv("JWT_SECRET"), "Secret used to sign access tokens (prefer env)")
	fs.StringVar(&cfg.GoogleClientID, "google-client-id", getenv("GOOGLE_CLIENT_ID"), "Google OAuth client id")
	fs.StringVar(&cfg.OAuthRedirectURL, "oauth-redirect-url", envOr(getenv, "OAUTH_REDIRECT_URL", "/"), "Where to send the browser after Google sign-in")
	fs.StringVar(&cfg.CookieDomain, "cookie-domain", getenv("COOKIE_DOMAIN"), "Domain of auth cookies")
	fs.StringVar(&sameSite, "cookie-samesite", envOr(getenv, "COOKIE_SAMESITE", "lax"), "SameSite mode of auth cookies (lax, strict, none)")
	fs.StringVar(&corsOrigins, "cors-origins", envOr(getenv, "CORS_ORIGINS", "*"), "Comma separated list of allowed origins")
	fs.StringVar(&logLevel, "log-level", envOr(getenv, "LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", envOr(getenv, "LOG_FORMAT", "text"), "Log format (text or json)")
	fs.StringVar(&workers, "workers", envOr(getenv, "TALLY_WORKERS", "4"), "Polls tallied concurrently")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("database URL required (use -db-url, DATABASE_URL or POSTGRES_* env)")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("sqlite path required (use -sqlite-path or SQLITE_PATH)")
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	var err error
	if cfg.CookieSameSite, err = parseSameSite(sameSite); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", logLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.TallyWorkers, err = strconv.Atoi(workers); err != nil || cfg.TallyWorkers < 1 {
		return nil, fmt.Errorf("invalid worker count %q", workers)
	}

	for _, origin := range strings.Split(corsOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

// RequireAuth reports an error when settings needed to issue tokens are missing.
func (c *Config) RequireAuth() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}
	return nil
}

// NewLogger returns a slog logger writing to stderr in the configured format.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func postgresURLFromEnv(getenv func(string) string) string {
	host := getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}
	port := envOr(getenv, "POSTGRES_PORT", "5432")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getenv("POSTGRES_USER"), getenv("POSTGRES_PASSWORD"), host, port, getenv("POSTGRES_DB"))
}

func parseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(v) {
	case "lax", "":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("invalid cookie SameSite mode %q", v)
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
