package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort         = "3000"
	defaultDBMaxConns   = 10
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
	defaultAllowOrigins = "*"
)

type Config struct {
	DBURL       string
	DBTLSVerify bool
	DBMaxConns  int
	Port        string
	RabbitMQURL string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// LoadConfig reads the process environment, after loading a .env file when
// one exists in the working directory.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBURL:       getenv("DATABASE_URL"),
		Port:        getenv("PORT"),
		RabbitMQURL: getenv("RABBITMQ_URL"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL")),
		LogFormat:   strings.ToLower(getenv("LOG_FORMAT")),
		DBMaxConns:  defaultDBMaxConns,
	}

	if cfg.DBURL == "" {
		cfg.DBURL = getenv("DB_URL")
	}
	if cfg.DBURL == "" {
		log.Error().Msg("DATABASE_URL environment variable is not set")
		return nil, errors.New("DATABASE_URL is required")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if v := getenv("DB_TLS_VERIFY"); v != "" {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_TLS_VERIFY %q: %w", v, err)
		}
		cfg.DBTLSVerify = verify
	}

	if v := getenv("DB_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid DB_MAX_CONNS %q", v)
		}
		cfg.DBMaxConns = n
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	origins := getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = defaultAllowOrigins
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.RabbitMQURL == "" {
		log.Info().Msg("RABBITMQ_URL not set, customer events are disabled")
	}

	return cfg, nil
}
