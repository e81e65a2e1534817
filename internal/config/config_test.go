package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"DATABASE_URL": "postgres://localhost/app",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		DBURL:       "postgres://localhost/app",
		DBMaxConns:  10,
		Port:        "3000",
		LogLevel:    "info",
		LogFormat:   "json",
		CORSOrigins: []string{"*"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"DB_URL":               "postgres://db/app",
		"PORT":                 "8081",
		"DB_TLS_VERIFY":        "true",
		"DB_MAX_CONNS":         "25",
		"RABBITMQ_URL":         "amqp://guest:guest@mq:5672/",
		"LOG_LEVEL":            "DEBUG",
		"LOG_FORMAT":           "console",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		DBURL:       "postgres://db/app",
		DBTLSVerify: true,
		DBMaxConns:  25,
		Port:        "8081",
		RabbitMQURL: "amqp://guest:guest@mq:5672/",
		LogLevel:    "debug",
		LogFormat:   "console",
		CORSOrigins: []string{"https://a.example", "https://b.example"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnv_DatabaseURLTakesPrecedence(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"DATABASE_URL": "postgres://primary/app",
		"DB_URL":       "postgres://fallback/app",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBURL != "postgres://primary/app" {
		t.Errorf("expected DATABASE_URL to win, got %s", cfg.DBURL)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{}},
		{"non numeric port", map[string]string{"DATABASE_URL": "x", "PORT": "http"}},
		{"port out of range", map[string]string{"DATABASE_URL": "x", "PORT": "70000"}},
		{"bad tls flag", map[string]string{"DATABASE_URL": "x", "DB_TLS_VERIFY": "maybe"}},
		{"zero max conns", map[string]string{"DATABASE_URL": "x", "DB_MAX_CONNS": "0"}},
		{"unknown log format", map[string]string{"DATABASE_URL": "x", "LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envFrom(tt.env)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
