package db

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

type Options struct {
	URL       string
	TLSVerify bool
	MaxConns  int
}

// Connect opens the shared connection pool and verifies it with a ping.
func Connect(ctx context.Context, opts Options) (*sql.DB, error) {
	connConfig, err := ParseConnConfig(opts.URL, opts.TLSVerify)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse database url")
		return nil, err
	}

	db := stdlib.OpenDB(*connConfig)
	if opts.MaxConns > 0 {
		db.SetMaxOpenConns(opts.MaxConns)
		db.SetMaxIdleConns(opts.MaxConns)
	}
	db.SetConnMaxIdleTime(30 * time.Second)

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ping database")
		db.Close()
		return nil, err
	}

	return db, nil
}

// ParseConnConfig parses a postgres URL. Unless verify is set, any TLS
// connection attempt trusts the server certificate without verification.
// sslmode=disable keeps TLS off entirely.
func ParseConnConfig(url string, verify bool) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if verify {
		return connConfig, nil
	}

	if connConfig.TLSConfig != nil {
		connConfig.TLSConfig = insecureTLS(connConfig.Host)
	}
	for _, fb := range connConfig.Fallbacks {
		if fb.TLSConfig != nil {
			fb.TLSConfig = insecureTLS(fb.Host)
		}
	}
	return connConfig, nil
}

func insecureTLS(host string) *tls.Config {
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // trust-all toward the database
	}
}

// Store answers the connectivity questions asked by the health endpoints.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks the pool and runs a trivial query.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	var result int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database query failed: %w", err)
	}
	return nil
}

// Now returns the database server's current time.
func (s *Store) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := s.db.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
