package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-directory-api/internal/apidoc"
	"github.com/sangkips/customer-directory-api/internal/config"
	"github.com/sangkips/customer-directory-api/internal/db"
	"github.com/sangkips/customer-directory-api/internal/domains/customers"
	"github.com/sangkips/customer-directory-api/internal/domains/services"
	"github.com/sangkips/customer-directory-api/internal/health"
	"github.com/sangkips/customer-directory-api/internal/logging"
	"github.com/sangkips/customer-directory-api/internal/queue"
	"github.com/sangkips/customer-directory-api/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	conn, err := db.Connect(connectCtx, db.Options{
		URL:       cfg.DBURL,
		TLSVerify: cfg.DBTLSVerify,
		MaxConns:  cfg.DBMaxConns,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	// Events stay off unless a broker is configured.
	var (
		publisher customers.EventPublisher
		queueCheck health.QueueChecker
	)
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Close()
		publisher = rabbitMQ
		queueCheck = rabbitMQ
	}

	doc, err := apidoc.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load API description")
	}

	customerService := customers.NewService(customers.NewRepository(conn), publisher)
	router := server.NewRouter(server.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: 30 * time.Second,
	}, server.Handlers{
		Customers: customers.NewHandler(customerService),
		Services:  services.NewHandler(services.NewRepository(conn)),
		Health:    health.NewHandler(db.NewStore(conn), queueCheck),
		APIDoc:    doc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msg("server running on port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
