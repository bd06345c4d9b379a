package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/nsridhar76/go-cancelsvc/internal/config"
	"github.com/nsridhar76/go-cancelsvc/internal/logging"
	kafkapub "github.com/nsridhar76/go-cancelsvc/internal/messaging/kafka"
	"github.com/nsridhar76/go-cancelsvc/internal/messaging/noop"
	"github.com/nsridhar76/go-cancelsvc/internal/service"
	sessionredis "github.com/nsridhar76/go-cancelsvc/internal/session/redis"
	"github.com/nsridhar76/go-cancelsvc/internal/session/static"
	"github.com/nsridhar76/go-cancelsvc/internal/store/memory"
	"github.com/nsridhar76/go-cancelsvc/internal/store/postgres"
	transport "github.com/nsridhar76/go-cancelsvc/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New("cancelsvc")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var orders service.OrderStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		orders = postgres.New(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory order store")
		orders = memory.New()
	}

	var sessions service.SessionSource
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		sessions = sessionredis.New(client, cfg.SessionKey)
	} else {
		sessions = static.New(cfg.StaticSessionID)
	}

	var publisher service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		publisher = kafkapub.New(writer)
	} else {
		logger.Warn("KAFKA_BROKERS not set, cancellation events will not be published")
		publisher = noop.Publisher{}
	}

	svc, err := service.New(orders, publisher, sessions, service.WithLogger(logger))
	if err != nil {
		return err
	}

	handler := transport.NewHandler(svc, orders, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
