// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything cmd/cancelsvc needs to wire the service.
// DATABASE_URL, REDIS_ADDR and KAFKA_BROKERS are optional; leaving one
// empty selects the in-memory store, the static session source or the
// no-op publisher respectively.
type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	RedisAddr       string
	SessionKey      string
	StaticSessionID int64
	KafkaBrokers    []string
	KafkaTopic      string
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		SessionKey:  envOr("SESSION_KEY", "cancelsvc:session"),
		KafkaTopic:  envOr("KAFKA_TOPIC", "order-events"),
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	if v := os.Getenv("STATIC_SESSION_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse STATIC_SESSION_ID: %w", err)
		}
		cfg.StaticSessionID = id
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
