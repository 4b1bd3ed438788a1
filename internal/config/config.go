package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joao-fontenele/order-intake/internal/intake"
)

// Config carries the intake service settings. PostgresURL is an opaque
// credential; only its host portion may appear in logs or responses.
type Config struct {
	HTTPAddr     string
	PostgresURL  string
	KafkaBrokers []string
	ServiceName  string
	IntakeDelay  time.Duration
	LogEnabled   bool
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		ServiceName:  getenv("SERVICE_NAME", "order-intake"),
		IntakeDelay:  delayFromEnv("INTAKE_DELAY_MS", intake.DefaultDelay),
		LogEnabled:   boolFromEnv("LOG_ENABLED", true),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func delayFromEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func boolFromEnv(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
