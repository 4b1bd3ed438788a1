package config

import (
	"testing"
	"time"

	"github.com/joao-fontenele/order-intake/internal/intake"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"HTTP_ADDR", "SERVICE_NAME", "KAFKA_BROKERS", "INTAKE_DELAY_MS", "LOG_ENABLED"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		if cfg.HTTPAddr != ":8080" {
			t.Errorf("expected :8080, got %s", cfg.HTTPAddr)
		}
		if cfg.ServiceName != "order-intake" {
			t.Errorf("expected order-intake, got %s", cfg.ServiceName)
		}
		if cfg.IntakeDelay != intake.DefaultDelay {
			t.Errorf("expected default delay %v, got %v", intake.DefaultDelay, cfg.IntakeDelay)
		}
		if !cfg.LogEnabled {
			t.Error("expected logging enabled by default")
		}
		if cfg.KafkaBrokers != nil {
			t.Errorf("expected no brokers, got %v", cfg.KafkaBrokers)
		}
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9999")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
		t.Setenv("INTAKE_DELAY_MS", "25")
		t.Setenv("LOG_ENABLED", "false")

		cfg := Load()

		if cfg.HTTPAddr != ":9999" {
			t.Errorf("expected :9999, got %s", cfg.HTTPAddr)
		}
		if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "k1:9092" || cfg.KafkaBrokers[1] != "k2:9092" {
			t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
		}
		if cfg.IntakeDelay != 25*time.Millisecond {
			t.Errorf("expected 25ms delay, got %v", cfg.IntakeDelay)
		}
		if cfg.LogEnabled {
			t.Error("expected logging disabled")
		}
	})

	t.Run("invalid delay falls back to default", func(t *testing.T) {
		t.Setenv("INTAKE_DELAY_MS", "soon")

		if cfg := Load(); cfg.IntakeDelay != intake.DefaultDelay {
			t.Errorf("expected default delay, got %v", cfg.IntakeDelay)
		}
	})
}
