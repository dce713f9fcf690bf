package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_HOST", "DB_PORT", "REDIS_HOST", "KAFKA_BROKER", "IDEMPOTENCY_TTL", "KAFKA_ORDERS_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "orders", cfg.OrdersTopic)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.KafkaEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "foodie")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("IDEMPOTENCY_TTL", "90m")

	cfg := Load()

	assert.Equal(t, "host=db port=6543 user=foodie password=secret dbname=orders sslmode=disable", cfg.PostgresDSN())
	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
}

func TestNewKafkaWriter_BoundsRetries(t *testing.T) {
	writer := NewKafkaWriter(Config{KafkaBroker: "kafka:9092", OrdersTopic: "orders"})
	defer writer.Close()

	assert.Equal(t, "orders", writer.Topic)
	assert.Equal(t, 3, writer.MaxAttempts)
	assert.Equal(t, 2*time.Second, writer.WriteTimeout)
}
