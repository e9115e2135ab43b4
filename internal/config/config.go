package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	ServiceName  string
	Environment  string
	OTLPEndpoint string
	Kafka        KafkaConfig
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// Load reads configuration from the environment, with a .env file as
// fallback. None of these values affect transfer semantics.
func Load() *Config {
	_ = godotenv.Load()

	kafkaEnabled, _ := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))

	return &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		ServiceName:  getEnv("SERVICE_NAME", "account-transfer-service"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Kafka: KafkaConfig{
			Enabled: kafkaEnabled,
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "transfer_notifications"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
