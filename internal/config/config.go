package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/element-phase-service/internal/temperature"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// DisplayUnit is the unit classified readings are rendered in.
	DisplayUnit temperature.Unit
}

// Load reads configuration from environment variables, applying defaults where
// unset or empty.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	displayUnit, err := temperature.ParseUnit(strings.TrimSpace(sharedcfg.EnvOrDefault("DISPLAY_UNIT", "K")))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_UNIT: %w", err)
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   strings.TrimSpace(sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "element-temperature-readings")),
		KafkaSinkTopic:     strings.TrimSpace(sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "element-phase-readings")),
		KafkaGroupID:       strings.TrimSpace(sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "element-phase-service")),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,
		DisplayUnit:        displayUnit,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}
