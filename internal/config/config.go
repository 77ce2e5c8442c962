// Package config reads the runtime knobs of a demo service from the
// environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName     string
	Version         string
	HTTPAddr        string
	KafkaBrokers    []string
	ShutdownTimeout time.Duration
	WSIdleTimeout   time.Duration
	LogLevel        string
}

// Load builds the config for one service. The service name is fixed per
// binary; defaultAddr is the service's well-known port.
func Load(service, defaultAddr string) Config {
	return Config{
		ServiceName:     service,
		Version:         getenv("SERVICE_VERSION", "1.0.0"),
		HTTPAddr:        getenv("HTTP_ADDR", defaultAddr),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		ShutdownTimeout: secenv("SHUTDOWN_TIMEOUT", 5),
		WSIdleTimeout:   secenv("WS_IDLE_TIMEOUT", 60),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func secenv(k string, def int) time.Duration {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil || n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// AuditConfig configures the snapshot audit consumer.
type AuditConfig struct {
	KafkaBrokers []string
	Group        string
	Workers      int
	LogLevel     string
}

func LoadAudit() AuditConfig {
	workers, err := strconv.Atoi(getenv("AUDIT_WORKERS", "2"))
	if err != nil || workers <= 0 {
		workers = 1
	}
	return AuditConfig{
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),
		Group:        getenv("AUDIT_GROUP", "snapshot-audit"),
		Workers:      workers,
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}
