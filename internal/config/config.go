package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// HTTP holds API server settings, used only in serve mode.
type HTTP struct {
	Host string
	Port int
}

// Database holds primary and read replica connection settings.
type Database struct {
	Driver          string
	WriterDSN       string
	ReaderDSN       string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
}

// Cache selects the catalog cache backend.
type Cache struct {
	Enabled    bool
	Driver     string
	DefaultTTL time.Duration
	Redis      Redis
}

// Redis contains redis connection settings.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Messaging configures the order event bus.
type Messaging struct {
	Enabled       bool
	Driver        string
	Kafka         Kafka
	ConsumerGroup string
	Workers       Worker
}

// Kafka holds Kafka connection details.
type Kafka struct {
	Brokers        []string
	ClientID       string
	Topic          string
	CommitInterval time.Duration
	MinBytes       int
	MaxBytes       int
	ConnectTimeout time.Duration
}

// Worker configures the event consumer engine.
type Worker struct {
	Enabled      bool
	PollInterval time.Duration
	Concurrency  int
}

// Observability contains logging, tracing, and metrics settings.
type Observability struct {
	ServiceName     string
	Environment     string
	LogLevel        string
	LogEncoding     string
	EnableTracing   bool
	TraceExporter   string
	TraceEndpoint   string
	TraceInsecure   bool
	EnableMetrics   bool
	MetricsExporter string
	PrometheusPath  string
}

// Config wraps every application knob.
type Config struct {
	HTTP          HTTP
	Database      Database
	Cache         Cache
	Messaging     Messaging
	Observability Observability
}

// Module wires the configuration loader into the Fx graph.
var Module = fx.Provide(New)

var loadEnvOnce sync.Once

// New builds a Config from environment variables or defaults. The defaults
// describe a local single-session setup: sqlite store next to the binary,
// cache and messaging disabled, no exporters.
func New() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg := Config{
		HTTP: HTTP{
			Host: envString("HTTP_HOST", "0.0.0.0"),
			Port: envInt("HTTP_PORT", 8080),
		},
		Database: Database{
			Driver:          envString("DB_DRIVER", "sqlite"),
			WriterDSN:       envString("DB_WRITER_DSN", "file:rosa.db?_foreign_keys=on"),
			ReaderDSN:       envString("DB_READER_DSN", ""),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 1),
			MaxConnLifetime: envDuration("DB_MAX_CONN_LIFETIME", 0),
		},
		Cache: Cache{
			Enabled:    envBool("CACHE_ENABLED", false),
			Driver:     envString("CACHE_DRIVER", "redis"),
			DefaultTTL: envDuration("CACHE_DEFAULT_TTL", time.Minute*5),
			Redis: Redis{
				Addr:     envString("REDIS_ADDR", "127.0.0.1:6379"),
				Password: envString("REDIS_PASSWORD", ""),
				DB:       envInt("REDIS_DB", 0),
			},
		},
		Messaging: Messaging{
			Enabled: envBool("MESSAGING_ENABLED", false),
			Driver:  envString("MESSAGING_DRIVER", "kafka"),
			Kafka: Kafka{
				Brokers:        envStrings("KAFKA_BROKERS", []string{"127.0.0.1:9092"}),
				ClientID:       envString("KAFKA_CLIENT_ID", "rosa-pos"),
				Topic:          envString("KAFKA_TOPIC", "pos.orders"),
				CommitInterval: envDuration("KAFKA_COMMIT_INTERVAL", time.Second),
				MinBytes:       envInt("KAFKA_MIN_BYTES", 10e3),
				MaxBytes:       envInt("KAFKA_MAX_BYTES", 10e6),
				ConnectTimeout: envDuration("KAFKA_CONNECT_TIMEOUT", 5*time.Second),
			},
			ConsumerGroup: envString("KAFKA_CONSUMER_GROUP", "rosa-pos-worker"),
			Workers: Worker{
				Enabled:      envBool("WORKER_ENABLED", true),
				PollInterval: envDuration("WORKER_POLL_INTERVAL", time.Second),
				Concurrency:  envInt("WORKER_CONCURRENCY", 1),
			},
		},
		Observability: Observability{
			ServiceName:     envString("OBS_SERVICE_NAME", "rosa-pos"),
			Environment:     envString("OBS_ENVIRONMENT", "local"),
			LogLevel:        envString("OBS_LOG_LEVEL", "info"),
			LogEncoding:     envString("OBS_LOG_ENCODING", "json"),
			EnableTracing:   envBool("OBS_ENABLE_TRACING", false),
			TraceExporter:   envString("OBS_TRACE_EXPORTER", "stdout"),
			TraceEndpoint:   envString("OBS_OTLP_ENDPOINT", "localhost:4317"),
			TraceInsecure:   envBool("OBS_OTLP_INSECURE", true),
			EnableMetrics:   envBool("OBS_ENABLE_METRICS", false),
			MetricsExporter: envString("OBS_METRICS_EXPORTER", "prometheus"),
			PrometheusPath:  envString("OBS_PROMETHEUS_PATH", "/metrics"),
		},
	}

	if cfg.HTTP.Port <= 0 {
		return Config{}, fmt.Errorf("invalid HTTP port: %d", cfg.HTTP.Port)
	}

	if cfg.Database.WriterDSN == "" {
		return Config{}, fmt.Errorf("missing DB_WRITER_DSN")
	}
	if cfg.Database.ReaderDSN == "" {
		cfg.Database.ReaderDSN = cfg.Database.WriterDSN
	}

	if !cfg.Cache.Enabled {
		cfg.Cache.Driver = "noop"
	}
	switch cfg.Cache.Driver {
	case "redis", "noop":
	default:
		return Config{}, fmt.Errorf("unsupported cache driver: %s", cfg.Cache.Driver)
	}
	if cfg.Cache.Driver == "redis" && cfg.Cache.Redis.Addr == "" {
		return Config{}, fmt.Errorf("missing REDIS_ADDR for redis cache")
	}
	if cfg.Cache.DefaultTTL < 0 {
		cfg.Cache.DefaultTTL = time.Minute * 5
	}

	if !cfg.Messaging.Enabled {
		cfg.Messaging.Driver = "noop"
	}
	switch cfg.Messaging.Driver {
	case "kafka", "noop":
	default:
		return Config{}, fmt.Errorf("unsupported messaging driver: %s", cfg.Messaging.Driver)
	}
	if cfg.Messaging.Driver == "kafka" {
		if len(cfg.Messaging.Kafka.Brokers) == 0 {
			return Config{}, fmt.Errorf("KAFKA_BROKERS must be provided")
		}
		if cfg.Messaging.Kafka.Topic == "" {
			return Config{}, fmt.Errorf("KAFKA_TOPIC must be provided")
		}
		if cfg.Messaging.ConsumerGroup == "" {
			return Config{}, fmt.Errorf("KAFKA_CONSUMER_GROUP must be provided")
		}
	}
	if cfg.Messaging.Workers.Concurrency <= 0 {
		cfg.Messaging.Workers.Concurrency = 1
	}
	if cfg.Messaging.Workers.PollInterval <= 0 {
		cfg.Messaging.Workers.PollInterval = time.Second
	}

	obs := &cfg.Observability
	obs.LogLevel = normalize(obs.LogLevel, "info")
	obs.LogEncoding = normalize(obs.LogEncoding, "json")
	obs.TraceExporter = normalize(obs.TraceExporter, "stdout")
	obs.MetricsExporter = normalize(obs.MetricsExporter, "prometheus")
	if obs.PrometheusPath == "" {
		obs.PrometheusPath = "/metrics"
	} else if !strings.HasPrefix(obs.PrometheusPath, "/") {
		obs.PrometheusPath = "/" + obs.PrometheusPath
	}

	return cfg, nil
}

func normalize(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func envStrings(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
