// Package config содержит конфигурацию и загрузчик настроек.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию приложения
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Cache     CacheConfig     `yaml:"cache"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	SwaggerEnabled  bool          `yaml:"swagger_enabled"`
}

// DatabaseConfig содержит настройки подключения к БД
type DatabaseConfig struct {
	DSN            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

// KafkaConfig содержит настройки Kafka
type KafkaConfig struct {
	Enabled          bool          `yaml:"enabled"`
	Brokers          []string      `yaml:"brokers"`
	Topic            string        `yaml:"topic"`
	GroupID          string        `yaml:"group_id"`
	DLQTopic         string        `yaml:"dlq_topic"`
	DLQMaxRetries    int           `yaml:"dlq_max_retries"`
	DLQBackoff       time.Duration `yaml:"dlq_backoff"`
	DLQBackoffCap    time.Duration `yaml:"dlq_backoff_cap"`
	DLQBackoffJitter bool          `yaml:"dlq_backoff_jitter"`
}

// CacheConfig содержит настройки кеша тарифов.
// Backend: memory (LRU в процессе) или redis (общий для реплик).
type CacheConfig struct {
	Backend         string        `yaml:"backend"`
	MaxItems        int           `yaml:"max_items"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Redis           RedisConfig   `yaml:"redis"`
}

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig содержит настройки проверки bearer-токенов.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// LogConfig содержит настройки логгера.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig содержит настройки трассировки и метрик.
type TelemetryConfig struct {
	ServiceName      string  `yaml:"service_name"`
	Environment      string  `yaml:"environment"`
	OTLPEndpoint     string  `yaml:"otlp_endpoint"`
	OTLPInsecure     bool    `yaml:"otlp_insecure"`
	TracesEnabled    bool    `yaml:"traces_enabled"`
	MetricsEnabled   bool    `yaml:"metrics_enabled"`
	TraceSampleRatio float64 `yaml:"trace_sample_ratio"`
	MetricsPath      string  `yaml:"metrics_path"`
}

// LoadConfig загружает конфигурацию из файла CONFIG_PATH (по умолчанию config.yaml).
// Переменные из .env подхватываются, если файл существует.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию и применяет переменные окружения.
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	normalizeConfig(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or AUTH_JWT_SECRET) is required", ErrInvalidConfig)
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("%w: cache.redis.addr is required for redis backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return fmt.Errorf("%w: kafka brokers and topic are required when kafka is enabled", ErrInvalidConfig)
	}
	return nil
}

// Address возвращает адрес сервера в формате host:port
func (s *ServerConfig) Address() string {
	if s.Host == "" {
		return fmt.Sprintf(":%d", s.Port)
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			SwaggerEnabled:  true,
		},
		Database: DatabaseConfig{
			DSN:            "",
			MigrationsPath: "file://./migrations",
		},
		Kafka: KafkaConfig{
			Enabled:          true,
			Brokers:          []string{"localhost:9092"},
			Topic:            "packages",
			GroupID:          "packages-consumer",
			DLQTopic:         "packages.dlq",
			DLQMaxRetries:    3,
			DLQBackoff:       500 * time.Millisecond,
			DLQBackoffCap:    5 * time.Second,
			DLQBackoffJitter: true,
		},
		Cache: CacheConfig{
			Backend:         CacheMemory,
			MaxItems:        1000,
			TTL:             10 * time.Minute,
			CleanupInterval: time.Minute,
		},
		Auth: AuthConfig{
			Issuer:   "parcelrate",
			TokenTTL: 12 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			ServiceName:      "parcelrate",
			Environment:      "local",
			OTLPEndpoint:     "localhost:4318",
			OTLPInsecure:     true,
			TracesEnabled:    true,
			MetricsEnabled:   true,
			TraceSampleRatio: 1.0,
			MetricsPath:      "/metrics",
		},
	}
}

// applyEnv переопределяет секреты и адреса из окружения.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: KAFKA_ENABLED: %v", ErrInvalidConfig, err)
		}
		cfg.Kafka.Enabled = enabled
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "file://./migrations"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheMemory
	}
	if cfg.Cache.MaxItems <= 0 {
		cfg.Cache.MaxItems = 1000
	}
	if cfg.Cache.CleanupInterval < 0 {
		cfg.Cache.CleanupInterval = 0
	}
	if cfg.Cache.TTL < 0 {
		cfg.Cache.TTL = 0
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "parcelrate"
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "parcelrate"
	}
	if cfg.Telemetry.OTLPEndpoint == "" {
		cfg.Telemetry.OTLPEndpoint = "localhost:4318"
	}
	if cfg.Telemetry.TraceSampleRatio <= 0 || cfg.Telemetry.TraceSampleRatio > 1 {
		cfg.Telemetry.TraceSampleRatio = 1.0
	}
	if cfg.Telemetry.MetricsPath == "" {
		cfg.Telemetry.MetricsPath = "/metrics"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "packages-consumer"
	}
	if cfg.Kafka.DLQTopic == "" && cfg.Kafka.Topic != "" {
		cfg.Kafka.DLQTopic = cfg.Kafka.Topic + ".dlq"
	}
	if cfg.Kafka.DLQMaxRetries < 0 {
		cfg.Kafka.DLQMaxRetries = 0
	}
	if cfg.Kafka.DLQBackoff < 0 {
		cfg.Kafka.DLQBackoff = 0
	}
	if cfg.Kafka.DLQBackoffCap < 0 {
		cfg.Kafka.DLQBackoffCap = 0
	}
}
