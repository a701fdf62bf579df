package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres  = "postgres"
	StorageDriverFirestore = "firestore"
)

// Переменные окружения для секретов, перекрывают значения из файла
const (
	envDBPassword           = "DB_PASSWORD"
	envRedisPassword        = "REDIS_PASSWORD"
	envFirestoreCredentials = "FIRESTORE_CREDENTIALS"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Storage    StorageConfig    `toml:"storage"`
	Firestore  FirestoreConfig  `toml:"firestore"`
	Redis      RedisConfig      `toml:"redis"`
	Breaker    BreakerConfig    `toml:"breaker"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type StorageConfig struct {
	Driver string `toml:"driver"` // postgres | firestore
}

type FirestoreConfig struct {
	ProjectID       string `toml:"project_id"`
	CredentialsFile string `toml:"credentials_file"`
	JobsCollection  string `toml:"jobs_collection"`
	UsersCollection string `toml:"users_collection"`
}

type RedisConfig struct {
	Enabled          bool   `toml:"enabled"`
	Addr             string `toml:"addr"`
	Password         string `toml:"password"`
	DB               int    `toml:"db"`
	PolicyTTLSeconds int    `toml:"policy_ttl_seconds"`
}

// PolicyTTL время жизни закешированных рабочих часов
func (c RedisConfig) PolicyTTL() time.Duration {
	return time.Duration(c.PolicyTTLSeconds) * time.Second
}

type BreakerConfig struct {
	Enabled          bool   `toml:"enabled"`
	MaxRequests      uint32 `toml:"max_requests"`
	Interval         int    `toml:"interval"` // секунды
	Timeout          int    `toml:"timeout"`  // секунды
	FailureThreshold uint32 `toml:"failure_threshold"`
}

type SchedulingConfig struct {
	Timezone         string  `toml:"timezone"`
	DefaultSlotHours float64 `toml:"default_slot_hours"`
	MaxSearchDays    int     `toml:"max_search_days"`
	MaxSuggestions   int     `toml:"max_suggestions"`
}

// Location часовой пояс, в котором разбираются даты запросов
func (c SchedulingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает конфигурацию из TOML файла
// Секреты можно передать через окружение или .env файл рядом с бинарником
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Firestore: FirestoreConfig{
			JobsCollection:  "projects",
			UsersCollection: "users",
		},
		Redis: RedisConfig{
			Addr:             "localhost:6379",
			PolicyTTLSeconds: 600,
		},
		Breaker: BreakerConfig{
			MaxRequests:      1,
			Interval:         60,
			Timeout:          30,
			FailureThreshold: 5,
		},
		Scheduling: SchedulingConfig{
			Timezone:         "UTC",
			DefaultSlotHours: 2,
			MaxSearchDays:    7,
			MaxSuggestions:   3,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-scheduleservice",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(envFirestoreCredentials); v != "" {
		c.Firestore.CredentialsFile = v
	}
}

// Validate проверяет корректность значений конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	case StorageDriverFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("%w: firestore.project_id is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	if c.Breaker.Enabled && c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("%w: breaker.failure_threshold must be positive", ErrInvalidConfig)
	}

	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.DefaultSlotHours < 0.5 || c.Scheduling.DefaultSlotHours > 12 {
		return fmt.Errorf("%w: scheduling.default_slot_hours=%v", ErrInvalidConfig, c.Scheduling.DefaultSlotHours)
	}
	if c.Scheduling.MaxSearchDays < 1 || c.Scheduling.MaxSearchDays > 30 {
		return fmt.Errorf("%w: scheduling.max_search_days=%d", ErrInvalidConfig, c.Scheduling.MaxSearchDays)
	}
	if c.Scheduling.MaxSuggestions < 1 || c.Scheduling.MaxSuggestions > 5 {
		return fmt.Errorf("%w: scheduling.max_suggestions=%d", ErrInvalidConfig, c.Scheduling.MaxSuggestions)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
