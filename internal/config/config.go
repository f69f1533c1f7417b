package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Events       EventsConfig       `toml:"events"`
	CalendarSync CalendarSyncConfig `toml:"calendar_sync"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки бизнес-логики бронирований
type BookingConfig struct {
	// Timezone опорная зона для сравнения дня недели и времени суток (IANA, например "Europe/Moscow")
	Timezone string `toml:"timezone"`
	// SerializationRetries сколько раз повторять транзакцию при serialization_failure
	SerializationRetries int `toml:"serialization_retries"`
}

// Location возвращает опорную временную зону
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// EventsConfig настройки доставки событий об изменениях
type EventsConfig struct {
	Redis RedisEventsConfig `toml:"redis"`
	Kafka KafkaEventsConfig `toml:"kafka"`
	// StreamBuffer размер буфера событий на одну SSE-сессию
	StreamBuffer int `toml:"stream_buffer"`
}

// RedisEventsConfig публикация событий в Redis pub/sub
type RedisEventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

// KafkaEventsConfig публикация событий в Kafka
type KafkaEventsConfig struct {
	Enabled bool   `toml:"enabled"`
	Brokers string `toml:"brokers"` // через запятую
	Topic   string `toml:"topic"`
}

// BrokerList возвращает список брокеров без пустых значений
func (c KafkaEventsConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// CalendarSyncConfig интеграция с внешним календарём
type CalendarSyncConfig struct {
	Enabled    bool   `toml:"enabled"`
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"` // секунды
	CalendarID string `toml:"calendar_id"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
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
			RunMigrations:   true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-calendar",
		},
		Booking: BookingConfig{
			Timezone:             "UTC",
			SerializationRetries: 3,
		},
		Events: EventsConfig{
			Redis:        RedisEventsConfig{Channel: "booking-calendar.changes"},
			Kafka:        KafkaEventsConfig{Topic: "booking-calendar.changes"},
			StreamBuffer: 32,
		},
		CalendarSync: CalendarSyncConfig{
			Timeout:    5,
			CalendarID: "primary",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.User == "" {
		return fmt.Errorf("%w: database.user is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if c.Booking.SerializationRetries < 0 {
		return fmt.Errorf("%w: booking.serialization_retries must not be negative", ErrInvalidConfig)
	}
	if c.Events.Redis.Enabled && c.Events.Redis.Addr == "" {
		return fmt.Errorf("%w: events.redis.addr is required when redis events are enabled", ErrInvalidConfig)
	}
	if c.Events.Kafka.Enabled && len(c.Events.Kafka.BrokerList()) == 0 {
		return fmt.Errorf("%w: events.kafka.brokers is required when kafka events are enabled", ErrInvalidConfig)
	}
	if c.CalendarSync.Enabled && c.CalendarSync.URL == "" {
		return fmt.Errorf("%w: calendar_sync.url is required when calendar sync is enabled", ErrInvalidConfig)
	}
	return nil
}
