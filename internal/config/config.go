// Package config загружает конфигурацию сервиса из TOML файла
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Festum-DesignService/pkg/sqlbuilder"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Designer DesignerConfig `toml:"designer"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig параметры key-value хранилища
type StorageConfig struct {
	Driver     string         `toml:"driver"`
	SQLitePath string         `toml:"sqlite_path"`
	Postgres   PostgresConfig `toml:"postgres"`
}

// PostgresConfig параметры подключения к postgres
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DesignerConfig параметры сессий дизайна
type DesignerConfig struct {
	DefaultTemplate string `toml:"default_template"`
	MaxSessions     int    `toml:"max_sessions"`
	AutosaveTimeout int    `toml:"autosave_timeout_ms"`
	// SessionIdleTimeout в секундах, 0 - сессии не истекают
	SessionIdleTimeout int `toml:"session_idle_timeout"`
	// EvictInterval период проверки бездействующих сессий в секундах
	EvictInterval int `toml:"evict_interval"`
}

// DSN строка подключения к postgres
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Load читает конфигурацию из файла, применяет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и для встроенных конфигов)
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
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
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "festum_design_service",
		},
		Storage: StorageConfig{
			Driver:     sqlbuilder.DriverSQLite,
			SQLitePath: "data/designs.db",
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
		Designer: DesignerConfig{
			DefaultTemplate: "salon-rectangular",
			MaxSessions:     1000,
			AutosaveTimeout: 500,
			// 30 минут без запросов
			SessionIdleTimeout: 1800,
			EvictInterval:      60,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case sqlbuilder.DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: storage.sqlite_path is required for sqlite driver", ErrInvalidConfig)
		}
	case sqlbuilder.DriverPostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres host and dbname are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Designer.MaxSessions <= 0 {
		return fmt.Errorf("%w: designer.max_sessions must be positive", ErrInvalidConfig)
	}
	if c.Designer.SessionIdleTimeout < 0 {
		return fmt.Errorf("%w: designer.session_idle_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Designer.SessionIdleTimeout > 0 && c.Designer.EvictInterval <= 0 {
		return fmt.Errorf("%w: designer.evict_interval must be positive when session_idle_timeout is set", ErrInvalidConfig)
	}
	if c.Designer.AutosaveTimeout < 0 {
		return fmt.Errorf("%w: designer.autosave_timeout_ms must not be negative", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
