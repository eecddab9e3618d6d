package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envPrefix:"SERVER_"`
	Database DatabaseConfig `toml:"database" envPrefix:"DATABASE_"`
	Security SecurityConfig `toml:"security" envPrefix:"SECURITY_"`
	Logs     LogsConfig     `toml:"logs" envPrefix:"LOGS_"`
	Metrics  MetricsConfig  `toml:"metrics" envPrefix:"METRICS_"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig параметры подключения к хранилищу документов
type DatabaseConfig struct {
	Driver         string `toml:"driver" env:"DRIVER"`
	URI            string `toml:"uri" env:"URI"`
	Name           string `toml:"name" env:"NAME"`
	ConnectTimeout int    `toml:"connect_timeout" env:"CONNECT_TIMEOUT"`
	MaxPoolSize    int    `toml:"max_pool_size" env:"MAX_POOL_SIZE"`

	// Только для postgres
	MaxIdleConns    int `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
}

// SecurityConfig параметры хеширования паролей
type SecurityConfig struct {
	BcryptCost int `toml:"bcrypt_cost" env:"BCRYPT_COST"`
}

type LogsConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// Default возвращает конфигурацию со значениями по умолчанию
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
			Driver:          DriverMongo,
			URI:             "mongodb://localhost:27017",
			Name:            "test",
			ConnectTimeout:  10,
			MaxPoolSize:     20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Security: SecurityConfig{
			BcryptCost: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-carservice",
		},
	}
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения.
// Если файла нет, используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Driver != DriverMongo && c.Database.Driver != DriverPostgres {
		return fmt.Errorf("%w: database.driver must be %q or %q, got %q",
			ErrInvalidConfig, DriverMongo, DriverPostgres, c.Database.Driver)
	}
	if c.Database.URI == "" {
		return fmt.Errorf("%w: database.uri is required", ErrInvalidConfig)
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: database.connect_timeout must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxPoolSize < 0 {
		return fmt.Errorf("%w: database.max_pool_size must not be negative, got %d", ErrInvalidConfig, c.Database.MaxPoolSize)
	}
	if c.Database.Driver == DriverMongo && c.Database.Name == "" {
		return fmt.Errorf("%w: database.name is required for mongo", ErrInvalidConfig)
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("%w: security.bcrypt_cost must be in 4..31, got %d", ErrInvalidConfig, c.Security.BcryptCost)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}

// Addr адрес для http.Server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.HTTPPort)
}
