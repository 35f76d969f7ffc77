package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	RemoteStore   RemoteStoreConfig   `toml:"remote_store"`
	Auth          AuthConfig          `toml:"auth"`
	Confirmations ConfirmationsConfig `toml:"confirmations"`
	CORS          CORSConfig          `toml:"cors"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig параметры журнала аудита в PostgreSQL. Пустой Host отключает журнал.
type DatabaseConfig struct {
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

// RedisConfig параметры хранилища подтверждений. Пустой Address включает хранение в памяти.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RemoteStoreConfig параметры внешнего REST API (таймаут в секундах, повторов нет)
type RemoteStoreConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// AuthConfig параметры проверки JWT
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
	// DevHeaders разрешает X-User-ID / X-User-Role / X-Business-ID вместо токена
	DevHeaders bool `toml:"dev_headers"`
}

// ConfirmationsConfig параметры двухшагового подтверждения (TTL в секундах)
type ConfirmationsConfig struct {
	TTL       int    `toml:"ttl"`
	KeyPrefix string `toml:"key_prefix"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает .env (если есть), затем TOML файл с подстановкой ${ENV}
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, применяет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "nokta"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.RemoteStore.Timeout == 0 {
		c.RemoteStore.Timeout = 10
	}
	if c.Confirmations.TTL == 0 {
		c.Confirmations.TTL = 300
	}
	if c.Confirmations.KeyPrefix == "" {
		c.Confirmations.KeyPrefix = "nokta:confirm"
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RemoteStore.URL) == "" {
		return errors.New("config: remote_store.url is required")
	}
	if c.RemoteStore.Timeout < 0 {
		return errors.New("config: remote_store.timeout must not be negative")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Auth.JWTSecret == "" && !c.Auth.DevHeaders {
		return errors.New("config: auth.jwt_secret is required unless auth.dev_headers is enabled")
	}
	if c.Confirmations.TTL < 0 {
		return errors.New("config: confirmations.ttl must not be negative")
	}
	return nil
}

// DatabaseEnabled сообщает, настроен ли журнал аудита
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RemoteStoreTimeout таймаут запросов к удаленному хранилищу
func (c *Config) RemoteStoreTimeout() time.Duration {
	return time.Duration(c.RemoteStore.Timeout) * time.Second
}

// ConfirmationTTL время жизни токена подтверждения
func (c *Config) ConfirmationTTL() time.Duration {
	return time.Duration(c.Confirmations.TTL) * time.Second
}
