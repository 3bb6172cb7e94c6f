// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Search   SearchConfig   `mapstructure:"search"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
	ReadTimeout int `mapstructure:"read_timeout"` // milliseconds
}

// SearchConfig holds settings for the external search provider.
type SearchConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// CacheConfig selects and configures the lookup cache backend.
type CacheConfig struct {
	Backend  string `mapstructure:"backend"` // file, memory, redis, bolt
	FilePath string `mapstructure:"file_path"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

// TTL returns the configured entry lifetime. Defaults to 30 days, which is
// also the contract the calculators and their tests assume.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}

// PricingConfig holds the cost-model knobs.
type PricingConfig struct {
	BaseTransportCost float64 `mapstructure:"base_transport_cost"`
	GuideDailyCost    float64 `mapstructure:"guide_daily_cost"`
	MaxHotelOptions   int     `mapstructure:"max_hotel_options"`
	Currency          string  `mapstructure:"currency"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
