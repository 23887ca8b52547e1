package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Session     SessionConfig   `mapstructure:"session"`
	Admin       AdminConfig     `mapstructure:"admin"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	// URL is the only store selector; everything else is pool tuning.
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type SessionConfig struct {
	// Secret signs the session cookie tokens.
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type AdminConfig struct {
	// BootstrapPassword replaces the default credential when the first admin
	// is created. Required in production.
	BootstrapPassword string `mapstructure:"bootstrap_password"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func (d DatabaseConfig) Validate() error {
	if d.URL == "" {
		return fmt.Errorf("database url is required (set DATABASE_URL)")
	}
	return nil
}

// LoadConfig reads config.yml (when present) and overlays environment
// variables. Recognized env options: DATABASE_URL selects the backing store,
// SESSION_SECRET signs sessions, ADMIN_BOOTSTRAP_PASSWORD seeds the first
// admin, APP_ENV selects the environment.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("environment", "development")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_idle_time", 5*time.Minute)
	viper.SetDefault("session.expiry_hours", 24)
	viper.SetDefault("rate_limit.rps", 20.0)
	viper.SetDefault("rate_limit.burst", 40)

	viper.AutomaticEnv()
	viper.BindEnv("environment", "APP_ENV")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("session.secret", "SESSION_SECRET")
	viper.BindEnv("admin.bootstrap_password", "ADMIN_BOOTSTRAP_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; env vars alone are a valid setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	if config.Environment == "production" && config.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required in production (set SESSION_SECRET)")
	}
	if config.Session.Secret == "" {
		config.Session.Secret = "dev-secret-key-change-in-production"
	}

	return &config, nil
}
