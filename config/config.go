package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Boosts    BoostsConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// BoostsConfig holds the learned-boost document configuration
type BoostsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// SearchConfig holds ranking tunables
type SearchConfig struct {
	CategoryMissMultiplier float64 `mapstructure:"category_miss_multiplier"`
	LegacyDampening        float64 `mapstructure:"legacy_dampening"`
	Debug                  bool    `mapstructure:"debug"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/schappie/")

	v.SetEnvPrefix("SCHAPPIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("boosts.enabled", false)
	v.SetDefault("boosts.url", "")

	v.SetDefault("search.category_miss_multiplier", 1.0)
	v.SetDefault("search.legacy_dampening", 0.9)
	v.SetDefault("search.debug", false)

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Boosts.Enabled && config.Boosts.URL == "" {
		return fmt.Errorf("boosts URL is required when boosts are enabled (set SCHAPPIE_BOOSTS_URL)")
	}

	if config.Search.CategoryMissMultiplier < 0 || config.Search.CategoryMissMultiplier > 1 {
		return fmt.Errorf("category miss multiplier must be in [0,1], got: %v", config.Search.CategoryMissMultiplier)
	}

	if config.Search.LegacyDampening <= 0 || config.Search.LegacyDampening > 1 {
		return fmt.Errorf("legacy dampening must be in (0,1], got: %v", config.Search.LegacyDampening)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("rate limit per IP must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
