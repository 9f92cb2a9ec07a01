package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("SCHAPPIE_SERVER_PORT")
		os.Unsetenv("SCHAPPIE_SERVER_ENVIRONMENT")
		os.Unsetenv("SCHAPPIE_CACHE_TTL")
		os.Unsetenv("SCHAPPIE_BOOSTS_ENABLED")
		os.Unsetenv("SCHAPPIE_BOOSTS_URL")
		os.Unsetenv("SCHAPPIE_SEARCH_CATEGORY_MISS_MULTIPLIER")
		os.Unsetenv("SCHAPPIE_SEARCH_DEBUG")
		os.Unsetenv("SCHAPPIE_RATELIMIT_PER_IP")
		os.Unsetenv("SCHAPPIE_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Boosts.Enabled {
			t.Error("Boosts.Enabled = true, want false by default")
		}
		if cfg.Search.CategoryMissMultiplier != 1.0 {
			t.Errorf("Search.CategoryMissMultiplier = %v, want 1.0", cfg.Search.CategoryMissMultiplier)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("RateLimit.Burst = %d, want 20", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCHAPPIE_SERVER_PORT", "9090")
		os.Setenv("SCHAPPIE_CACHE_TTL", "1h")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Cache.TTL != 1*time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("rejects enabled boosts without a URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCHAPPIE_BOOSTS_ENABLED", "true")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects out-of-range miss multiplier", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCHAPPIE_SEARCH_CATEGORY_MISS_MULTIPLIER", "1.5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			Cache:     CacheConfig{TTL: time.Hour},
			Search:    SearchConfig{CategoryMissMultiplier: 1.0, LegacyDampening: 0.9},
			RateLimit: RateLimitConfig{PerIP: 100, Burst: 20},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("zero per-IP rate limit fails", func(t *testing.T) {
		cfg := base()
		cfg.RateLimit.PerIP = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("boosts enabled with URL passes", func(t *testing.T) {
		cfg := base()
		cfg.Boosts = BoostsConfig{Enabled: true, URL: "https://example.com/boosts.json"}
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})
}
