package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT, default=8080"`
	Env             string        `env:"ENV, default=development"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS, required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Database DatabaseConfig
	Auth     AuthConfig
	Gemini   GeminiConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	// URL backs the delegated pool used by every protected request.
	URL string `env:"DATABASE_URL, required"`
	// ServiceURL backs the privileged pool used only for verification.
	ServiceURL string `env:"DATABASE_SERVICE_URL, required"`
}

type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET, required"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY, required"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB, default=0"`
	CacheTTL time.Duration `env:"TRANSLATION_CACHE_TTL, default=24h"`
}

// IsDevelopment reports whether ENV selects the local development profile.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// LoadDotEnv loads .env into the process environment when present. Variables
// already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment. A missing required
// variable is reported by name.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Redis.CacheTTL < 0 {
		return nil, errors.New("config: TRANSLATION_CACHE_TTL must not be negative")
	}
	return &cfg, nil
}
