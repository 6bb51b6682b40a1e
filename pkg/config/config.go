package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
	"github.com/nihn/eurostartrainfinder/pkg/redis_client"
	"github.com/nihn/eurostartrainfinder/pkg/util"
)

const Prefix = "TRAINFINDER_"

// Version is set at build time with -ldflags "-X github.com/nihn/eurostartrainfinder/pkg/config.Version=..."
var Version = "dev"

type Config struct {
	Eurostar eurostar.Config

	// MaxConcurrency caps concurrent searches, zero means one per date pair
	MaxConcurrency int

	Redis            redis_client.Config
	StationsCacheTTL time.Duration

	Logging LoggingConfig
}

type LoggingConfig struct {
	Format   string
	Debug    bool
	FilePath string
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}

// Load reads the configuration from the environment, after loading any .env file found
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	return FromEnvironment(util.GetEnvironmentVariables(Prefix))
}

func FromEnvironment(env map[string]string) (*Config, error) {
	var err error

	cfg := &Config{
		Eurostar: eurostar.Config{
			BaseURL: getEnv(env, "BASE_URL", eurostar.DefaultBaseURL),
			APIKey:  getEnv(env, "API_KEY", ""),
		},
		Redis: redis_client.Config{
			Address:  getEnv(env, "REDIS_ADDRESS", ""),
			Password: getEnv(env, "REDIS_PASSWORD", ""),
		},
		Logging: LoggingConfig{
			Format:   getEnv(env, "LOG_FORMAT", "CONSOLE"),
			Debug:    getEnv(env, "DEBUG", "") == "YES",
			FilePath: getEnv(env, "LOG_FILE", ""),
		},
	}

	if cfg.Eurostar.Timeout, err = getDurationEnv(env, "REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Eurostar.MaxRetries, err = getIntEnv(env, "MAX_RETRIES", 2); err != nil {
		return nil, err
	}
	if cfg.Eurostar.RetryInitialInterval, err = getDurationEnv(env, "RETRY_INITIAL_INTERVAL", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrency, err = getIntEnv(env, "MAX_CONCURRENCY", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.Database, err = getIntEnv(env, "REDIS_DATABASE", 0); err != nil {
		return nil, err
	}
	if cfg.StationsCacheTTL, err = getDurationEnv(env, "STATIONS_CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(env map[string]string, key string, defaultValue string) string {
	if value := env[Prefix+key]; value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(env map[string]string, key string, defaultValue int) (int, error) {
	value := env[Prefix+key]
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s must be an integer: %w", Prefix, key, err)
	}
	return n, nil
}

func getDurationEnv(env map[string]string, key string, defaultValue time.Duration) (time.Duration, error) {
	value := env[Prefix+key]
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s must be a duration: %w", Prefix, key, err)
	}
	return duration, nil
}
