// Package config loads prepiq settings from defaults, an optional YAML
// file, a .env file, PREPIQ_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/prepiq/internal/store"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Performance sources.
const (
	SourceDataset  = "dataset"
	SourceProblems = "problems"
)

// Config is the resolved application configuration.
type Config struct {
	DB          string            `mapstructure:"db"`
	Dataset     string            `mapstructure:"dataset"`
	Store       StoreConfig       `mapstructure:"store"`
	Log         LogConfig         `mapstructure:"log"`
	Performance PerformanceConfig `mapstructure:"performance"`
	Roadmap     RoadmapConfig     `mapstructure:"roadmap"`
	MockTest    MockTestConfig    `mapstructure:"mocktest"`
	Keys        KeysConfig        `mapstructure:"keys"`
}

type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type PerformanceConfig struct {
	// Source is SourceDataset or SourceProblems.
	Source string `mapstructure:"source"`
}

type RoadmapConfig struct {
	// WeakOnly builds the roadmap from the top WeakTopics Weak topics
	// instead of the full weakest-first ranking.
	WeakOnly   bool `mapstructure:"weak_only"`
	WeakTopics int  `mapstructure:"weak_topics"`
}

type MockTestConfig struct {
	// Seed fixes the simulator; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

type KeysConfig struct {
	Progress  string `mapstructure:"progress"`
	Problems  string `mapstructure:"problems"`
	MockTests string `mapstructure:"mock_tests"`
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit YAML file. It must exist when set.
	ConfigFile string
	// EnvFile is loaded if present. Defaults to ".env".
	EnvFile string
	// Flags, when set, override file and environment values.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"dataset":   "dataset",
	"store":     "store.backend",
	"log-level": "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("dataset", "")
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", store.DefaultRedisPrefix)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("performance.source", SourceDataset)
	v.SetDefault("roadmap.weak_only", false)
	v.SetDefault("roadmap.weak_topics", 3)
	v.SetDefault("mocktest.seed", 0)
	v.SetDefault("keys.progress", store.ProgressKey)
	v.SetDefault("keys.problems", store.ProblemsKey)
	v.SetDefault("keys.mock_tests", store.MockTestKey)
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PREPIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("store.redis.addr", "PREPIQ_STORE_REDIS_ADDR", "PREPIQ_REDIS_ADDR")
	_ = v.BindEnv("store.redis.password", "PREPIQ_STORE_REDIS_PASSWORD", "PREPIQ_REDIS_PASSWORD")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := defaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend))
	}
	switch c.Performance.Source {
	case SourceDataset, SourceProblems:
	default:
		errs = append(errs, fmt.Errorf("performance.source: unknown source %q", c.Performance.Source))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Roadmap.WeakTopics < 1 {
		errs = append(errs, fmt.Errorf("roadmap.weak_topics must be at least 1, got %d", c.Roadmap.WeakTopics))
	}
	if c.Store.Backend == BackendRedis && strings.TrimSpace(c.Store.Redis.Addr) == "" {
		errs = append(errs, errors.New("store.redis.addr is required for the redis backend"))
	}
	return errors.Join(errs...)
}

// defaultConfigDir returns $XDG_CONFIG_HOME/prepiq or ~/.config/prepiq.
func defaultConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "prepiq"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "prepiq"), nil
}
