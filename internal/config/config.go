package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"math-quiz-game/internal/domain"
	"math-quiz-game/internal/game"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Tier struct {
	Magnitude  int `yaml:"magnitude" env:"MAGNITUDE" validate:"min=2"`
	Multiplier int `yaml:"multiplier" env:"MULTIPLIER" validate:"min=1"`
}

type Config struct {
	Game struct {
		// Seed fixes the question sequence; 0 seeds from the clock.
		Seed         int64 `yaml:"seed" env:"MATHGAME_SEED"`
		Difficulties struct {
			Easy   Tier `yaml:"easy" envPrefix:"MATHGAME_EASY_"`
			Medium Tier `yaml:"medium" envPrefix:"MATHGAME_MEDIUM_"`
			Hard   Tier `yaml:"hard" envPrefix:"MATHGAME_HARD_"`
		} `yaml:"difficulties"`
	} `yaml:"game"`
	Leaderboard struct {
		Backend string `yaml:"backend" env:"MATHGAME_LEADERBOARD_BACKEND" validate:"oneof=memory redis"`
		Redis   struct {
			Addr     string `yaml:"addr" env:"MATHGAME_REDIS_ADDR"`
			Password string `yaml:"password" env:"MATHGAME_REDIS_PASSWORD"`
			DB       int    `yaml:"db" env:"MATHGAME_REDIS_DB" validate:"min=0"`
			TTL      string `yaml:"ttl" env:"MATHGAME_REDIS_TTL"`
		} `yaml:"redis"`
	} `yaml:"leaderboard"`
	Log struct {
		Level string `yaml:"level" env:"MATHGAME_LOG_LEVEL" validate:"oneof=trace debug info warn error"`
		File  string `yaml:"file" env:"MATHGAME_LOG_FILE"`
	} `yaml:"log"`
	Metrics struct {
		Textfile string `yaml:"textfile" env:"MATHGAME_METRICS_TEXTFILE"`
	} `yaml:"metrics"`
}

// Default returns the stock configuration: in-memory leaderboard, stock tiers.
func Default() Config {
	cfg := Config{}
	tiers := game.DefaultTiers()
	cfg.Game.Difficulties.Easy = fromTier(tiers[domain.Easy])
	cfg.Game.Difficulties.Medium = fromTier(tiers[domain.Medium])
	cfg.Game.Difficulties.Hard = fromTier(tiers[domain.Hard])
	cfg.Leaderboard.Backend = BackendMemory
	cfg.Leaderboard.Redis.TTL = "1h"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads YAML config from path on top of Default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Read is the full pipeline used by the CLI: optional .env file, YAML, MATHGAME_*
// environment overrides, then validation.
func Read(path, dotenvPath string) (Config, error) {
	if err := LoadDotEnv(dotenvPath); err != nil {
		return Config{}, err
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv exports variables from a .env file without overriding the real
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from MATHGAME_* variables; unset variables leave the field alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Leaderboard.Backend == BackendRedis && c.Leaderboard.Redis.Addr == "" {
		return fmt.Errorf("%w: leaderboard.redis.addr is required for the redis backend", ErrInvalidConfig)
	}
	if err := c.Tiers().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Tiers converts the difficulty section into the game's lookup table.
func (c Config) Tiers() game.Tiers {
	d := c.Game.Difficulties
	return game.Tiers{
		domain.Easy:   toTier(d.Easy),
		domain.Medium: toTier(d.Medium),
		domain.Hard:   toTier(d.Hard),
	}
}

// RedisTTL returns the leaderboard key TTL.
func (c Config) RedisTTL() time.Duration {
	return TTLDuration(c.Leaderboard.Redis.TTL, time.Hour)
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func fromTier(t game.Tier) Tier {
	return Tier{Magnitude: t.Magnitude, Multiplier: t.Multiplier}
}

func toTier(t Tier) game.Tier {
	return game.Tier{Magnitude: t.Magnitude, Multiplier: t.Multiplier}
}
