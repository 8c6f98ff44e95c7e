// Package config loads host settings from the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/game"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// Config is everything the host decides before a run
type Config struct {
	Seed   int64 `env:"VI_CRAWLER_SEED"` // Zero picks a time-based seed
	Width  int   `env:"VI_CRAWLER_WIDTH"  envDefault:"80"`
	Height int   `env:"VI_CRAWLER_HEIGHT" envDefault:"50"`

	LogLevel  string `env:"VI_CRAWLER_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"VI_CRAWLER_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"VI_CRAWLER_LOG_FILE"   envDefault:"vi-crawler.log"`

	Templates string `env:"VI_CRAWLER_TEMPLATES"` // Empty uses the embedded set

	Audio       bool    `env:"VI_CRAWLER_AUDIO"        envDefault:"false"`
	AudioVolume float64 `env:"VI_CRAWLER_AUDIO_VOLUME" envDefault:"0.5"`

	SpectateAddr string `env:"VI_CRAWLER_SPECTATE_ADDR"` // Empty disables the spectator feed
	MorguePath   string `env:"VI_CRAWLER_MORGUE_PATH"`   // Empty disables the run ledger
}

// Load parses the environment, resolves the seed and validates
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the host cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Width < parameter.CameraViewWidth/2 || c.Height < parameter.CameraViewHeight/2 {
		errs = append(errs, fmt.Errorf("map %dx%d too small", c.Width, c.Height))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.AudioVolume < 0 || c.AudioVolume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v outside [0,1]", c.AudioVolume))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Game returns the simulation settings
func (c Config) Game() game.Config {
	cfg := game.DefaultConfig(c.Seed)
	cfg.Width, cfg.Height = c.Width, c.Height
	return cfg
}
