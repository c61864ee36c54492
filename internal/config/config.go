package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type Config struct {
	LogLevel          string         `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile           string         `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	PresentationDelay time.Duration  `yaml:"presentation-delay" env:"TICTACTOE_PRESENTATION_DELAY" env-default:"500ms"`
	DisableMouse      bool           `yaml:"disable-mouse" env:"TICTACTOE_DISABLE_MOUSE"`
	Symbols           entity.Symbols `yaml:"symbols"`
	Theme             Theme          `yaml:"theme"`
}

type Theme struct {
	Accent    string `yaml:"accent" env:"TICTACTOE_THEME_ACCENT" env-default:"205"`
	Highlight string `yaml:"highlight" env:"TICTACTOE_THEME_HIGHLIGHT" env-default:"42"`
}

// Load - reads the config file at path, falling back to environment and defaults when it does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
