package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

type Config struct {
	Mode string           `yaml:"mode"`
	Seed uint64           `yaml:"seed"`
	Game mines.GameParams `yaml:"game"`
	Log  Log              `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Mode: ModeDevelopment,
		Game: mines.GameParams{Width: 9, Height: 9, MineCount: 10},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load builds the config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and env overrides, in that order.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		err := ReadFile(path, config)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return config, nil
}

func ReadFile(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

func lookupInt(name string, dst *int) error {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", name, err)
	}
	*dst = n
	return nil
}

func (c *Config) applyEnv() error {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
		}
		c.Seed = seed
	}

	if err := lookupInt("MINES_WIDTH", &c.Game.Width); err != nil {
		return err
	}
	if err := lookupInt("MINES_HEIGHT", &c.Game.Height); err != nil {
		return err
	}
	if err := lookupInt("MINES_MINE_COUNT", &c.Game.MineCount); err != nil {
		return err
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if file, ok := os.LookupEnv("LOG_FILE"); ok {
		c.Log.File = file
	}

	return nil
}

func (c Config) Validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c Config) Development() bool {
	if development, ok := Development(); ok {
		return development
	}
	return c.Mode != ModeProduction
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"seed":            c.Seed,
		"game":            c.Game.Seed(),
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
