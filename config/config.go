package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// ErrInvalidOutput is returned by Validate for an output that is not a .pptx file.
var ErrInvalidOutput = errors.New("output must be a .pptx file")

// Config structure
type Config struct {
	Output        string `env:"DECK_OUTPUT" envDefault:"design-presentation.pptx"`
	HandoutPath   string `env:"DECK_HANDOUT"`      // PDF
	HandoutFont   string `env:"DECK_HANDOUT_FONT"` // TTF embedded in the handout
	InventoryPath string `env:"DECK_INVENTORY"`    // XLSX
	OutlinePath   string `env:"DECK_OUTLINE"`      // DOCX
	LogDir        string `env:"DECK_LOG_DIR"`
	Debug         bool   `env:"DECK_DEBUG"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that parse but make no sense.
func (c Config) Validate() error {
	if !strings.EqualFold(filepath.Ext(c.Output), ".pptx") {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	return nil
}
