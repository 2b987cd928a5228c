// Package config loads the optional reckon.toml settings file. Discovery
// walks upward from the working directory, then falls back to the user config
// directory; a missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "reckon.toml"

// Config собирает все настройки инструмента.
type Config struct {
	Repl   ReplConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
}

// ReplConfig настраивает интерактивный цикл.
type ReplConfig struct {
	// Prompt печатается перед каждой строкой ввода.
	Prompt string `toml:"prompt"`
	// UI выбирает режим: auto | plain | fancy.
	UI string `toml:"ui"`
	// HistorySize ограничивает число сохраняемых записей истории.
	HistorySize int `toml:"history_size"`
}

// OutputConfig настраивает отображение результата.
type OutputConfig struct {
	// Precision: знаков после запятой; отрицательное значение — кратчайшая
	// форма с точным обратным чтением.
	Precision int `toml:"precision"`
	// Grouping включает разделители групп разрядов.
	Grouping bool `toml:"grouping"`
	// Locale: BCP 47 тег для группировки.
	Locale string `toml:"locale"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Repl: ReplConfig{
			Prompt:      "> ",
			UI:          "auto",
			HistorySize: 500,
		},
		Output: OutputConfig{
			Precision: -1,
			Grouping:  false,
			Locale:    "en",
		},
	}
}

// Load discovers and parses the settings file. The returned path is "" when
// the defaults are in effect.
func Load(startDir string) (Config, string, error) {
	path, ok, err := find(startDir)
	if err != nil {
		return Default(), "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := loadFile(path)
	if err != nil {
		return Default(), path, err
	}
	return cfg, path, nil
}

func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// $XDG_CONFIG_HOME/reckon/config.toml
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, nil
		}
		base = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(base, "reckon", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true, nil
	}
	return "", false, nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
