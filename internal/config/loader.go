package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/roomcrawl.yaml
var defaultYAML []byte

const fileName = "roomcrawl.yaml"

// Load reads settings.
// Search order: customPath -> ~/.roomcrawl/config.yaml -> ./configs/roomcrawl.yaml -> embedded default.
// Only a custom path is required to exist; the others are skipped when
// missing. A file that exists but cannot be read or parsed is an error.
// Keys absent from the file keep their defaults.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		cfg, found, err := loadOptional(path)
		if err != nil {
			return Settings{}, err
		}
		if found {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadOptional reads path if it exists. found is false when there is no file.
func loadOptional(path string) (cfg Settings, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err = parse(data)
	if err != nil {
		return Settings{}, false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roomcrawl", "config.yaml")
}
