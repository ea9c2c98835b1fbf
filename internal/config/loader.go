package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLife loads the simulation configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadLife(customPath string) (LifeConfig, error) {
	cfg := DefaultLifeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("life.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "life.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (LifeConfig, bool) {
	cfg := DefaultLifeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}
