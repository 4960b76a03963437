package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/gcpctx"
	configFileName = "config.yaml"
)

// LoadConfig loads the gcpctx configuration by layering the optional user
// config file over the built-in defaults. A missing file is fine; a file
// that does not parse is an error the user has to fix.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	path, err := getUserConfigPath()
	if err != nil {
		// User config is optional; without a home directory there is
		// nothing to load.
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
		return config, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	loaded, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(config, loaded), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing YAML: %w", err)
	}
	return config, nil
}

// mergeConfigs overlays non-zero fields of override onto base.
func mergeConfigs(base, override Config) Config {
	merged := base
	if override.StoreDir != "" {
		merged.StoreDir = override.StoreDir
	}
	if override.GcloudDir != "" {
		merged.GcloudDir = override.GcloudDir
	}
	if override.Quiet {
		merged.Quiet = true
	}
	if override.LogLevel != "" {
		merged.LogLevel = override.LogLevel
	}
	return merged
}
