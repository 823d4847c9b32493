package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tool configuration.
type Config struct {
	// NoticePath is the path of the file holding the copyright notice text.
	NoticePath string `toml:"notice_path"`
	// DefaultUI specifies the default user interface ("terminal" or "fuzzy").
	// This can be overridden by the --ui command-line flag.
	DefaultUI string `toml:"default_ui"`
	// Editor is the command used to edit the notice text. Falls back to
	// VISUAL, then EDITOR, then a platform default.
	Editor string `toml:"editor"`
	// Exclude lists directory names that are always pruned from the scan,
	// in addition to whatever the user enters at the prompt.
	Exclude []string `toml:"exclude"`
}

const (
	defaultConfigFileName = "config.toml"
	defaultNoticeFileName = "copyright.txt"
)

func defaultConfig() Config {
	return Config{
		NoticePath: defaultNoticeFileName,
		DefaultUI:  "terminal",
		Exclude:    []string{".git", "node_modules", "vendor"},
	}
}

func configDirPath() (string, error) {
	userConfigPath, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve user config path: %w", err)
	}

	return filepath.Join(userConfigPath, "stamp"), nil
}

// loadConfigFromFile loads the configuration from a TOML file in configDir
// (e.g. ~/.config/stamp/config.toml). If the file doesn't exist, it creates
// one with default values and explanatory comments.
func loadConfigFromFile(configDir string) (Config, error) {
	configFilePath := filepath.Join(configDir, defaultConfigFileName)
	defaults := defaultConfig()

	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0750); err != nil {
			return Config{}, fmt.Errorf("failed to create config directory %s: %w", configDir, err)
		}
		f, err := os.Create(configFilePath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to create config file %s: %w", configFilePath, err)
		}
		defer f.Close()

		// Written by hand rather than through toml.Encoder so the default
		// file carries comments.
		defaultTomlContent := fmt.Sprintf(`# notice_path is the file holding the copyright notice text,
# resolved relative to the working directory unless absolute.
notice_path = "%s"

# default_ui specifies the default user interface.
# Valid options are "terminal" or "fuzzy".
# This can be overridden by the --ui command-line flag.
default_ui = "%s"

# editor is the command used by "stamp notice edit".
# If empty, VISUAL then EDITOR are consulted.
# editor = ""

# exclude lists directory names that are always pruned from the scan.
exclude = [".git", "node_modules", "vendor"]
`, defaults.NoticePath, defaults.DefaultUI)

		if _, err := f.WriteString(defaultTomlContent); err != nil {
			return Config{}, fmt.Errorf("failed to write default config content to %s: %w", configFilePath, err)
		}

		return defaults, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file %s: %w", configFilePath, err)
	}

	var loadedConfig Config
	if _, err := toml.DecodeFile(configFilePath, &loadedConfig); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", configFilePath, err)
	}

	if loadedConfig.NoticePath == "" {
		loadedConfig.NoticePath = defaults.NoticePath
	}

	// Validate DefaultUI or fall back to the default
	if loadedConfig.DefaultUI != "terminal" && loadedConfig.DefaultUI != "fuzzy" {
		loadedConfig.DefaultUI = defaults.DefaultUI
	}

	return loadedConfig, nil
}
