package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the reference CLI/TUI/API's user-facing settings. It
// has no effect on the disasm package itself, which has no configuration
// surface of its own.
type Config struct {
	// Disassembly settings
	Disasm struct {
		ContextLines int    `toml:"context_lines"`
		NumberFormat string `toml:"number_format"` // hex, dec, both
		ShowRawWord  bool   `toml:"show_raw_word"`
	} `toml:"disasm"`

	// Display settings
	Display struct {
		ColorOutput  bool `toml:"color_output"`
		BytesPerLine int  `toml:"bytes_per_line"`
	} `toml:"display"`

	// Browser (TUI) settings
	Browser struct {
		HistorySize   int  `toml:"history_size"`
		ShowAddress   bool `toml:"show_address"`
		FollowLiteral bool `toml:"follow_literal"`
	} `toml:"browser"`

	// API server settings
	API struct {
		Port        int    `toml:"port"`
		BindAddress string `toml:"bind_address"`
		EnableCORS  bool   `toml:"enable_cors"`
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Disasm.ContextLines = 5
	cfg.Disasm.NumberFormat = "hex"
	cfg.Disasm.ShowRawWord = true

	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16

	cfg.Browser.HistorySize = 1000
	cfg.Browser.ShowAddress = true
	cfg.Browser.FollowLiteral = true

	cfg.API.Port = 8089
	cfg.API.BindAddress = "127.0.0.1"
	cfg.API.EnableCORS = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\aarch64dis\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "aarch64dis")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/aarch64dis/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "aarch64dis")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "aarch64dis", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "aarch64dis", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: it yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
