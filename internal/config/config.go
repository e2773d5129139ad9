package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"

	"fileremover/internal/constants"
	apperrors "fileremover/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Window WindowConfig `json:"window"`
	Theme  ThemeConfig  `json:"theme"`
	Trash  TrashConfig  `json:"trash"`
	Safety SafetyConfig `json:"safety"`
}

// WindowConfig represents window-related settings
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark     bool   `json:"dark"`
	FontSize int    `json:"fontSize"`
	FontPath string `json:"fontPath"`
}

// TrashConfig selects how "move to trash" is carried out
type TrashConfig struct {
	Backend string   `json:"backend"` // "freedesktop", "command"
	Command []string `json:"command"` // helper argv for the command backend; the target path is appended
}

// SafetyConfig lists paths that must never be trashed or removed
type SafetyConfig struct {
	ProtectedPatterns []string `json:"protectedPatterns"` // Doublestar glob patterns matched against absolute paths
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// NewManagerWithPath creates a manager bound to an explicit config file
func NewManagerWithPath(path string) *Manager {
	return &Manager{configPath: path}
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	// Booleans cannot signal absence, so they start from the defaults
	fileConfig := Config{Theme: ThemeConfig{Dark: config.Theme.Dark}}
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, apperrors.NewConfigError("load", "error parsing config file", err)
	}

	mergeConfigs(config, &fileConfig)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks values that cannot be repaired by merging with defaults
func (c *Config) Validate() error {
	switch c.Trash.Backend {
	case constants.TrashBackendFreedesktop:
	case constants.TrashBackendCommand:
		if len(c.Trash.Command) == 0 {
			return apperrors.NewConfigError("validate", "trash backend \"command\" requires trash.command", nil)
		}
	default:
		return apperrors.NewConfigError("validate", fmt.Sprintf("unknown trash backend %q", c.Trash.Backend), nil)
	}

	for _, pattern := range c.Safety.ProtectedPatterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return apperrors.NewConfigError("validate", fmt.Sprintf("invalid protected pattern %q", pattern), nil)
		}
	}
	return nil
}

// IsProtected reports whether path matches one of the protected patterns
func (c *Config) IsProtected(path string) bool {
	clean := filepath.Clean(path)
	for _, pattern := range c.Safety.ProtectedPatterns {
		matched, err := doublestar.PathMatch(pattern, clean)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
			FontPath: "",
		},
		Trash: TrashConfig{
			Backend: constants.TrashBackendFreedesktop,
			Command: []string{"gio", "trash"},
		},
		Safety: SafetyConfig{
			ProtectedPatterns: defaultProtectedPatterns(),
		},
	}
}

// defaultProtectedPatterns guards the filesystem root and its direct children
func defaultProtectedPatterns() []string {
	if runtime.GOOS == "windows" {
		return []string{`?:\`, `?:\*`}
	}
	return []string{"/", "/*"}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\fileremover\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.ApplicationName)

	case "darwin":
		// macOS: ~/Library/Application Support/fileremover/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.json"
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.ApplicationName)

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/fileremover/config.json or ~/.config/fileremover/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.ApplicationName)
	}

	return filepath.Join(configDir, "config.json")
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}

	// Load pre-seeds bools with their defaults, so the file value always wins here
	defaultConfig.Theme.Dark = fileConfig.Theme.Dark
	if fileConfig.Theme.FontSize != 0 {
		defaultConfig.Theme.FontSize = fileConfig.Theme.FontSize
	}
	if fileConfig.Theme.FontPath != "" {
		defaultConfig.Theme.FontPath = fileConfig.Theme.FontPath
	}

	if fileConfig.Trash.Backend != "" {
		defaultConfig.Trash.Backend = fileConfig.Trash.Backend
	}
	if fileConfig.Trash.Command != nil {
		defaultConfig.Trash.Command = fileConfig.Trash.Command
	}

	// An explicit empty list disables protection; only a missing key keeps the defaults
	if fileConfig.Safety.ProtectedPatterns != nil {
		defaultConfig.Safety.ProtectedPatterns = fileConfig.Safety.ProtectedPatterns
	}
}
