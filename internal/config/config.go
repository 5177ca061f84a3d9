// Package config loads the layout engine's TOML configuration from the XDG
// config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// AppName is the directory name used under the XDG config home.
const AppName = "tuios-layout"

// MaxWorkspaces bounds the number of configured workspaces.
const MaxWorkspaces = 9

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of config.toml.
type Config struct {
	Layout      LayoutConfig      `toml:"layout"`
	Workspaces  WorkspacesConfig  `toml:"workspaces"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Log         LogConfig         `toml:"log"`
}

// LayoutConfig controls how new windows are placed and sized.
type LayoutConfig struct {
	DefaultOrientation container.Orientation `toml:"default_orientation"`
	NewWindowDirection direction.Direction  `toml:"new_window_direction"`
	MinTilingSize      float64              `toml:"min_tiling_size"`
	InnerGap           int                  `toml:"inner_gap"`
	OuterGap           int                  `toml:"outer_gap"`
	// Strict validates the whole tree after every command.
	Strict bool `toml:"strict"`
}

// WorkspacesConfig names the workspaces, in order.
type WorkspacesConfig struct {
	Names []string `toml:"names"`
}

// KeybindingsConfig maps player actions to keys.
type KeybindingsConfig struct {
	Player map[string][]string `toml:"player"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			DefaultOrientation: container.Horizontal,
			NewWindowDirection: direction.Right,
			MinTilingSize:      container.DefaultMinTilingSize,
			InnerGap:           0,
			OuterGap:           0,
			Strict:             true,
		},
		Workspaces: WorkspacesConfig{
			Names: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		},
		Keybindings: KeybindingsConfig{
			Player: defaultPlayerKeys(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetConfigPath returns the path of the user's config.toml, creating the
// parent directory if needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, "config.toml"))
}

// Load reads the config at path. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Keybindings.Player = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Keybindings.Player = withDefaultKeys(cfg.Keybindings.Player)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withDefaultKeys fills in the default keys of every action user leaves
// out. A default key already bound by the user is skipped so the user's
// binding keeps it.
func withDefaultKeys(user map[string][]string) map[string][]string {
	claimed := map[string]bool{}
	for _, keys := range user {
		for _, key := range keys {
			claimed[normalizeKey(key)] = true
		}
	}

	merged := make(map[string][]string, len(ActionDescriptions))
	for action, keys := range user {
		merged[action] = keys
	}
	for action, keys := range defaultPlayerKeys() {
		if _, ok := user[action]; ok {
			continue
		}
		var free []string
		for _, key := range keys {
			if !claimed[normalizeKey(key)] {
				free = append(free, key)
			}
		}
		merged[action] = free
	}
	return merged
}

// LoadUserConfig loads the user's config file, writing the defaults there
// first if it does not exist yet.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

// Save writes cfg to path with a short header.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders cfg as the TOML written by Save.
func Marshal(cfg *Config, path string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# tuios-layout configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)
	return []byte(sb.String()), nil
}

// Validate reports the first problem with cfg, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Layout.MinTilingSize <= 0 || c.Layout.MinTilingSize >= 0.5 {
		return fmt.Errorf("%w: layout.min_tiling_size must be in (0, 0.5), got %v", ErrInvalidConfig, c.Layout.MinTilingSize)
	}
	if c.Layout.InnerGap < 0 || c.Layout.OuterGap < 0 {
		return fmt.Errorf("%w: gaps must not be negative", ErrInvalidConfig)
	}

	names := c.Workspaces.Names
	if len(names) == 0 || len(names) > MaxWorkspaces {
		return fmt.Errorf("%w: workspaces.names needs 1 to %d entries, got %d", ErrInvalidConfig, MaxWorkspaces, len(names))
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: workspace %d has an empty name", ErrInvalidConfig, i+1)
		}
		if slices.Index(names, name) != i {
			return fmt.Errorf("%w: duplicate workspace name %q", ErrInvalidConfig, name)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}

	for action, keys := range c.Keybindings.Player {
		if _, ok := ActionDescriptions[action]; !ok {
			return fmt.Errorf("%w: unknown player action %q", ErrInvalidConfig, action)
		}
		for _, key := range keys {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("%w: empty key bound to %q", ErrInvalidConfig, action)
			}
		}
	}
	return nil
}
