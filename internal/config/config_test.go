package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Layout.MinTilingSize != container.DefaultMinTilingSize {
		t.Errorf("Expected min tiling size %v, got %v", container.DefaultMinTilingSize, cfg.Layout.MinTilingSize)
	}
	if len(cfg.Workspaces.Names) != config.MaxWorkspaces {
		t.Errorf("Expected %d workspaces, got %d", config.MaxWorkspaces, len(cfg.Workspaces.Names))
	}
}

// =============================================================================
// Parse and Round Trip Tests
// =============================================================================

func TestParse_OverridesDefaults(t *testing.T) {
	data := `
[layout]
default_orientation = "vertical"
new_window_direction = "down"
outer_gap = 2

[workspaces]
names = ["web", "code"]

[keybindings.player]
quit = ["x"]
`
	cfg, err := config.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Layout.DefaultOrientation != container.Vertical {
		t.Errorf("Expected vertical orientation, got %s", cfg.Layout.DefaultOrientation)
	}
	if cfg.Layout.NewWindowDirection != direction.Down {
		t.Errorf("Expected down, got %s", cfg.Layout.NewWindowDirection)
	}
	if cfg.Layout.OuterGap != 2 {
		t.Errorf("Expected outer gap 2, got %d", cfg.Layout.OuterGap)
	}
	if cfg.Layout.MinTilingSize != container.DefaultMinTilingSize {
		t.Error("Missing keys should keep their defaults")
	}
	if got := strings.Join(cfg.Workspaces.Names, ","); got != "web,code" {
		t.Errorf("Expected workspaces web,code, got %s", got)
	}

	registry := config.NewKeybindRegistry(cfg)
	if registry.GetAction("x") != config.ActionQuit {
		t.Error("Expected x to quit")
	}
	if registry.GetAction("n") != config.ActionStep {
		t.Error("Unspecified actions should keep default keys")
	}
}

func TestParse_UserKeysWinOverDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("[keybindings.player]\nstep = [\"Q\", \"q\"]\nquit = [\"x\"]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	registry := config.NewKeybindRegistry(cfg)

	tests := []struct {
		key  string
		want string
	}{
		{"x", config.ActionQuit},
		{"q", config.ActionStep},
		{"Q", config.ActionStep},
		{"h", config.ActionFocusLeft},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := registry.GetAction(tt.key); got != tt.want {
				t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if keys := registry.GetKeys(config.ActionCloseWindow); len(keys) != 0 {
		t.Errorf("Expected close_window to lose x, got %v", keys)
	}
	if keys := registry.GetKeys(config.ActionQuit); len(keys) != 1 || keys[0] != "x" {
		t.Errorf("Expected quit bound to x only, got %v", keys)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad direction", "[layout]\nnew_window_direction = \"Left\"\n"},
		{"bad orientation", "[layout]\ndefault_orientation = \"diagonal\"\n"},
		{"min size too large", "[layout]\nmin_tiling_size = 0.6\n"},
		{"negative gap", "[layout]\ninner_gap = -1\n"},
		{"no workspaces", "[workspaces]\nnames = []\n"},
		{"duplicate workspace", "[workspaces]\nnames = [\"a\", \"a\"]\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
		{"unknown action", "[keybindings.player]\nfly = [\"f\"]\n"},
		{"not toml", "layout = ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Parse([]byte(tt.data)); err == nil {
				t.Errorf("Expected error for %q", tt.data)
			}
		})
	}
}

func TestParse_ValidationErrorIsTyped(t *testing.T) {
	_, err := config.Parse([]byte("[layout]\nouter_gap = -3\n"))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := config.DefaultConfig()
	cfg.Layout.DefaultOrientation = container.Vertical
	cfg.Layout.NewWindowDirection = direction.Up
	cfg.Layout.InnerGap = 1
	cfg.Workspaces.Names = []string{"main", "chat"}
	cfg.Log.Level = "debug"

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Layout != cfg.Layout {
		t.Errorf("layout = %+v, want %+v", loaded.Layout, cfg.Layout)
	}
	if strings.Join(loaded.Workspaces.Names, ",") != "main,chat" {
		t.Errorf("workspaces = %v", loaded.Workspaces.Names)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("log level = %q", loaded.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected os.ErrNotExist, got %v", err)
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys(config.ActionStep)
	if len(keys) == 0 {
		t.Fatal("Expected step to have keys")
	}
	if action := registry.GetAction(keys[0]); action != config.ActionStep {
		t.Errorf("Expected action %q, got %q", config.ActionStep, action)
	}
	if action := registry.GetAction("CTRL+C"); action != config.ActionQuit {
		t.Errorf("Expected key lookup to ignore case, got %q", action)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if action := registry.GetAction("ctrl+shift+alt+super+hyper+x"); action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
	if keys := registry.GetKeys("nonexistent_action"); len(keys) != 0 {
		t.Errorf("Expected no keys for unknown action, got %v", keys)
	}
}

func TestKeybindRegistry_Bindings(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	bindings := registry.Bindings()
	if len(bindings) != len(config.ActionDescriptions) {
		t.Fatalf("Expected %d bindings, got %d", len(config.ActionDescriptions), len(bindings))
	}
	if bindings[0].Description != config.ActionDescriptions[config.ActionStep] {
		t.Errorf("Expected step first, got %q", bindings[0].Description)
	}
}

// =============================================================================
// Watch Tests
// =============================================================================

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := config.Save(config.DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, func(cfg *config.Config, err error) {
			if err == nil {
				reloaded <- cfg
			}
		})
	}()

	// Keep rewriting until the watcher has registered and reports a change.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case cfg := <-reloaded:
			// A reload can observe the file mid-write.
			if cfg.Layout.OuterGap != 3 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-ticker.C:
			if err := os.WriteFile(path, []byte("[layout]\nouter_gap = 3\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestKeybindRegistry_CaseSensitiveCharacters(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if got := registry.GetAction("h"); got != config.ActionFocusLeft {
		t.Errorf("h = %q, want %q", got, config.ActionFocusLeft)
	}
	if got := registry.GetAction("H"); got != config.ActionMoveLeft {
		t.Errorf("H = %q, want %q", got, config.ActionMoveLeft)
	}
	if got := registry.GetAction(" "); got != config.ActionStep {
		t.Errorf("space = %q, want %q", got, config.ActionStep)
	}
}
