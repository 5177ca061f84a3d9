package config

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Player actions.
const (
	ActionStep       = "step"
	ActionBack       = "back"
	ActionRunAll     = "run_all"
	ActionReset      = "reset"
	ActionToggleHelp = "toggle_help"
	ActionQuit       = "quit"
)

// Interactive actions. Each one applies a window-management command to the
// tree and is recorded like a script line.
const (
	ActionOpenWindow      = "open_window"
	ActionCloseWindow     = "close_window"
	ActionFocusLeft       = "focus_left"
	ActionFocusRight      = "focus_right"
	ActionFocusUp         = "focus_up"
	ActionFocusDown       = "focus_down"
	ActionMoveLeft        = "move_left"
	ActionMoveRight       = "move_right"
	ActionMoveUp          = "move_up"
	ActionMoveDown        = "move_down"
	ActionSplitHorizontal = "split_horizontal"
	ActionSplitVertical   = "split_vertical"
	ActionGrow            = "grow"
	ActionShrink          = "shrink"
)

// ActionDescriptions lists every bindable player action.
var ActionDescriptions = map[string]string{
	ActionStep:            "Apply next command",
	ActionBack:            "Undo last command",
	ActionRunAll:          "Apply remaining commands",
	ActionReset:           "Restart from an empty tree",
	ActionToggleHelp:      "Toggle help",
	ActionQuit:            "Quit",
	ActionOpenWindow:      "Open window",
	ActionCloseWindow:     "Close focused window",
	ActionFocusLeft:       "Focus left",
	ActionFocusRight:      "Focus right",
	ActionFocusUp:         "Focus up",
	ActionFocusDown:       "Focus down",
	ActionMoveLeft:        "Move window left",
	ActionMoveRight:       "Move window right",
	ActionMoveUp:          "Move window up",
	ActionMoveDown:        "Move window down",
	ActionSplitHorizontal: "Split horizontally",
	ActionSplitVertical:   "Split vertically",
	ActionGrow:            "Grow focused window",
	ActionShrink:          "Shrink focused window",
}

// actionOrder is the display order of the help overlay.
var actionOrder = []string{
	ActionStep,
	ActionBack,
	ActionRunAll,
	ActionReset,
	ActionOpenWindow,
	ActionCloseWindow,
	ActionFocusLeft,
	ActionFocusRight,
	ActionFocusUp,
	ActionFocusDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionMoveUp,
	ActionMoveDown,
	ActionSplitHorizontal,
	ActionSplitVertical,
	ActionGrow,
	ActionShrink,
	ActionToggleHelp,
	ActionQuit,
}

func defaultPlayerKeys() map[string][]string {
	return map[string][]string{
		ActionStep:            {"n", "space", "right"},
		ActionBack:            {"p", "left"},
		ActionRunAll:          {"enter"},
		ActionReset:           {"r"},
		ActionOpenWindow:      {"o"},
		ActionCloseWindow:     {"x"},
		ActionFocusLeft:       {"h"},
		ActionFocusRight:      {"l"},
		ActionFocusUp:         {"k"},
		ActionFocusDown:       {"j"},
		ActionMoveLeft:        {"H"},
		ActionMoveRight:       {"L"},
		ActionMoveUp:          {"K"},
		ActionMoveDown:        {"J"},
		ActionSplitHorizontal: {"|"},
		ActionSplitVertical:   {"-"},
		ActionGrow:            {"+", "="},
		ActionShrink:          {"_"},
		ActionToggleHelp:      {"?"},
		ActionQuit:            {"q", "ctrl+c"},
	}
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindRegistry resolves keys to player actions and back.
type KeybindRegistry struct {
	keys    map[string][]string
	actions map[string]string
}

// NewKeybindRegistry indexes the player bindings of cfg. When two actions
// claim the same key the first in display order wins.
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	r := &KeybindRegistry{
		keys:    map[string][]string{},
		actions: map[string]string{},
	}
	for _, action := range actionOrder {
		for _, key := range cfg.Keybindings.Player[action] {
			key = normalizeKey(key)
			r.keys[action] = append(r.keys[action], key)
			if _, taken := r.actions[key]; !taken {
				r.actions[key] = action
			}
		}
	}
	return r
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return slices.Clone(r.keys[action])
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.actions[normalizeKey(key)]
}

// GetKeysForDisplay joins the keys of action for the help overlay.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.keys[action], ", ")
}

// Bindings returns every bound action in display order.
func (r *KeybindRegistry) Bindings() []Keybinding {
	var out []Keybinding
	for _, action := range actionOrder {
		if keys := r.GetKeysForDisplay(action); keys != "" {
			out = append(out, Keybinding{Key: keys, Description: ActionDescriptions[action]})
		}
	}
	return out
}

// normalizeKey lowercases named keys such as "Ctrl+C" or "Enter". Single
// characters keep their case so "h" and "H" stay distinct.
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	key = strings.TrimSpace(key)
	if utf8.RuneCountInString(key) > 1 {
		key = strings.ToLower(key)
	}
	switch key {
	case "return":
		return "enter"
	case "escape":
		return "esc"
	}
	return key
}
