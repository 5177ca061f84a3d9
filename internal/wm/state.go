// Package wm applies window-management commands to a container tree.
//
// State owns one root with a fixed set of workspaces and tracks which
// workspace is shown. Every command is expressed through the container
// package's edits, so the tree invariants hold after each one.
package wm

import (
	"errors"
	"fmt"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
	"github.com/Gaurav-Gosain/tuios-layout/internal/logging"
)

var logger = logging.New("wm")

var (
	// ErrNoFocusedWindow is returned by commands that act on the focused
	// window when the current workspace is empty.
	ErrNoFocusedWindow = errors.New("no focused window")

	// ErrNoWorkspace is returned for a workspace number out of range.
	ErrNoWorkspace = errors.New("no such workspace")
)

// Options configures a new State.
type Options struct {
	Workspaces         []string
	DefaultOrientation container.Orientation
	NewWindowDirection direction.Direction
	MinTilingSize      float64
	Strict             bool
}

// OptionsFromConfig reads Options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Workspaces:         cfg.Workspaces.Names,
		DefaultOrientation: cfg.Layout.DefaultOrientation,
		NewWindowDirection: cfg.Layout.NewWindowDirection,
		MinTilingSize:      cfg.Layout.MinTilingSize,
		Strict:             cfg.Layout.Strict,
	}
}

// State is the window manager's view of the tree.
type State struct {
	root       *container.Root
	workspaces []*container.Workspace
	current    int
	pending    *container.Orientation
	opts       Options
}

// New creates a root holding one empty workspace per configured name and
// shows the first.
func New(opts Options) (*State, error) {
	if len(opts.Workspaces) == 0 {
		return nil, fmt.Errorf("%w: at least one workspace is required", ErrNoWorkspace)
	}
	if opts.MinTilingSize <= 0 {
		opts.MinTilingSize = container.DefaultMinTilingSize
	}

	s := &State{root: container.NewRoot(), opts: opts}
	for i, name := range opts.Workspaces {
		ws := container.NewWorkspace(name, opts.DefaultOrientation)
		if err := container.Attach(s.root, ws, i); err != nil {
			return nil, fmt.Errorf("failed to create workspace %q: %w", name, err)
		}
		s.workspaces = append(s.workspaces, ws)
	}
	return s, nil
}

// Root returns the tree root.
func (s *State) Root() *container.Root { return s.root }

// Workspaces returns the workspaces in order.
func (s *State) Workspaces() []*container.Workspace {
	out := make([]*container.Workspace, len(s.workspaces))
	copy(out, s.workspaces)
	return out
}

// CurrentWorkspace returns the workspace being shown.
func (s *State) CurrentWorkspace() *container.Workspace {
	return s.workspaces[s.current]
}

// CurrentIndex returns the 1-based number of the shown workspace.
func (s *State) CurrentIndex() int { return s.current + 1 }

// Pending returns the orientation armed by SetSplit, if any.
func (s *State) Pending() (container.Orientation, bool) {
	if s.pending == nil {
		return 0, false
	}
	return *s.pending, true
}

// FocusedWindow returns the focused window of the current workspace, or
// nil when it is empty.
func (s *State) FocusedWindow() *container.Window {
	w, _ := container.FocusedDescendant(s.CurrentWorkspace()).(*container.Window)
	return w
}

// Windows returns every window of the current workspace in layout order.
func (s *State) Windows() []*container.Window {
	return container.Windows(s.CurrentWorkspace())
}

// check validates the whole tree in strict mode.
func (s *State) check(op string) error {
	if !s.opts.Strict {
		return nil
	}
	if err := container.Validate(s.root); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *State) workspace(n int) (*container.Workspace, error) {
	if n < 1 || n > len(s.workspaces) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrNoWorkspace, n, len(s.workspaces))
	}
	return s.workspaces[n-1], nil
}
