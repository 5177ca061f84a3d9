package wm

import (
	"fmt"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
)

// OpenWindow creates a window next to the focused one and focuses it.
//
// The new window goes after the focused window when the configured
// new-window direction points forward (right or down) and before it
// otherwise. With a pending split the two are wrapped in a new split of
// that orientation instead.
func (s *State) OpenWindow(title string) (*container.Window, error) {
	ws := s.CurrentWorkspace()
	w := container.NewWindow(title)
	after := s.opts.NewWindowDirection.IsForward()

	focused := s.FocusedWindow()
	switch {
	case focused == nil:
		if err := container.Attach(ws, w, ws.ChildCount()); err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}

	case s.pending != nil:
		if _, err := container.Wrap(focused, w, *s.pending, after); err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
		s.pending = nil

	default:
		index := container.Index(focused)
		if after {
			index++
		}
		if err := container.Attach(focused.Parent(), w, index); err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
	}

	if err := container.SetFocusedDescendant(w, nil); err != nil {
		return nil, fmt.Errorf("open window: %w", err)
	}
	logger.Debug("opened window", "title", title, "workspace", ws.Name())
	return w, s.check("open window")
}

// CloseWindow removes the focused window. Focus falls back to the window
// focused before it.
func (s *State) CloseWindow() error {
	focused := s.FocusedWindow()
	if focused == nil {
		return fmt.Errorf("close window: %w", ErrNoFocusedWindow)
	}
	if err := container.Detach(focused); err != nil {
		return fmt.Errorf("close window: %w", err)
	}
	s.pending = nil
	logger.Debug("closed window", "title", focused.Title())
	return s.check("close window")
}

// Focus moves focus to the nearest container in direction d. Nothing
// happens at the edge of the workspace.
func (s *State) Focus(d direction.Direction) error {
	focused := s.FocusedWindow()
	if focused == nil {
		return fmt.Errorf("focus %s: %w", d, ErrNoFocusedWindow)
	}
	neighbor, _ := container.NeighborInDirection(focused, d)
	if neighbor == nil {
		return nil
	}
	if err := container.SetFocusedDescendant(container.FocusedDescendant(neighbor), nil); err != nil {
		return fmt.Errorf("focus %s: %w", d, err)
	}
	return nil
}

// Move moves the focused window one step in direction d.
//
// A neighbouring window is swapped with. A neighbouring split is entered
// at its near edge. When the window is at the edge of its split it leaves
// the split and lands beside it in the first ancestor laid out along d.
func (s *State) Move(d direction.Direction) error {
	focused := s.FocusedWindow()
	if focused == nil {
		return fmt.Errorf("move %s: %w", d, ErrNoFocusedWindow)
	}
	neighbor, anchor := container.NeighborInDirection(focused, d)
	if neighbor == nil {
		return nil
	}

	var err error
	switch {
	case anchor.ID() != focused.ID():
		err = s.moveOut(focused, neighbor, d)
	case neighbor.Kind() == container.KindSplit:
		err = s.moveInto(focused, neighbor.(*container.Split), d)
	default:
		err = container.Swap(focused, neighbor)
	}
	if err != nil {
		return fmt.Errorf("move %s: %w", d, err)
	}

	if err := container.SetFocusedDescendant(focused, nil); err != nil {
		return fmt.Errorf("move %s: %w", d, err)
	}
	return s.check("move " + d.String())
}

// moveInto puts w into split at the edge facing w.
func (s *State) moveInto(w *container.Window, split *container.Split, d direction.Direction) error {
	// Removing w can splice the split away, so w is placed relative to the
	// split's child on the near edge, which stays in the tree either way.
	children := split.Children()
	edge := children[len(children)-1]
	if d.IsForward() {
		edge = children[0]
	}

	if err := container.Detach(w); err != nil {
		return err
	}
	index := container.Index(edge)
	if !d.IsForward() {
		index++
	}
	return container.Attach(edge.Parent(), w, index)
}

// moveOut puts w beside neighbor, on the side w came from.
func (s *State) moveOut(w *container.Window, neighbor container.TilingContainer, d direction.Direction) error {
	if err := container.Detach(w); err != nil {
		return err
	}
	parent := neighbor.Parent()
	index := container.Index(neighbor)
	if !d.IsForward() {
		index++
	}
	return container.Attach(parent, w, index)
}

// SetSplit chooses the orientation of the next opened window. A window
// alone in its workspace turns the workspace itself instead.
func (s *State) SetSplit(o container.Orientation) error {
	focused := s.FocusedWindow()
	if focused == nil {
		ws := s.CurrentWorkspace()
		ws.SetOrientation(o)
		return nil
	}

	parent := focused.Parent()
	if parent.ChildCount() == 1 {
		if dc, ok := container.AsDirection(parent); ok {
			dc.SetOrientation(o)
			s.pending = nil
			return nil
		}
	}
	if dc, ok := container.AsDirection(parent); ok && dc.Orientation() == o {
		s.pending = nil
		return nil
	}
	s.pending = &o
	return nil
}

// Resize grows the focused window by delta, shrinking its siblings.
func (s *State) Resize(delta float64) error {
	focused := s.FocusedWindow()
	if focused == nil {
		return fmt.Errorf("resize: %w", ErrNoFocusedWindow)
	}
	if err := container.Resize(focused, delta, s.opts.MinTilingSize); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	return s.check("resize")
}

// SwitchWorkspace shows workspace n (1-based).
func (s *State) SwitchWorkspace(n int) error {
	ws, err := s.workspace(n)
	if err != nil {
		return fmt.Errorf("switch workspace: %w", err)
	}
	if err := container.SetFocusedDescendant(ws, nil); err != nil {
		return fmt.Errorf("switch workspace: %w", err)
	}
	s.current = n - 1
	s.pending = nil
	return nil
}

// MoveToWorkspace sends the focused window to workspace n, where it
// becomes the focused window. The current workspace does not change.
func (s *State) MoveToWorkspace(n int) error {
	ws, err := s.workspace(n)
	if err != nil {
		return fmt.Errorf("move to workspace: %w", err)
	}
	focused := s.FocusedWindow()
	if focused == nil {
		return fmt.Errorf("move to workspace: %w", ErrNoFocusedWindow)
	}
	if ws == s.CurrentWorkspace() {
		return nil
	}

	if err := container.Detach(focused); err != nil {
		return fmt.Errorf("move to workspace: %w", err)
	}
	if err := container.Attach(ws, focused, ws.ChildCount()); err != nil {
		return fmt.Errorf("move to workspace: %w", err)
	}
	if err := container.SetFocusedDescendant(focused, ws); err != nil {
		return fmt.Errorf("move to workspace: %w", err)
	}
	s.pending = nil
	logger.Debug("moved window", "title", focused.Title(), "workspace", ws.Name())
	return s.check("move to workspace")
}
