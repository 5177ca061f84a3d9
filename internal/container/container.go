// Package container implements the layout tree of the window manager: a
// root holding workspaces, workspaces holding tiling containers, and split
// containers dividing their share of space among window and split children.
//
// The package only decides what the tree looks like. Callers re-read the
// tree after an operation to place or paint windows.
package container

import (
	"fmt"
	"sync"

	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
	"github.com/Gaurav-Gosain/tuios-layout/internal/logging"
	"github.com/google/uuid"
)

var logger = logging.New("container")

// Epsilon is the tolerance used when checking that tiling sizes sum to one.
const Epsilon = 1e-6

// Kind tags the container variant.
type Kind int

const (
	KindRoot Kind = iota
	KindWorkspace
	KindSplit
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindWorkspace:
		return "workspace"
	case KindSplit:
		return "split"
	case KindWindow:
		return "window"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Orientation is the axis a split or workspace lays its children along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Inverse returns the other axis.
func (o Orientation) Inverse() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation accepts "horizontal" or "vertical".
func ParseOrientation(text string) (Orientation, error) {
	switch text {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("not a valid orientation: %q", text)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// OrientationOf returns the axis d moves along.
func OrientationOf(d direction.Direction) Orientation {
	if d.IsHorizontal() {
		return Horizontal
	}
	return Vertical
}

// Container is the tree-navigation capability shared by every variant.
// The set of implementations is closed: *Root, *Workspace, *Split and
// *Window.
type Container interface {
	ID() uuid.UUID
	Kind() Kind
	// Parent returns nil for the root and for detached containers.
	Parent() Container
	// Children returns a copy of the child list in layout order.
	Children() []Container
	// FocusOrder returns a copy of the child ids, most recently focused
	// first.
	FocusOrder() []uuid.UUID
	ChildCount() int
	// Borrow takes exclusive access to the node or fails with
	// ErrBorrowConflict. The returned func releases it.
	Borrow() (release func(), err error)
	String() string

	base() *node
}

// TilingContainer is a container that holds a share of its parent's space.
type TilingContainer interface {
	Container
	// TilingSize is the fraction of the parent's space along its axis.
	TilingSize() float64
	// SetTilingSize sets the fraction without touching siblings.
	SetTilingSize(size float64)
}

// DirectionContainer lays its children out along an orientation.
type DirectionContainer interface {
	Container
	Orientation() Orientation
	SetOrientation(o Orientation)
}

// node holds the state common to all variants. parent is a back-reference
// only; ownership runs through children.
type node struct {
	id         uuid.UUID
	kind       Kind
	guard      sync.Mutex
	parent     Container
	children   []Container
	focusOrder []uuid.UUID
}

func (n *node) init(kind Kind) {
	n.id = uuid.New()
	n.kind = kind
}

func (n *node) ID() uuid.UUID { return n.id }

func (n *node) Kind() Kind { return n.kind }

func (n *node) Parent() Container { return n.parent }

func (n *node) Children() []Container {
	out := make([]Container, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) FocusOrder() []uuid.UUID {
	out := make([]uuid.UUID, len(n.focusOrder))
	copy(out, n.focusOrder)
	return out
}

func (n *node) ChildCount() int { return len(n.children) }

func (n *node) Borrow() (func(), error) {
	if !n.guard.TryLock() {
		return nil, fmt.Errorf("%w: %s %s", ErrBorrowConflict, n.kind, shortID(n.id))
	}
	var once sync.Once
	return func() { once.Do(n.guard.Unlock) }, nil
}

func (n *node) base() *node { return n }

type tiling struct {
	size float64
}

func (t *tiling) TilingSize() float64 { return t.size }

func (t *tiling) SetTilingSize(size float64) { t.size = size }

type oriented struct {
	orientation Orientation
}

func (o *oriented) Orientation() Orientation { return o.orientation }

func (o *oriented) SetOrientation(orientation Orientation) { o.orientation = orientation }

// Root is the top of the tree. Its children are workspaces.
type Root struct {
	node
}

// NewRoot creates an empty root.
func NewRoot() *Root {
	r := &Root{}
	r.init(KindRoot)
	return r
}

func (r *Root) String() string {
	return "root"
}

// Workspace holds the tiling containers of one virtual desktop.
type Workspace struct {
	node
	oriented
	name string
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(name string, orientation Orientation) *Workspace {
	w := &Workspace{name: name}
	w.init(KindWorkspace)
	w.orientation = orientation
	return w
}

// Name returns the workspace name.
func (w *Workspace) Name() string { return w.name }

func (w *Workspace) String() string {
	return fmt.Sprintf("workspace %q %s", w.name, w.orientation)
}

// Split divides its share of space among two or more tiling children.
type Split struct {
	node
	tiling
	oriented
}

// NewSplit creates an empty, detached split with a tiling size of 1.
func NewSplit(orientation Orientation) *Split {
	s := &Split{}
	s.init(KindSplit)
	s.size = 1
	s.orientation = orientation
	return s
}

func (s *Split) String() string {
	return fmt.Sprintf("split %s %s %.3f", shortID(s.id), s.orientation, s.size)
}

// Window is a leaf representing one managed window.
type Window struct {
	node
	tiling
	title string
}

// NewWindow creates a detached window with a tiling size of 1.
func NewWindow(title string) *Window {
	w := &Window{title: title}
	w.init(KindWindow)
	w.size = 1
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

func (w *Window) String() string {
	return fmt.Sprintf("window %q %.3f", w.title, w.size)
}

// AsTiling returns c's tiling capability, if it has one.
func AsTiling(c Container) (TilingContainer, bool) {
	tc, ok := c.(TilingContainer)
	return tc, ok
}

// AsSplit returns c as a split, if it is one.
func AsSplit(c Container) (*Split, bool) {
	s, ok := c.(*Split)
	return s, ok
}

// AsDirection returns c's orientation capability, if it has one.
func AsDirection(c Container) (DirectionContainer, bool) {
	dc, ok := c.(DirectionContainer)
	return dc, ok
}

// accepts reports whether parent may hold child.
func accepts(parent, child Container) error {
	switch parent.(type) {
	case *Root:
		if _, ok := child.(*Workspace); ok {
			return nil
		}
	case *Workspace, *Split:
		if _, ok := child.(TilingContainer); ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s under %s", ErrInvalidChild, child.Kind(), parent.Kind())
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
