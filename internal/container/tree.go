package container

import (
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
	"github.com/google/uuid"
)

// borrowAll takes the guard of every container or of none of them, so an
// edit either sees all its nodes exclusively or fails before mutating.
func borrowAll(cs ...Container) (func(), error) {
	releases := make([]func(), 0, len(cs))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, c := range cs {
		release, err := c.Borrow()
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

func indexOfChild(children []Container, id uuid.UUID) int {
	for i, c := range children {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

func indexOfID(ids []uuid.UUID, id uuid.UUID) int {
	for i, other := range ids {
		if other == id {
			return i
		}
	}
	return -1
}

// replaceAt returns s with s[i] replaced by all of with.
func replaceAt[T any](s []T, i int, with []T) []T {
	out := make([]T, 0, len(s)-1+len(with))
	out = append(out, s[:i]...)
	out = append(out, with...)
	return append(out, s[i+1:]...)
}

// Index returns c's position in its parent's children, or -1.
func Index(c Container) int {
	parent := c.Parent()
	if parent == nil {
		return -1
	}
	return indexOfChild(parent.base().children, c.ID())
}

// FocusIndex returns c's position in its parent's focus order, or -1.
func FocusIndex(c Container) int {
	parent := c.Parent()
	if parent == nil {
		return -1
	}
	return indexOfID(parent.base().focusOrder, c.ID())
}

// ChildByID returns the direct child with id.
func ChildByID(c Container, id uuid.UUID) Container {
	for _, child := range c.base().children {
		if child.ID() == id {
			return child
		}
	}
	return nil
}

// TilingChildren returns the children of c that hold a tiling size.
func TilingChildren(c Container) []TilingContainer {
	var out []TilingContainer
	for _, child := range c.base().children {
		if tc, ok := child.(TilingContainer); ok {
			out = append(out, tc)
		}
	}
	return out
}

// TilingSiblings returns the tiling children of c's parent other than c.
func TilingSiblings(c Container) []TilingContainer {
	parent := c.Parent()
	if parent == nil {
		return nil
	}
	var out []TilingContainer
	for _, tc := range TilingChildren(parent) {
		if tc.ID() != c.ID() {
			out = append(out, tc)
		}
	}
	return out
}

// Ancestors returns c's parent, grandparent and so on up to the root.
func Ancestors(c Container) []Container {
	var out []Container
	for p := c.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// RootOf returns the topmost ancestor of c, or c itself when detached.
func RootOf(c Container) Container {
	for c.Parent() != nil {
		c = c.Parent()
	}
	return c
}

// Descendants returns every container below c in depth-first pre-order.
func Descendants(c Container) []Container {
	var out []Container
	var walk func(Container)
	walk = func(n Container) {
		for _, child := range n.base().children {
			out = append(out, child)
			walk(child)
		}
	}
	walk(c)
	return out
}

// Find returns the container with id in c's subtree, including c.
func Find(c Container, id uuid.UUID) Container {
	if c.ID() == id {
		return c
	}
	for _, d := range Descendants(c) {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Windows returns the windows below c in layout order.
func Windows(c Container) []*Window {
	var out []*Window
	for _, d := range Descendants(c) {
		if w, ok := d.(*Window); ok {
			out = append(out, w)
		}
	}
	return out
}

// WorkspaceOf returns the workspace containing c, or nil.
func WorkspaceOf(c Container) *Workspace {
	if ws, ok := c.(*Workspace); ok {
		return ws
	}
	for _, a := range Ancestors(c) {
		if ws, ok := a.(*Workspace); ok {
			return ws
		}
	}
	return nil
}

// FocusedChild returns the child at the head of c's focus order.
func FocusedChild(c Container) Container {
	n := c.base()
	if len(n.focusOrder) == 0 {
		return nil
	}
	return ChildByID(c, n.focusOrder[0])
}

// FocusedDescendant follows focus-order heads from c down to a leaf. It
// returns c when c has no children.
func FocusedDescendant(c Container) Container {
	for {
		next := FocusedChild(c)
		if next == nil {
			return c
		}
		c = next
	}
}

// SetFocusedDescendant moves c to the head of its parent's focus order,
// then repeats for each ancestor, stopping once endAt's focus order has
// been updated. A nil endAt walks to the root.
func SetFocusedDescendant(c Container, endAt Container) error {
	target := c
	for {
		parent := target.Parent()
		if parent == nil {
			return nil
		}
		release, err := parent.Borrow()
		if err != nil {
			return err
		}
		pn := parent.base()
		if i := indexOfID(pn.focusOrder, target.ID()); i > 0 {
			id := pn.focusOrder[i]
			copy(pn.focusOrder[1:i+1], pn.focusOrder[:i])
			pn.focusOrder[0] = id
		}
		release()

		if endAt != nil && parent.ID() == endAt.ID() {
			return nil
		}
		target = parent
	}
}

// NeighborInDirection finds the tiling container next to c in direction d.
// It climbs from c until it reaches an ancestor laid out along d's axis
// that has a sibling on that side. The returned anchor is the ancestor of
// c (or c itself) whose sibling the neighbor is. Both are nil when c is at
// the edge of its workspace.
func NeighborInDirection(c Container, d direction.Direction) (neighbor TilingContainer, anchor Container) {
	want := OrientationOf(d)
	for x := c; x.Parent() != nil; x = x.Parent() {
		parent := x.Parent()
		dc, ok := parent.(DirectionContainer)
		if !ok {
			return nil, nil
		}
		if dc.Orientation() != want {
			continue
		}
		children := parent.base().children
		i := indexOfChild(children, x.ID())
		if d.IsForward() {
			i++
		} else {
			i--
		}
		if i < 0 || i >= len(children) {
			continue
		}
		if tc, ok := children[i].(TilingContainer); ok {
			return tc, x
		}
	}
	return nil, nil
}
