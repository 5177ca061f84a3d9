package container

import "fmt"

// Flatten removes a split that has exactly one child, putting the child in
// the split's slot in both the parent's child list and focus order. The
// child inherits the split's share of space, so the layout does not change.
//
// A split with zero or several children is left alone and Flatten returns
// nil; running it over an already normalized tree is a no-op.
func Flatten(split *Split) error {
	if split.ChildCount() != 1 {
		return nil
	}
	if split.Parent() == nil {
		return fmt.Errorf("flatten %s: %w", split, ErrNoParent)
	}
	if err := splice(split); err != nil {
		return fmt.Errorf("flatten %s: %w", split, err)
	}
	return nil
}

// FlattenRedundant flattens every single-child split below c, deepest
// first, and returns how many were removed.
func FlattenRedundant(c Container) (int, error) {
	var redundant []*Split
	var walk func(Container)
	walk = func(n Container) {
		for _, child := range n.base().children {
			walk(child)
		}
		if s, ok := n.(*Split); ok && s.ChildCount() == 1 && s.Parent() != nil {
			redundant = append(redundant, s)
		}
	}
	walk(c)

	for i, s := range redundant {
		if err := Flatten(s); err != nil {
			return i, err
		}
	}
	return len(redundant), nil
}

// splice replaces split in its parent with all of split's children, in
// order. Children keep their proportions within the split's share. When
// the split was the parent's only child and held several children, a
// parent with an orientation adopts the split's so the arrangement on
// screen is unchanged.
func splice(split *Split) error {
	parent := split.Parent()
	if parent == nil {
		return ErrNoParent
	}
	children := split.Children()

	nodes := append([]Container{parent, split}, children...)
	release, err := borrowAll(nodes...)
	if err != nil {
		return err
	}
	defer release()

	pn, sn := parent.base(), split.base()
	i := indexOfChild(pn.children, split.ID())
	fi := indexOfID(pn.focusOrder, split.ID())
	if i < 0 || fi < 0 {
		return fmt.Errorf("%w: %s missing from parent", ErrInvariant, split)
	}

	share := split.TilingSize()
	for _, child := range children {
		child.base().parent = parent
		if tc, ok := child.(TilingContainer); ok {
			tc.SetTilingSize(tc.TilingSize() * share)
		}
	}

	soleChild := len(pn.children) == 1
	pn.children = replaceAt(pn.children, i, children)
	pn.focusOrder = replaceAt(pn.focusOrder, fi, sn.focusOrder)
	if dc, ok := parent.(DirectionContainer); ok && soleChild && len(children) > 1 {
		dc.SetOrientation(split.Orientation())
	}

	sn.parent = nil
	sn.children = nil
	sn.focusOrder = nil

	logger.Debug("spliced split", "split", shortID(split.ID()), "into", parent.String(), "children", len(children))
	return nil
}
