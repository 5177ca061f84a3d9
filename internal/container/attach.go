package container

import "fmt"

// Attach inserts child into parent's children at index, clamped to the
// valid range, and appends it to the end of parent's focus order.
//
// A tiling child takes 1/(n+1) of the space, where n is the number of
// tiling siblings, and every sibling shrinks by the same factor so the
// sizes still sum to one.
func Attach(parent, child Container, index int) error {
	if child.Parent() != nil {
		return fmt.Errorf("attach %s: %w", child, ErrAlreadyAttached)
	}
	if err := accepts(parent, child); err != nil {
		return fmt.Errorf("attach %s: %w", child, err)
	}
	if parent.ID() == child.ID() || RootOf(parent).ID() == child.ID() {
		return fmt.Errorf("attach %s: %w: would create a cycle", child, ErrInvalidChild)
	}

	siblings := TilingChildren(parent)
	nodes := []Container{parent, child}
	for _, s := range siblings {
		nodes = append(nodes, s)
	}
	release, err := borrowAll(nodes...)
	if err != nil {
		return fmt.Errorf("attach %s: %w", child, err)
	}
	defer release()

	pn := parent.base()
	index = max(0, min(index, len(pn.children)))
	pn.children = append(pn.children, nil)
	copy(pn.children[index+1:], pn.children[index:])
	pn.children[index] = child
	pn.focusOrder = append(pn.focusOrder, child.ID())
	child.base().parent = parent

	if tc, ok := child.(TilingContainer); ok {
		share := 1 / float64(len(siblings)+1)
		for _, s := range siblings {
			s.SetTilingSize(s.TilingSize() * (1 - share))
		}
		tc.SetTilingSize(share)
	}
	return nil
}

// Replace puts replacement into old's slot in both the child list and the
// focus order. A tiling replacement inherits old's tiling size. old is left
// detached with its own children intact.
func Replace(old, replacement Container) error {
	parent := old.Parent()
	if parent == nil {
		return fmt.Errorf("replace %s: %w", old, ErrNoParent)
	}
	if replacement.Parent() != nil {
		return fmt.Errorf("replace %s: %w", old, ErrAlreadyAttached)
	}
	if err := accepts(parent, replacement); err != nil {
		return fmt.Errorf("replace %s: %w", old, err)
	}

	release, err := borrowAll(parent, old, replacement)
	if err != nil {
		return fmt.Errorf("replace %s: %w", old, err)
	}
	defer release()

	pn := parent.base()
	i := indexOfChild(pn.children, old.ID())
	fi := indexOfID(pn.focusOrder, old.ID())
	if i < 0 || fi < 0 {
		return fmt.Errorf("replace %s: %w: missing from parent", old, ErrInvariant)
	}
	pn.children[i] = replacement
	pn.focusOrder[fi] = replacement.ID()
	replacement.base().parent = parent
	old.base().parent = nil

	oldTiling, okOld := old.(TilingContainer)
	newTiling, okNew := replacement.(TilingContainer)
	if okOld && okNew {
		newTiling.SetTilingSize(oldTiling.TilingSize())
	}
	return nil
}

// Wrap replaces target with a new split of the given orientation holding
// target and sibling, each with half of the split. sibling goes after
// target when after is true. The split is never observable with a single
// child.
func Wrap(target TilingContainer, sibling TilingContainer, orientation Orientation, after bool) (*Split, error) {
	if sibling.Parent() != nil {
		return nil, fmt.Errorf("wrap %s: %w", sibling, ErrAlreadyAttached)
	}
	split := NewSplit(orientation)
	if err := Replace(target, split); err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	if err := Attach(split, target, 0); err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	index := 0
	if after {
		index = 1
	}
	if err := Attach(split, sibling, index); err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	logger.Debug("wrapped in split", "split", shortID(split.ID()), "orientation", orientation)
	return split, nil
}
