package container

import "fmt"

// Swap exchanges the positions of two siblings in their parent's child
// list. Tiling sizes stay with the positions, so each container takes over
// the other's share of space. Focus order is not changed.
func Swap(a, b TilingContainer) error {
	parent := a.Parent()
	if parent == nil {
		return fmt.Errorf("swap %s: %w", a, ErrNoParent)
	}
	if b.Parent() != parent {
		return fmt.Errorf("swap %s: %w: %s is not a sibling", a, ErrInvalidChild, b)
	}
	if a.ID() == b.ID() {
		return nil
	}

	release, err := borrowAll(parent, a, b)
	if err != nil {
		return fmt.Errorf("swap %s: %w", a, err)
	}
	defer release()

	pn := parent.base()
	i := indexOfChild(pn.children, a.ID())
	j := indexOfChild(pn.children, b.ID())
	pn.children[i], pn.children[j] = pn.children[j], pn.children[i]

	sa, sb := a.TilingSize(), b.TilingSize()
	a.SetTilingSize(sb)
	b.SetTilingSize(sa)
	return nil
}
