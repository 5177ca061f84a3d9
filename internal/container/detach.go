package container

import "fmt"

// Detach removes target from the tree and restores every structural
// invariant around the hole it leaves:
//
//   - a split left empty by the removal is flattened away first, so the
//     removal happens against the grandparent;
//   - target's tiling size is handed out in equal parts to the remaining
//     tiling siblings;
//   - splits made redundant by the removal collapse, walking upward until a
//     container that is not a single-child split is reached.
//
// On return target has no parent, no children and an empty focus order.
// Its former children are dropped with it.
func Detach(target Container) error {
	parent := target.Parent()
	if parent == nil {
		return fmt.Errorf("detach %s: %w", target, ErrNoParent)
	}

	if split, ok := parent.(*Split); ok && split.ChildCount() == 1 {
		grandparent := split.Parent()
		if grandparent == nil {
			return fmt.Errorf("detach %s: %w", target, ErrNoParent)
		}
		if err := Flatten(split); err != nil {
			return fmt.Errorf("detach %s: %w", target, err)
		}
		parent = grandparent
	}

	if err := unlink(parent, target); err != nil {
		return fmt.Errorf("detach %s: %w", target, err)
	}

	if tc, ok := target.(TilingContainer); ok {
		if err := resizeSiblings(parent, tc.TilingSize()); err != nil {
			return fmt.Errorf("detach %s: %w", target, err)
		}
	}

	if err := collapse(parent); err != nil {
		return fmt.Errorf("detach %s: %w", target, err)
	}
	return nil
}

// unlink drops target from parent and clears target's own links.
func unlink(parent, target Container) error {
	orphans := target.Children()
	nodes := append([]Container{parent, target}, orphans...)
	release, err := borrowAll(nodes...)
	if err != nil {
		return err
	}
	defer release()

	pn, tn := parent.base(), target.base()
	i := indexOfChild(pn.children, target.ID())
	fi := indexOfID(pn.focusOrder, target.ID())
	if i < 0 || fi < 0 {
		return fmt.Errorf("%w: %s missing from parent", ErrInvariant, target)
	}
	pn.children = replaceAt(pn.children, i, nil)
	pn.focusOrder = replaceAt(pn.focusOrder, fi, nil)

	for _, orphan := range orphans {
		orphan.base().parent = nil
	}
	tn.parent = nil
	tn.children = nil
	tn.focusOrder = nil
	return nil
}

// resizeSiblings hands freed space to parent's tiling children. Each gets
// the same absolute increment regardless of its current size.
func resizeSiblings(parent Container, freed float64) error {
	siblings := TilingChildren(parent)
	if len(siblings) == 0 {
		return nil
	}

	nodes := make([]Container, len(siblings))
	for i, s := range siblings {
		nodes[i] = s
	}
	release, err := borrowAll(nodes...)
	if err != nil {
		return err
	}
	defer release()

	increment := freed / float64(len(siblings))
	for _, s := range siblings {
		s.SetTilingSize(s.TilingSize() + increment)
	}
	return nil
}

// collapse removes the redundant splits a removal can leave behind,
// starting at p. A lone split child is spliced into p (chains such as
// H[V[H[w]]] fold one level per pass). If p is a split now oriented like
// its parent it is spliced too and the walk ends. Otherwise a p that is a
// split with one child is flattened and the walk continues at its parent. Each
// step removes a split, so the walk is bounded by the tree height.
func collapse(p Container) error {
	for p != nil {
		spliced := false
		for p.ChildCount() == 1 {
			lone, ok := p.base().children[0].(*Split)
			if !ok {
				break
			}
			if err := splice(lone); err != nil {
				return err
			}
			spliced = true
		}

		// A split that took on a lone child's orientation can end up
		// running the same way as its parent. Its children then belong
		// in the parent directly.
		if split, ok := p.(*Split); ok && spliced && split.ChildCount() > 1 {
			if dc, ok := split.Parent().(DirectionContainer); ok && dc.Orientation() == split.Orientation() {
				return splice(split)
			}
		}

		split, ok := p.(*Split)
		if !ok || split.ChildCount() != 1 {
			return nil
		}
		next := split.Parent()
		if next == nil {
			return nil
		}
		if err := Flatten(split); err != nil {
			return err
		}
		p = next
	}
	return nil
}
