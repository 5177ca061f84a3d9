package container

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Validate checks the subtree rooted at c against the structural
// invariants and returns the first violation, wrapping ErrInvariant:
//
//   - every child points back at the parent that lists it, and no node is
//     reachable twice;
//   - the focus order holds exactly the ids of the children;
//   - every split has at least two children;
//   - tiling sizes lie in (0, 1] and sum to one under any split or
//     workspace that has tiling children;
//   - each parent variant only holds children it accepts.
func Validate(c Container) error {
	seen := map[uuid.UUID]bool{}
	var walk func(Container) error
	walk = func(n Container) error {
		if seen[n.ID()] {
			return fmt.Errorf("%w: %s reachable twice", ErrInvariant, n)
		}
		seen[n.ID()] = true

		nb := n.base()
		if len(nb.focusOrder) != len(nb.children) {
			return fmt.Errorf("%w: %s has %d children but %d focus entries",
				ErrInvariant, n, len(nb.children), len(nb.focusOrder))
		}
		ids := make(map[uuid.UUID]bool, len(nb.children))
		for _, child := range nb.children {
			ids[child.ID()] = true
		}
		for _, id := range nb.focusOrder {
			if !ids[id] {
				return fmt.Errorf("%w: %s focus order has unknown id %s", ErrInvariant, n, shortID(id))
			}
			delete(ids, id)
		}
		if len(ids) != 0 {
			return fmt.Errorf("%w: %s focus order is missing children", ErrInvariant, n)
		}

		if s, ok := n.(*Split); ok && s.ChildCount() < 2 {
			return fmt.Errorf("%w: %s has %d children", ErrInvariant, n, s.ChildCount())
		}

		var sum float64
		tiles := TilingChildren(n)
		for _, tc := range tiles {
			size := tc.TilingSize()
			if size <= 0 || size > 1+Epsilon {
				return fmt.Errorf("%w: %s has tiling size %f", ErrInvariant, tc, size)
			}
			sum += size
		}
		if len(tiles) > 0 && math.Abs(sum-1) > Epsilon {
			return fmt.Errorf("%w: tiling sizes under %s sum to %f", ErrInvariant, n, sum)
		}

		for _, child := range nb.children {
			if child.Parent() != n {
				return fmt.Errorf("%w: %s does not point back at %s", ErrInvariant, child, n)
			}
			if err := accepts(n, child); err != nil {
				return fmt.Errorf("%w: %v", ErrInvariant, err)
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(c)
}
