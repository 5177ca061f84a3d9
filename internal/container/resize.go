package container

import "fmt"

// DefaultMinTilingSize is the smallest share Resize leaves any container.
const DefaultMinTilingSize = 0.05

// Resize grows c by delta (or shrinks it for a negative delta) and takes
// the difference from, or gives it to, c's tiling siblings.
//
// Growing takes space from siblings in proportion to how far each is above
// minSize; shrinking hands space out in proportion to sibling size. delta is
// clamped so nothing ends up below minSize. A container without tiling
// siblings always fills its parent and is left unchanged.
func Resize(c TilingContainer, delta, minSize float64) error {
	if c.Parent() == nil {
		return fmt.Errorf("resize %s: %w", c, ErrNoParent)
	}
	siblings := TilingSiblings(c)
	if len(siblings) == 0 || delta == 0 {
		return nil
	}

	var slack, total float64
	for _, s := range siblings {
		slack += max(0, s.TilingSize()-minSize)
		total += s.TilingSize()
	}
	if delta > 0 {
		delta = min(delta, slack)
	} else {
		delta = min(0, max(delta, minSize-c.TilingSize()))
	}
	if delta == 0 || (delta < 0 && total == 0) {
		return nil
	}

	nodes := []Container{c}
	for _, s := range siblings {
		nodes = append(nodes, s)
	}
	release, err := borrowAll(nodes...)
	if err != nil {
		return fmt.Errorf("resize %s: %w", c, err)
	}
	defer release()

	for _, s := range siblings {
		size := s.TilingSize()
		if delta > 0 {
			s.SetTilingSize(size - delta*max(0, size-minSize)/slack)
		} else {
			s.SetTilingSize(size - delta*size/total)
		}
	}
	c.SetTilingSize(c.TilingSize() + delta)

	logger.Debug("resized", "container", c.String(), "delta", delta)
	return nil
}
