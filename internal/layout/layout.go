// Package layout turns the tiling sizes of a workspace into cell
// rectangles on a monitor.
package layout

import (
	"fmt"
	"math"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
)

// Rect is an area of the monitor in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Area returns the number of cells r covers.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Inset shrinks r by n cells on every side, never below zero size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	out.Width = max(0, out.Width)
	out.Height = max(0, out.Height)
	return out
}

// Gaps are the empty cells kept around tiles. Outer is applied once
// around the monitor edge, Inner between neighbouring tiles.
type Gaps struct {
	Inner int
	Outer int
}

// Placement is the rectangle assigned to one window.
type Placement struct {
	Window *container.Window
	Rect   Rect
}

// Compute lays out every window of ws inside monitor. Placements are
// returned in tree order. Along each axis the last child absorbs the
// rounding remainder, so with no gaps the rectangles cover the monitor
// exactly.
func Compute(ws *container.Workspace, monitor Rect, gaps Gaps) []Placement {
	var out []Placement
	place(ws, monitor.Inset(gaps.Outer), gaps.Inner, &out)
	return out
}

func place(c container.Container, area Rect, inner int, out *[]Placement) {
	if w, ok := c.(*container.Window); ok {
		*out = append(*out, Placement{Window: w, Rect: area})
		return
	}

	dc, ok := container.AsDirection(c)
	if !ok {
		return
	}
	tiles := container.TilingChildren(c)
	if len(tiles) == 0 {
		return
	}

	horizontal := dc.Orientation() == container.Horizontal
	length := area.Height
	if horizontal {
		length = area.Width
	}
	available := max(0, length-inner*(len(tiles)-1))

	offset := 0
	used := 0
	for i, tc := range tiles {
		size := int(math.Floor(float64(available) * tc.TilingSize()))
		if i == len(tiles)-1 {
			size = available - used
		}
		size = max(0, min(size, available-used))

		r := area
		if horizontal {
			r.X += offset
			r.Width = size
		} else {
			r.Y += offset
			r.Height = size
		}
		place(tc, r, inner, out)

		used += size
		offset += size + inner
	}
}

// Find returns the rectangle placed for w.
func Find(placements []Placement, w *container.Window) (Rect, bool) {
	for _, p := range placements {
		if p.Window == w {
			return p.Rect, true
		}
	}
	return Rect{}, false
}
