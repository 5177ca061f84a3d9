package layout_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/layout"
)

func workspace(t testing.TB, o container.Orientation, windows ...container.Container) *container.Workspace {
	t.Helper()
	root := container.NewRoot()
	ws := container.NewWorkspace("1", o)
	if err := container.Attach(root, ws, 0); err != nil {
		t.Fatal(err)
	}
	for i, w := range windows {
		if err := container.Attach(ws, w, i); err != nil {
			t.Fatal(err)
		}
	}
	return ws
}

func TestCompute(t *testing.T) {
	monitor := layout.Rect{Width: 101, Height: 40}

	t.Run("single window fills monitor", func(t *testing.T) {
		a := container.NewWindow("a")
		ws := workspace(t, container.Horizontal, a)
		got := layout.Compute(ws, monitor, layout.Gaps{})
		if len(got) != 1 || got[0].Rect != monitor {
			t.Fatalf("got %v, want one placement of %v", got, monitor)
		}
	})

	t.Run("last child absorbs remainder", func(t *testing.T) {
		a, b := container.NewWindow("a"), container.NewWindow("b")
		ws := workspace(t, container.Horizontal, a, b)
		got := layout.Compute(ws, monitor, layout.Gaps{})

		want := []layout.Rect{
			{X: 0, Y: 0, Width: 50, Height: 40},
			{X: 50, Y: 0, Width: 51, Height: 40},
		}
		for i, p := range got {
			if p.Rect != want[i] {
				t.Errorf("placement %d = %v, want %v", i, p.Rect, want[i])
			}
		}
	})

	t.Run("nested vertical split", func(t *testing.T) {
		a, b := container.NewWindow("a"), container.NewWindow("b")
		ws := workspace(t, container.Horizontal, a, b)
		c := container.NewWindow("c")
		if _, err := container.Wrap(b, c, container.Vertical, true); err != nil {
			t.Fatal(err)
		}

		got := layout.Compute(ws, monitor, layout.Gaps{})
		if len(got) != 3 {
			t.Fatalf("expected 3 placements, got %d", len(got))
		}
		rb, _ := layout.Find(got, b)
		rc, _ := layout.Find(got, c)
		if rb != (layout.Rect{X: 50, Y: 0, Width: 51, Height: 20}) {
			t.Errorf("b = %v", rb)
		}
		if rc != (layout.Rect{X: 50, Y: 20, Width: 51, Height: 20}) {
			t.Errorf("c = %v", rc)
		}
	})

	t.Run("gaps", func(t *testing.T) {
		a, b := container.NewWindow("a"), container.NewWindow("b")
		ws := workspace(t, container.Horizontal, a, b)
		got := layout.Compute(ws, layout.Rect{Width: 100, Height: 40}, layout.Gaps{Inner: 2, Outer: 1})

		want := []layout.Rect{
			{X: 1, Y: 1, Width: 48, Height: 38},
			{X: 51, Y: 1, Width: 48, Height: 38},
		}
		for i, p := range got {
			if p.Rect != want[i] {
				t.Errorf("placement %d = %v, want %v", i, p.Rect, want[i])
			}
		}
	})

	t.Run("empty workspace", func(t *testing.T) {
		ws := workspace(t, container.Horizontal)
		if got := layout.Compute(ws, monitor, layout.Gaps{}); len(got) != 0 {
			t.Fatalf("expected no placements, got %v", got)
		}
	})
}

func TestInset(t *testing.T) {
	tests := []struct {
		name string
		in   layout.Rect
		n    int
		want layout.Rect
	}{
		{"zero", layout.Rect{Width: 10, Height: 5}, 0, layout.Rect{Width: 10, Height: 5}},
		{"one", layout.Rect{Width: 10, Height: 5}, 1, layout.Rect{X: 1, Y: 1, Width: 8, Height: 3}},
		{"clamped", layout.Rect{Width: 4, Height: 4}, 3, layout.Rect{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

// TestProperty_TilesCoverMonitor checks that without gaps the placements
// of a flat workspace partition the monitor.
func TestProperty_TilesCoverMonitor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := rapid.SampledFrom([]container.Orientation{container.Horizontal, container.Vertical}).Draw(t, "orientation")
		root := container.NewRoot()
		ws := container.NewWorkspace("1", o)
		if err := container.Attach(root, ws, 0); err != nil {
			t.Fatal(err)
		}
		n := rapid.IntRange(1, 12).Draw(t, "windows")
		for i := 0; i < n; i++ {
			if err := container.Attach(ws, container.NewWindow("w"), i); err != nil {
				t.Fatal(err)
			}
		}
		monitor := layout.Rect{
			Width:  rapid.IntRange(n, 400).Draw(t, "width"),
			Height: rapid.IntRange(n, 200).Draw(t, "height"),
		}

		placements := layout.Compute(ws, monitor, layout.Gaps{})
		if len(placements) != n {
			t.Fatalf("got %d placements, want %d", len(placements), n)
		}
		area := 0
		next := 0
		for _, p := range placements {
			area += p.Rect.Area()
			pos, length := p.Rect.X, p.Rect.Width
			if o == container.Vertical {
				pos, length = p.Rect.Y, p.Rect.Height
			}
			if pos != next {
				t.Fatalf("tile starts at %d, want %d", pos, next)
			}
			next += length
		}
		if area != monitor.Area() {
			t.Fatalf("tiles cover %d cells, monitor has %d", area, monitor.Area())
		}
	})
}
