package container_test

import (
	"math"
	"testing"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
)

const tolerance = 1e-9

// newTree returns a root holding one horizontal workspace.
func newTree() (*container.Root, *container.Workspace) {
	root := container.NewRoot()
	ws := container.NewWorkspace("1", container.Horizontal)
	if err := container.Attach(root, ws, 0); err != nil {
		panic(err)
	}
	return root, ws
}

// attach appends child to parent and fails the test on error.
func attach(t testing.TB, parent, child container.Container) {
	t.Helper()
	if err := container.Attach(parent, child, parent.ChildCount()); err != nil {
		t.Fatalf("Attach(%s, %s): %v", parent, child, err)
	}
}

// setSizes assigns tiling sizes to tiling containers in order.
func setSizes(cs []container.TilingContainer, sizes ...float64) {
	for i, c := range cs {
		c.SetTilingSize(sizes[i])
	}
}

func assertSize(t testing.TB, c container.TilingContainer, want float64) {
	t.Helper()
	if got := c.TilingSize(); math.Abs(got-want) > tolerance {
		t.Errorf("%s: tiling size = %f, want %f", c, got, want)
	}
}

func assertValid(t testing.TB, c container.Container) {
	t.Helper()
	if err := container.Validate(c); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func assertChildren(t testing.TB, parent container.Container, want ...container.Container) {
	t.Helper()
	got := parent.Children()
	if len(got) != len(want) {
		t.Fatalf("%s has %d children, want %d", parent, len(got), len(want))
	}
	for i := range want {
		if got[i].ID() != want[i].ID() {
			t.Errorf("%s child %d = %s, want %s", parent, i, got[i], want[i])
		}
		if got[i].Parent() != parent {
			t.Errorf("%s does not point back at %s", got[i], parent)
		}
	}
}

func assertDetached(t testing.TB, c container.Container) {
	t.Helper()
	if c.Parent() != nil {
		t.Errorf("%s still has parent %s", c, c.Parent())
	}
	if c.ChildCount() != 0 || len(c.FocusOrder()) != 0 {
		t.Errorf("%s still has %d children, %d focus entries", c, c.ChildCount(), len(c.FocusOrder()))
	}
}
