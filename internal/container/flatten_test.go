package container_test

import (
	"errors"
	"testing"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/google/uuid"
)

func TestFlatten_SplicesChildIntoSlot(t *testing.T) {
	root, ws := newTree()
	a, c := container.NewWindow("a"), container.NewWindow("c")
	s := container.NewSplit(container.Vertical)
	b := container.NewWindow("b")
	attach(t, ws, a)
	attach(t, ws, s)
	attach(t, ws, c)
	attach(t, s, b)
	if err := container.SetFocusedDescendant(b, nil); err != nil {
		t.Fatalf("SetFocusedDescendant: %v", err)
	}
	share := s.TilingSize()

	if err := container.Flatten(s); err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	assertChildren(t, ws, a, b, c)
	assertSize(t, b, share)
	assertDetached(t, s)

	order := ws.FocusOrder()
	want := []uuid.UUID{b.ID(), a.ID(), c.ID()}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("focus order = %v, want %v", order, want)
		}
	}
	assertValid(t, root)
}

func TestFlatten_ScalesChildByShare(t *testing.T) {
	_, ws := newTree()
	x := container.NewWindow("x")
	s := container.NewSplit(container.Horizontal)
	w := container.NewWindow("w")
	attach(t, ws, x)
	attach(t, ws, s)
	attach(t, s, w)
	setSizes([]container.TilingContainer{x, s}, 0.75, 0.25)

	if err := container.Flatten(s); err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	assertSize(t, w, 0.25)
	assertSize(t, x, 0.75)
}

func TestFlatten_NoOpUnlessExactlyOneChild(t *testing.T) {
	tests := []struct {
		name     string
		children int
	}{
		{"empty split", 0},
		{"two children", 2},
		{"three children", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ws := newTree()
			s := container.NewSplit(container.Horizontal)
			attach(t, ws, s)
			for i := 0; i < tt.children; i++ {
				attach(t, s, container.NewWindow("w"))
			}
			before := s.Children()

			if err := container.Flatten(s); err != nil {
				t.Fatalf("Flatten: %v", err)
			}

			if s.Parent() != ws {
				t.Error("split should still be attached")
			}
			assertChildren(t, s, before...)
		})
	}
}

func TestFlatten_NoParent(t *testing.T) {
	s := container.NewSplit(container.Horizontal)
	attach(t, s, container.NewWindow("w"))

	err := container.Flatten(s)
	if !errors.Is(err, container.ErrNoParent) {
		t.Fatalf("expected ErrNoParent, got %v", err)
	}
}

func TestFlattenRedundant_NoOpOnNormalizedTree(t *testing.T) {
	root, ws := newTree()
	s := container.NewSplit(container.Vertical)
	attach(t, ws, container.NewWindow("a"))
	attach(t, ws, s)
	attach(t, s, container.NewWindow("b"))
	attach(t, s, container.NewWindow("c"))
	before := container.Descendants(root)

	n, err := container.FlattenRedundant(root)
	if err != nil {
		t.Fatalf("FlattenRedundant: %v", err)
	}
	if n != 0 {
		t.Errorf("expected nothing to flatten, flattened %d", n)
	}

	after := container.Descendants(root)
	if len(after) != len(before) {
		t.Fatalf("tree changed: %d -> %d nodes", len(before), len(after))
	}
	for i := range before {
		if before[i].ID() != after[i].ID() {
			t.Errorf("node %d changed from %s to %s", i, before[i], after[i])
		}
	}
}

func TestFlattenRedundant_RemovesEverySingleChildSplit(t *testing.T) {
	root, ws := newTree()
	outer := container.NewSplit(container.Horizontal)
	middle := container.NewSplit(container.Vertical)
	inner := container.NewSplit(container.Horizontal)
	w := container.NewWindow("w")
	x := container.NewWindow("x")
	attach(t, ws, outer)
	attach(t, ws, x)
	attach(t, outer, middle)
	attach(t, middle, inner)
	attach(t, inner, w)

	n, err := container.FlattenRedundant(root)
	if err != nil {
		t.Fatalf("FlattenRedundant: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 flattened splits, got %d", n)
	}
	assertChildren(t, ws, w, x)
	assertSize(t, w, 0.5)
	assertValid(t, root)

	n, err = container.FlattenRedundant(root)
	if err != nil || n != 0 {
		t.Errorf("second pass: n=%d err=%v, want 0, nil", n, err)
	}
}
