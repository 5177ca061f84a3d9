package container_test

import (
	"errors"
	"testing"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) container.Container
		ok    bool
	}{
		{
			name: "empty workspace",
			build: func(t *testing.T) container.Container {
				root, _ := newTree()
				return root
			},
			ok: true,
		},
		{
			name: "nested splits",
			build: func(t *testing.T) container.Container {
				root, ws := newTree()
				a, b := container.NewWindow("a"), container.NewWindow("b")
				attach(t, ws, a)
				attach(t, ws, b)
				if _, err := container.Wrap(b, container.NewWindow("c"), container.Vertical, true); err != nil {
					t.Fatal(err)
				}
				return root
			},
			ok: true,
		},
		{
			name: "sizes do not sum to one",
			build: func(t *testing.T) container.Container {
				root, ws := newTree()
				a, b := container.NewWindow("a"), container.NewWindow("b")
				attach(t, ws, a)
				attach(t, ws, b)
				setSizes([]container.TilingContainer{a, b}, 0.5, 0.4)
				return root
			},
		},
		{
			name: "zero tiling size",
			build: func(t *testing.T) container.Container {
				root, ws := newTree()
				a, b := container.NewWindow("a"), container.NewWindow("b")
				attach(t, ws, a)
				attach(t, ws, b)
				setSizes([]container.TilingContainer{a, b}, 0, 1)
				return root
			},
		},
		{
			name: "single-child split",
			build: func(t *testing.T) container.Container {
				root, ws := newTree()
				s := container.NewSplit(container.Vertical)
				attach(t, ws, s)
				attach(t, s, container.NewWindow("a"))
				return root
			},
		},
		{
			name: "empty split",
			build: func(t *testing.T) container.Container {
				root, ws := newTree()
				attach(t, ws, container.NewSplit(container.Vertical))
				return root
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := container.Validate(tt.build(t))
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, container.ErrInvariant) {
				t.Fatalf("expected ErrInvariant, got %v", err)
			}
		})
	}
}
