package board

import (
	"testing"

	"pacman/internal/entities"
)

func TestInitialDotsLayout(t *testing.T) {
	b := New(20, 30)
	dots := b.InitialDots()
	if len(dots) != 18*18 {
		t.Fatalf("got %d dots, want %d", len(dots), 18*18)
	}
	seen := make(map[entities.Vec2]bool, len(dots))
	for _, d := range dots {
		if d.X < b.Min() || d.X > b.Max() || d.Y < b.Min() || d.Y > b.Max() {
			t.Fatalf("dot %v outside playable bounds", d)
		}
		if !entities.IsAligned(d, b.CellSize) {
			t.Fatalf("dot %v not on an intersection", d)
		}
		if seen[d] {
			t.Fatalf("duplicate dot %v", d)
		}
		seen[d] = true
	}
}

func TestInitialDotsFresh(t *testing.T) {
	b := New(5, 10)
	first := b.InitialDots()
	first[0] = entities.Vec2{X: -1, Y: -1}
	if second := b.InitialDots(); second[0] == first[0] {
		t.Fatal("InitialDots should return a new slice each call")
	}
}

func TestClamp(t *testing.T) {
	b := New(20, 30)
	tests := []struct {
		name string
		in   entities.Vec2
		want entities.Vec2
	}{
		{name: "inside", in: entities.Vec2{X: 100, Y: 200}, want: entities.Vec2{X: 100, Y: 200}},
		{name: "left top", in: entities.Vec2{X: 25, Y: -3}, want: entities.Vec2{X: 30, Y: 30}},
		{name: "right bottom", in: entities.Vec2{X: 575, Y: 999}, want: entities.Vec2{X: 570, Y: 570}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Clamp(tc.in); got != tc.want {
				t.Fatalf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartPositionAndSize(t *testing.T) {
	b := New(20, 30)
	if got := b.StartPosition(); got != (entities.Vec2{X: 30, Y: 300}) {
		t.Fatalf("StartPosition = %v", got)
	}
	if b.PixelSize() != 600 {
		t.Fatalf("PixelSize = %d, want 600", b.PixelSize())
	}
}
