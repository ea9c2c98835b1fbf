package life

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}

	cells := 0
	g.Each(func(c Coord, state CellState) {
		cells++
		if state != Dead {
			t.Errorf("at %v: new grid should be dead, got %v", c, state)
		}
	})
	if cells != 12 {
		t.Errorf("Each visited %d cells, expected 12", cells)
	}
	if g.Population() != 0 {
		t.Errorf("Population() = %d, expected 0", g.Population())
	}
}

func TestNewGridDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.w, tc.h)
			if !errors.Is(err, ErrDegenerateGrid) {
				t.Errorf("expected ErrDegenerateGrid, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestGridInRange(t *testing.T) {
	g, _ := NewGrid(5, 5)

	testCases := []struct {
		coord    Coord
		expected bool
	}{
		{Coord{0, 0}, true},
		{Coord{4, 4}, true},
		{Coord{2, 2}, true},
		{Coord{-1, 0}, false},
		{Coord{0, -1}, false},
		{Coord{5, 0}, false},
		{Coord{0, 5}, false},
		{Coord{5, 5}, false},
	}

	for _, tc := range testCases {
		if got := g.InRange(tc.coord); got != tc.expected {
			t.Errorf("InRange(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestGridSetTracksPopulation(t *testing.T) {
	g, _ := NewGrid(3, 3)

	g.Set(C(1, 1), Alive)
	g.Set(C(1, 1), Alive) // no double count
	g.Set(C(0, 2), Alive)
	if g.Population() != 2 {
		t.Errorf("Population() = %d, expected 2", g.Population())
	}
	if g.At(C(1, 1)) != Alive {
		t.Error("expected (1,1) alive")
	}

	g.Set(C(1, 1), Dead)
	if g.Population() != 1 {
		t.Errorf("Population() = %d, expected 1", g.Population())
	}

	coords := g.AliveCoords()
	if len(coords) != 1 || coords[0] != C(0, 2) {
		t.Errorf("AliveCoords() = %v, expected [(0,2)]", coords)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g, _ := NewGrid(3, 3)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range access")
		}
	}()
	g.At(C(3, 0))
}

func TestGridClone(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(C(1, 1), Alive)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.Set(C(1, 1), Dead)
	if clone.At(C(1, 1)) != Alive {
		t.Error("clone should not be affected by original modification")
	}
	if clone.Population() != 1 {
		t.Errorf("clone Population() = %d, expected 1", clone.Population())
	}
}

func TestCoordArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Coord
		expected Coord
	}{
		{"add", C(1, 2).Add(C(3, 4)), C(4, 6)},
		{"offset positive", C(1, 1).Offset(1, 1), C(2, 2)},
		{"offset negative", C(1, 1).Offset(-1, -1), C(0, 0)},
		{"offset saturates x", C(0, 3).Offset(-1, 0), C(0, 3)},
		{"offset saturates both", C(0, 0).Offset(-1, -1), C(0, 0)},
		{"sub", C(5, 5).Sub(C(2, 3)), C(3, 2)},
		{"sub saturates", C(1, 5).Sub(C(2, 3)), C(0, 2)},
		{"constructor clamps", C(-3, 2), C(0, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestCellStateToggle(t *testing.T) {
	if Dead.Toggle() != Alive || Alive.Toggle() != Dead {
		t.Error("Toggle should flip the state")
	}
	if Alive.String() != "alive" || Dead.String() != "dead" {
		t.Errorf("unexpected names %q, %q", Alive.String(), Dead.String())
	}
}
