package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{Position: V(-400, -400), Size: V(800, 800)}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", V(0, 0), true},
		{"min corner (inclusive)", V(-400, -400), true},
		{"max x edge (exclusive)", V(400, 0), false},
		{"max y edge (exclusive)", V(0, 400), false},
		{"just inside max corner", V(399.9, 399.9), true},
		{"outside left", V(-400.1, 0), false},
		{"outside below", V(0, -401), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v, expected (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v, expected (2, 2)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if !V(0, 5).IsZero() || V(1, 1).IsZero() {
		t.Error("IsZero() should report vectors with a zero component")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
