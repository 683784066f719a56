package vmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(0.5); got != V2(1.5, 2) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len: got %v", got)
	}

	// Operands are values, never modified
	if a != V2(3, 4) || b != V2(1, -2) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V2(0, 7), V2(0, 1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"negative", V2(-10, 0), V2(-1, 0)},
		{"zero", V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize(%v) produced NaN", tt.in)
			}
		})
	}
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		p    Vec2
		size float64
		want Cell
	}{
		{V2(0, 0), 80, Cell{0, 0}},
		{V2(79.9, 80), 80, Cell{0, 1}},
		{V2(160, 239.99), 80, Cell{2, 2}},
		{V2(-0.5, -80.5), 80, Cell{-1, -2}},
	}

	for _, tt := range tests {
		if got := CellOf(tt.p, tt.size); got != tt.want {
			t.Errorf("CellOf(%v, %v) = %v, want %v", tt.p, tt.size, got, tt.want)
		}
	}
}

func TestChebyshev(t *testing.T) {
	if d := Chebyshev(Cell{0, 0}, Cell{1, -1}); d != 1 {
		t.Errorf("expected 1, got %d", d)
	}
	if d := Chebyshev(Cell{2, 5}, Cell{0, 4}); d != 2 {
		t.Errorf("expected 2, got %d", d)
	}
	if c := (Cell{1, 1}).Offset(1, -1); c != (Cell{2, 0}) {
		t.Errorf("Offset: got %v", c)
	}
}
