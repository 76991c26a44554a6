package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want int
	}{
		{ColorDefault, -1},
		{ColorRed, 1},
		{ColorGreen, 2},
		{ColorWhite, 7},
		{ColorBrightRed, 9},
		{ColorBrightGreen, 10},
		{ColorBrightWhite, 15},
		{ColorOrange, 208},
		{ColorGray, 245},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionBoost)
	f.Set(ActionLeft)

	if f.LastDirection != ActionLeft {
		t.Errorf("LastDirection = %v, want Left", f.LastDirection)
	}
	if !f.Has(ActionUp) || !f.Has(ActionBoost) {
		t.Error("frame should keep every action it saw")
	}

	f.Clear()
	if f.LastDirection != ActionNone || f.Has(ActionLeft) {
		t.Error("Clear should drop actions and the latched direction")
	}
}
