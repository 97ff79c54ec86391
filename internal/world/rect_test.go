package world

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	if r.X1 != 3 || r.Y1 != 4 || r.X2 != 9 || r.Y2 != 12 {
		t.Errorf("NewRect(3, 4, 6, 8) = %+v", r)
	}
	if r.Width() != 6 || r.Height() != 8 {
		t.Errorf("size = %dx%d, want 6x8", r.Width(), r.Height())
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect   Rect
		cx, cy int
	}{
		{NewRect(0, 0, 10, 10), 5, 5},
		{NewRect(1, 1, 6, 7), 4, 4},
		{NewRect(10, 20, 7, 9), 13, 24},
	}

	for _, tt := range tests {
		cx, cy := tt.rect.Center()
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.rect, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 6, 6)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"self", base, true},
		{"overlap", NewRect(12, 12, 6, 6), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"touching edge", NewRect(16, 10, 6, 6), true},
		{"touching corner", NewRect(16, 16, 3, 3), true},
		{"left gap", NewRect(0, 10, 6, 6), false},
		{"below gap", NewRect(10, 17, 6, 6), false},
		{"far away", NewRect(40, 40, 6, 6), false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s: Intersects is not symmetric", tt.name)
		}
	}
}

func TestRectContainsMatchesCarvedCells(t *testing.T) {
	r := NewRect(2, 2, 3, 3)
	if r.Contains(2, 2) {
		t.Error("origin corner should not be a carved cell")
	}
	if !r.Contains(3, 3) || !r.Contains(5, 5) {
		t.Error("interior and far corner should be carved cells")
	}
	if r.Contains(6, 5) {
		t.Error("cell past X2 should not be carved")
	}
}
