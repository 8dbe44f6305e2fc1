package core

import "testing"

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		name     string
		start    Direction
		turns    int64
		expected Direction
	}{
		{"right one cw", DirRight, 1, DirDown},
		{"right full cycle", DirRight, 4, DirRight},
		{"right ccw", DirRight, -1, DirUp},
		{"up cw wraps", DirUp, 1, DirRight},
		{"down two cw", DirDown, 2, DirUp},
		{"left large positive", DirLeft, 9, DirUp},
		{"right large negative", DirRight, -5, DirUp},
		{"down negative wraps", DirDown, -2, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.Rotate(tc.turns); got != tc.expected {
				t.Errorf("%v.Rotate(%d) = %v, expected %v", tc.start, tc.turns, got, tc.expected)
			}
		})
	}
}

func TestDirectionRotateInverse(t *testing.T) {
	// Rotating by x then -x must restore the direction for any direction.
	for d := DirRight; d <= DirUp; d++ {
		for x := int64(-7); x <= 7; x++ {
			if got := d.Rotate(x).Rotate(-x); got != d {
				t.Errorf("%v.Rotate(%d).Rotate(%d) = %v, expected %v", d, x, -x, got, d)
			}
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirRight, 1, 0},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirUp, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestChooserToggle(t *testing.T) {
	if ChooseLeft.Toggle() != ChooseRight {
		t.Error("ChooseLeft.Toggle() should be ChooseRight")
	}
	if ChooseRight.Toggle() != ChooseLeft {
		t.Error("ChooseRight.Toggle() should be ChooseLeft")
	}
	if ChooseLeft.Toggle().Toggle() != ChooseLeft {
		t.Error("double toggle should restore the chooser")
	}
}

func TestPositionMove(t *testing.T) {
	p := Position{X: 3, Y: 5}

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirRight, Position{4, 5}},
		{DirDown, Position{3, 6}},
		{DirLeft, Position{2, 5}},
		{DirUp, Position{3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := p.Move(tc.dir); got != tc.expected {
				t.Errorf("Move(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}
