package stick

// Cursor bounds: display extent minus the 8 pixel square.
// X runs down the 64 pixel height, Y across the 128 pixel width.
const (
	MaxX = 64 - 8
	MaxY = 128 - 8
)

// Home is where the cursor rests while the joystick is centered.
var Home = Cursor{X: 28, Y: 60}

// Cursor is the top-left corner of the indicator square.
type Cursor struct {
	X int
	Y int
}

// Move integrates one sample into the cursor. A centered stick snaps the
// cursor back to Home; otherwise X moves against the X deflection and Y
// with the Y deflection. The result is always inside [0,MaxX]x[0,MaxY].
func (c Cursor) Move(s Sample, cal Calibration) Cursor {
	dx := cal.Displacement(s.X, cal.CenterX)
	dy := cal.Displacement(s.Y, cal.CenterY)
	if dx == 0 && dy == 0 {
		return Home
	}
	return Cursor{
		X: clamp(c.X-dx, 0, MaxX),
		Y: clamp(c.Y+dy, 0, MaxY),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
