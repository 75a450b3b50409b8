// Package stick turns raw joystick ADC readings into cursor movement and
// LED brightness.
//
// All samples handled here are 12-bit (0-4095). Readers built with
// NewReader take care of shifting TinyGo's left-justified 16-bit ADC values
// down to that range.
package stick

// MaxSample is the largest value a 12-bit ADC conversion can produce.
const MaxSample = 1<<12 - 1

// Step is the divisor applied to an axis deflection to get cursor movement
// per tick.
const Step = 150

// ADC is a single analog channel. machine.ADC satisfies it.
type ADC interface {
	Get() uint16
}

// Sample is one reading of both joystick axes.
type Sample struct {
	X uint16
	Y uint16
}

// Reader samples the two joystick axes.
type Reader struct {
	x, y ADC
}

// NewReader returns a Reader sampling x on channel 0 and y on channel 1.
func NewReader(x, y ADC) *Reader {
	return &Reader{x: x, y: y}
}

// Read samples X then Y and returns both as 12-bit values.
func (r *Reader) Read() Sample {
	return Sample{
		X: r.x.Get() >> 4,
		Y: r.y.Get() >> 4,
	}
}

// Calibration holds the resting readings of each axis and the dead zone
// radius shared by both.
type Calibration struct {
	CenterX  uint16
	CenterY  uint16
	DeadZone uint16
}

// DefaultCalibration holds the resting readings measured on the board's
// joystick.
var DefaultCalibration = Calibration{
	CenterX:  2121,
	CenterY:  2035,
	DeadZone: 100,
}

// Displacement returns how far the cursor moves for a sample on an axis
// resting at center. Deflections inside the dead zone don't move it.
func (c Calibration) Displacement(sample, center uint16) int {
	d := int(sample) - int(center)
	if abs(d) > int(c.DeadZone) {
		return d / Step
	}
	return 0
}

// Red returns the red LED level. It is driven by the Y axis.
func (c Calibration) Red(s Sample) uint16 {
	return c.brightness(s.Y, c.CenterY)
}

// Blue returns the blue LED level. It is driven by the X axis.
func (c Calibration) Blue(s Sample) uint16 {
	return c.brightness(s.X, c.CenterX)
}

// brightness maps the deflection past the dead zone onto 0-255 of the
// axis' center value. The bounds are exclusive.
func (c Calibration) brightness(sample, center uint16) uint16 {
	if center == 0 {
		return 0
	}
	v, hi, lo := int(sample), int(center)+int(c.DeadZone), int(center)-int(c.DeadZone)
	switch {
	case v > hi:
		return uint16((v - hi) * 255 / int(center))
	case v < lo:
		return uint16((lo - v) * 255 / int(center))
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
