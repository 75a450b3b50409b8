// Package led drives LED brightness through a PWM slice using 12-bit duty
// levels, the same resolution as the joystick ADC.
package led

import "sync/atomic"

// Wrap is the PWM counter wrap. Levels run from 0 (off) to Wrap (fully on).
const Wrap = 4095

// Level is an output driven by duty level. *Channel satisfies it.
type Level interface {
	Set(level uint16)
}

// Group is a PWM slice. TinyGo's machine.PWMx values satisfy it.
type Group interface {
	Set(channel uint8, value uint32)
	Top() uint32
}

// Channel is one PWM output of a Group.
type Channel struct {
	pwm   Group
	ch    uint8
	level atomic.Uint32
}

// NewChannel returns a Channel writing to output ch of pwm.
func NewChannel(pwm Group, ch uint8) *Channel {
	return &Channel{pwm: pwm, ch: ch}
}

// Set sets the duty level, clamped to Wrap. When the slice top differs
// from Wrap the level is scaled onto it.
func (c *Channel) Set(level uint16) {
	if level > Wrap {
		level = Wrap
	}
	c.level.Store(uint32(level))

	top := c.pwm.Top()
	if top == Wrap {
		c.pwm.Set(c.ch, uint32(level))
		return
	}
	c.pwm.Set(c.ch, uint32(uint64(level)*uint64(top)/Wrap))
}

// Level returns the last level passed to Set.
func (c *Channel) Level() uint16 {
	return uint16(c.level.Load())
}

// ID returns the hardware channel number within the slice.
func (c *Channel) ID() uint8 {
	return c.ch
}
