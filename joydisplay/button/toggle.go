package button

import (
	"sync/atomic"

	"github.com/harveysanders/picojoystick/joydisplay/led"
)

// DebounceMillis is the minimum gap between two accepted presses.
const DebounceMillis = 800

// Toggle flips an on/off state on each debounced press and mirrors it onto
// an LED: fully on or fully off.
//
// Handle is the only writer. Any number of readers may call On.
type Toggle struct {
	on   atomic.Bool
	last atomic.Uint32
	out  led.Level
	now  func() uint32
}

// NewToggle returns an off Toggle driving out. now returns milliseconds
// since boot; it is expected to wrap around like a uint32 counter.
func NewToggle(out led.Level, now func() uint32) *Toggle {
	return &Toggle{out: out, now: now}
}

// Handle processes one press. Presses within DebounceMillis of the last
// accepted one are dropped without touching any state.
func (t *Toggle) Handle() {
	now := t.now()
	if now-t.last.Load() < DebounceMillis {
		return
	}
	t.last.Store(now)

	on := !t.on.Load()
	t.on.Store(on)
	if t.out == nil {
		return
	}
	if on {
		t.out.Set(led.Wrap)
	} else {
		t.out.Set(0)
	}
}

// On reports the current state.
func (t *Toggle) On() bool {
	return t.on.Load()
}

// Attach registers Handle on falling edges of src.
func (t *Toggle) Attach(src EdgeSource) error {
	if src == nil {
		return ErrNilSource
	}
	return src.Register(Falling, t.Handle)
}
