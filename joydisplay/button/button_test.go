package button

import (
	"errors"
	"testing"

	"github.com/harveysanders/picojoystick/joydisplay/led"
)

// fakeSource remembers registered handlers so tests can fire edges.
type fakeSource struct {
	handlers map[Edge]func()
	err      error
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: make(map[Edge]func())}
}

func (s *fakeSource) Register(edge Edge, fn func()) error {
	if s.err != nil {
		return s.err
	}
	s.handlers[edge] = fn
	return nil
}

func (s *fakeSource) fire(edge Edge) {
	if fn := s.handlers[edge]; fn != nil {
		fn()
	}
}

type recordLevel struct {
	levels []uint16
}

func (r *recordLevel) Set(level uint16) { r.levels = append(r.levels, level) }

type clock struct{ ms uint32 }

func (c *clock) now() uint32 { return c.ms }

func TestAttachReset(t *testing.T) {
	src := newFakeSource()
	entered := 0
	if err := AttachReset(src, func() { entered++ }); err != nil {
		t.Fatalf("AttachReset: %v", err)
	}
	src.fire(Rising)
	if entered != 0 {
		t.Fatalf("rising edge entered bootloader")
	}
	src.fire(Falling)
	if entered != 1 {
		t.Fatalf("entered = %d, want 1", entered)
	}
}

func TestAttachResetErrors(t *testing.T) {
	if err := AttachReset(nil, func() {}); err != ErrNilSource {
		t.Errorf("nil source: err = %v, want %v", err, ErrNilSource)
	}
	if err := AttachReset(newFakeSource(), nil); err != ErrNilHandler {
		t.Errorf("nil handler: err = %v, want %v", err, ErrNilHandler)
	}
	src := newFakeSource()
	src.err = errors.New("no irq")
	if err := AttachReset(src, func() {}); err != src.err {
		t.Errorf("register failure: err = %v, want %v", err, src.err)
	}
}

func TestToggleDebounce(t *testing.T) {
	tests := []struct {
		name      string
		presses   []uint32 // ms since boot
		wantFlips int
	}{
		{"single press", []uint32{1000}, 1},
		{"bounce within window", []uint32{1000, 1001, 1005, 1799}, 1},
		{"exactly at window", []uint32{1000, 1800}, 2},
		{"well apart", []uint32{1000, 5000, 9000}, 3},
		{"storm then press", []uint32{1000, 1100, 1200, 1300, 1400, 1900}, 2},
		{"early boot press dropped", []uint32{10, 799}, 0},
		{"first press at window", []uint32{800}, 1},
		{"counter wrap", []uint32{0xFFFFFF00, 0x00000300}, 2},
		{"counter wrap bounce", []uint32{0xFFFFFF00, 0x00000010}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := &clock{}
			out := &recordLevel{}
			tg := NewToggle(out, clk.now)
			for _, ms := range tt.presses {
				clk.ms = ms
				tg.Handle()
			}
			if len(out.levels) != tt.wantFlips {
				t.Fatalf("flips = %d (%v), want %d", len(out.levels), out.levels, tt.wantFlips)
			}
			if want := tt.wantFlips%2 == 1; tg.On() != want {
				t.Errorf("On() = %v, want %v", tg.On(), want)
			}
		})
	}
}

func TestToggleDrivesLevel(t *testing.T) {
	clk := &clock{ms: 1000}
	out := &recordLevel{}
	tg := NewToggle(out, clk.now)
	src := newFakeSource()
	if err := tg.Attach(src); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	src.fire(Falling)
	clk.ms += DebounceMillis
	src.fire(Falling)

	want := []uint16{led.Wrap, 0}
	if len(out.levels) != len(want) {
		t.Fatalf("levels = %v, want %v", out.levels, want)
	}
	for i := range want {
		if out.levels[i] != want[i] {
			t.Errorf("levels[%d] = %d, want %d", i, out.levels[i], want[i])
		}
	}
	if tg.On() {
		t.Errorf("On() = true after two presses")
	}
}

func TestToggleWithoutOutput(t *testing.T) {
	clk := &clock{ms: 2000}
	tg := NewToggle(nil, clk.now)
	tg.Handle()
	if !tg.On() {
		t.Errorf("On() = false after press")
	}
}

func TestToggleAttachNilSource(t *testing.T) {
	tg := NewToggle(nil, func() uint32 { return 0 })
	if err := tg.Attach(nil); err != ErrNilSource {
		t.Errorf("err = %v, want %v", err, ErrNilSource)
	}
}
