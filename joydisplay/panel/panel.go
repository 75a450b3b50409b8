// Package panel runs the sample-draw-light loop that ties the joystick to
// the display and LEDs.
package panel

import (
	"io"
	"log/slog"
	"time"

	"github.com/harveysanders/picojoystick/joydisplay/led"
	"github.com/harveysanders/picojoystick/joydisplay/screen"
	"github.com/harveysanders/picojoystick/joydisplay/stick"
)

// DefaultInterval is the sleep between iterations. Time spent sampling and
// drawing is not subtracted from it.
const DefaultInterval = 100 * time.Millisecond

// Error is a panel configuration error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const ErrMissingDevice = Error("panel: missing device")

// Sampler reads both joystick axes.
type Sampler interface {
	Read() stick.Sample
}

// Indicator reports whether the double border should be drawn.
type Indicator interface {
	On() bool
}

// Config holds the devices the panel drives.
type Config struct {
	Stick       Sampler
	Calibration stick.Calibration
	Canvas      screen.Canvas
	Red         led.Level
	Blue        led.Level
	// Border selects the double border. It is read once per frame.
	Border Indicator
	// Interval defaults to DefaultInterval.
	Interval time.Duration
	Logger   *slog.Logger
}

// Panel is the loop state: its devices and the cursor.
type Panel struct {
	stick    Sampler
	cal      stick.Calibration
	canvas   screen.Canvas
	red      led.Level
	blue     led.Level
	border   Indicator
	interval time.Duration
	log      *slog.Logger

	cursor stick.Cursor
	frames uint32
}

// New returns a Panel with the cursor at stick.Home.
func New(cfg Config) (*Panel, error) {
	if cfg.Stick == nil || cfg.Canvas == nil || cfg.Red == nil || cfg.Blue == nil || cfg.Border == nil {
		return nil, ErrMissingDevice
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Panel{
		stick:    cfg.Stick,
		cal:      cfg.Calibration,
		canvas:   cfg.Canvas,
		red:      cfg.Red,
		blue:     cfg.Blue,
		border:   cfg.Border,
		interval: interval,
		log:      logger,
		cursor:   stick.Home,
	}, nil
}

// Cursor returns the square's current position.
func (p *Panel) Cursor() stick.Cursor {
	return p.cursor
}

// Step runs one iteration without the trailing sleep: sample, move the
// cursor, redraw, then set the red and blue levels. The LEDs are updated
// even if flushing the frame fails; that error is returned.
func (p *Panel) Step() error {
	s := p.stick.Read()
	p.cursor = p.cursor.Move(s, p.cal)

	err := screen.DrawFrame(p.canvas, p.cursor, p.border.On())

	p.red.Set(p.cal.Red(s))
	p.blue.Set(p.cal.Blue(s))
	p.frames++
	return err
}

// Run calls Step forever, sleeping Interval between iterations.
func (p *Panel) Run() {
	p.log.Info("panel:running",
		slog.Duration("interval", p.interval),
		slog.Int("centerX", int(p.cal.CenterX)),
		slog.Int("centerY", int(p.cal.CenterY)),
		slog.Int("deadZone", int(p.cal.DeadZone)),
	)
	for {
		if err := p.Step(); err != nil {
			p.log.Error("panel:draw-failed",
				slog.Uint64("frame", uint64(p.frames)),
				slog.String("err", err.Error()),
			)
		}
		time.Sleep(p.interval)
	}
}
