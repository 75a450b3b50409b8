//go:build rp2040

package board

import (
	"errors"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picojoystick/joydisplay/button"
	"github.com/harveysanders/picojoystick/joydisplay/led"
	"github.com/harveysanders/picojoystick/joydisplay/screen"
	"github.com/harveysanders/picojoystick/joydisplay/stick"
	"tinygo.org/x/drivers/ssd1306"
)

// pwmPeriod is led.Wrap+1 cycles of the 125 MHz system clock, which makes
// the slice top equal led.Wrap.
const pwmPeriod = uint64(led.Wrap+1) * 8 // ns

var boot = time.Now()

// Logger returns a text logger on the USB serial port.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Millis returns milliseconds since boot. It wraps after ~49 days.
func Millis() uint32 {
	return uint32(time.Since(boot).Milliseconds())
}

// pwmGroup covers TinyGo's unexported *pwmGroup type.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

// InitPWM routes pin to its PWM slice, sets the counter wrap to led.Wrap
// and enables it.
func InitPWM(pwm pwmGroup, pin machine.Pin) (*led.Channel, error) {
	err := pwm.Configure(machine.PWMConfig{Period: pwmPeriod})
	if err != nil {
		return nil, errors.New("configure PWM:" + err.Error())
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, errors.New("PWM channel:" + err.Error())
	}
	return led.NewChannel(pwm, ch), nil
}

// InitI2C configures the display bus.
func InitI2C() error {
	err := DisplayBus.Configure(machine.I2CConfig{
		SDA:       DisplaySDA,
		SCL:       DisplaySCL,
		Frequency: DisplayFrequency,
	})
	if err != nil {
		return errors.New("configure I2C:" + err.Error())
	}
	return nil
}

// InitDisplay sets up the OLED on the configured bus and blanks it.
func InitDisplay() *ssd1306.Device {
	// the panel doesn't answer right after a cold boot
	time.Sleep(time.Second)
	return screen.NewSSD1306(DisplayBus, DisplayAddress)
}

// InitJoystick enables the ADC and returns a reader for both axes.
func InitJoystick() *stick.Reader {
	machine.InitADC()
	JoystickX.Configure(machine.ADCConfig{})
	JoystickY.Configure(machine.ADCConfig{})
	return stick.NewReader(JoystickX, JoystickY)
}

type edgePin machine.Pin

// Button configures pin as an active-low input with pull-up and returns it
// as an edge source.
func Button(pin machine.Pin) button.EdgeSource {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return edgePin(pin)
}

func (p edgePin) Register(edge button.Edge, fn func()) error {
	change := machine.PinFalling
	if edge == button.Rising {
		change = machine.PinRising
	}
	return machine.Pin(p).SetInterrupt(change, func(machine.Pin) { fn() })
}
