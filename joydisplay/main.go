package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picojoystick/joydisplay/board"
	"github.com/harveysanders/picojoystick/joydisplay/button"
	"github.com/harveysanders/picojoystick/joydisplay/panel"
	"github.com/harveysanders/picojoystick/joydisplay/stick"
)

//go:generate tinygo flash -target=pico

func main() {
	logger := board.Logger()

	// Reset button first so the bootloader stays reachable if anything
	// below hangs.
	err := button.AttachReset(board.Button(board.ResetButton), machine.EnterBootloader)
	if err != nil {
		printErrForever(logger, "attach reset button", slog.Any("reason", err))
	}

	green, err := board.InitPWM(board.PWMGreen, board.LEDGreen)
	if err != nil {
		printErrForever(logger, "init green LED", slog.Any("reason", err))
	}
	blue, err := board.InitPWM(board.PWMBlue, board.LEDBlue)
	if err != nil {
		printErrForever(logger, "init blue LED", slog.Any("reason", err))
	}
	red, err := board.InitPWM(board.PWMRed, board.LEDRed)
	if err != nil {
		printErrForever(logger, "init red LED", slog.Any("reason", err))
	}
	logger.Info("pwm:configured",
		slog.Int("green", int(green.ID())),
		slog.Int("blue", int(blue.ID())),
		slog.Int("red", int(red.ID())),
	)

	// The joystick button toggles the green LED and the double border.
	toggle := button.NewToggle(green, board.Millis)
	if err := toggle.Attach(board.Button(board.JoystickButton)); err != nil {
		printErrForever(logger, "attach joystick button", slog.Any("reason", err))
	}

	if err := board.InitI2C(); err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}
	display := board.InitDisplay()

	p, err := panel.New(panel.Config{
		Stick:       board.InitJoystick(),
		Calibration: stick.DefaultCalibration,
		Canvas:      display,
		Red:         red,
		Blue:        blue,
		Border:      toggle,
		Interval:    panel.DefaultInterval,
		Logger:      logger,
	})
	if err != nil {
		printErrForever(logger, "create panel", slog.Any("reason", err))
	}
	p.Run()
}

// printErrForever logs msg to serial @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
