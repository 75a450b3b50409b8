//go:build rp2040

// Package board binds the panel to Raspberry Pi Pico hardware.
package board

import "machine"

// Display bus.
var (
	DisplayBus = machine.I2C1
	DisplaySDA = machine.GP14
	DisplaySCL = machine.GP15
)

const (
	DisplayAddress   = 0x3C
	DisplayFrequency = 400 * machine.KHz
)

// Joystick.
var (
	JoystickX      = machine.ADC{Pin: machine.ADC0} // GP26
	JoystickY      = machine.ADC{Pin: machine.ADC1} // GP27
	JoystickButton = machine.GP22
)

// ResetButton reboots into the USB bootloader.
var ResetButton = machine.GP6

// RGB LED. Red and blue share slice 6.
var (
	LEDGreen = machine.GP11
	LEDBlue  = machine.GP12
	LEDRed   = machine.GP13

	PWMGreen = machine.PWM5
	PWMBlue  = machine.PWM6
	PWMRed   = machine.PWM6
)
