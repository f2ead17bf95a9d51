// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Transport errors carry the
// underlying cause; match with errors.Is.
var (
	// ErrBusWrite is returned when a write transaction on the underlying
	// bus fails.
	ErrBusWrite = errors.New("ssd1306: bus write failed")

	// ErrDCPin is returned when the data/command select pin cannot be
	// driven.
	ErrDCPin = errors.New("ssd1306: D/C pin error")

	// ErrCSPin is returned when the chip select pin cannot be driven.
	ErrCSPin = errors.New("ssd1306: CS pin error")

	// ErrResetPin is returned when the reset pin cannot be driven.
	ErrResetPin = errors.New("ssd1306: reset pin error")

	// ErrUnsupportedFormat is returned when a payload shape is not
	// implemented by the transport it was handed to.
	ErrUnsupportedFormat = errors.New("ssd1306: data format not supported by this interface")

	// ErrCommandTooLong is returned by the I²C transport for command
	// payloads over 7 bytes, the longest command the controller defines.
	ErrCommandTooLong = errors.New("ssd1306: command payload exceeds 7 bytes")

	// ErrOutOfBounds is returned for coordinates outside the display.
	ErrOutOfBounds = errors.New("ssd1306: position out of bounds")

	// ErrUninitialized is returned by terminal operations invoked before
	// Init or Clear established a cursor.
	ErrUninitialized = errors.New("ssd1306: display was not initialized")
)

// wrap annotates a sentinel with the underlying cause.
func wrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}
