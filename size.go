// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// driverCols is the SSD1306's RAM width in columns.
const driverCols = 128

// Size describes a panel's geometry and wiring quirks.
//
// W and H are in pixels and must be multiples of 8. Panels narrower than
// the driver RAM are often wired away from column 0; ColOffset names the
// RAM column of the leftmost visible pixel.
type Size struct {
	W int
	H int
	// ColOffset is the driver RAM column of the panel's leftmost pixel.
	ColOffset int
	// RowOffset is the driver RAM row of the panel's topmost pixel.
	RowOffset int
	// DriverCols is the driver RAM width in columns. 0 means 128.
	DriverCols int
	// AltComPins selects the alternative COM pin assignment. Panels with
	// interleaved row wiring need it; without it every other row stays
	// dark.
	AltComPins bool
	// ComLeftRightRemap swaps the left and right COM output mapping.
	ComLeftRightRemap bool
	// InternalIref switches the driver to its internal current reference
	// during Init.
	InternalIref bool
}

// Geometry presets for common panels.
var (
	Size128x64 = Size{W: 128, H: 64, AltComPins: true}
	Size128x32 = Size{W: 128, H: 32}
	Size96x16  = Size{W: 96, H: 16}
	Size72x40  = Size{W: 72, H: 40, ColOffset: 28, AltComPins: true, InternalIref: true}
	Size64x48  = Size{W: 64, H: 48, ColOffset: 32, AltComPins: true}
)

// bufferLen is the frame size in bytes, one bit per pixel.
func (s Size) bufferLen() int {
	return s.W * s.H / 8
}

func (s Size) comPinConfig() command {
	return cmdComPinConfig(s.AltComPins, s.ComLeftRightRemap)
}
