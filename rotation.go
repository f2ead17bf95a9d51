// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Rotation is the display rotation, counter clockwise in 90° steps.
//
// The controller realizes rotation by remapping its segment and COM output
// order, so it costs nothing per frame. 90° and 270° swap the logical
// width and height.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "Rotate0"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	default:
		return "Rotation(invalid)"
	}
}

// swapsAxes reports whether the rotation swaps the logical x and y axes.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// remapPair returns the segment remap and reverse COM direction flags that
// realize the rotation.
func (r Rotation) remapPair() (segRemap, comReverse bool) {
	switch r {
	case Rotate0:
		return true, true
	case Rotate90:
		return false, true
	case Rotate180:
		return false, false
	default: // Rotate270
		return true, false
	}
}

// mirrorPair returns the remap flags for horizontally mirrored output at
// this rotation.
func (r Rotation) mirrorPair() (segRemap, comReverse bool) {
	switch r {
	case Rotate0:
		return false, true
	case Rotate90:
		return false, false
	case Rotate180:
		return true, false
	default: // Rotate270
		return true, true
	}
}
