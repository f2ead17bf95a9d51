// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Interface is a write-only command/data channel to the display
// controller. Implementations select command or data signaling before
// writing the payload, as the wiring requires.
//
// NewI2C and NewSPI return implementations for the two supported buses.
// Both support at most one transaction at a time; an Interface must not be
// shared between devices.
type Interface interface {
	// SendCommands writes command bytes to the controller.
	SendCommands(f DataFormat) error
	// SendData writes display RAM bytes to the controller.
	SendData(f DataFormat) error
}

// DataFormat is a payload for an Interface write, in one of seven shapes.
//
// The iterator shapes are pull functions: each call returns the next value
// and true, or a zero value and false once the sequence is exhausted. A
// sequence is consumed at most once and must not be reused afterwards.
//
// Slices are never modified by the transport; multi-byte values are staged
// into a scratch buffer in the requested byte order before hitting the
// wire.
type DataFormat interface {
	dataFormat()
}

// U8 is a slice of bytes.
type U8 []byte

// U16 is a slice of 16-bit words sent in the host's native byte order.
type U16 []uint16

// U16BE is a slice of 16-bit words sent big endian.
type U16BE []uint16

// U16LE is a slice of 16-bit words sent little endian.
type U16LE []uint16

// U8Iter yields bytes one at a time.
type U8Iter func() (byte, bool)

// U16BEIter yields 16-bit words sent big endian.
type U16BEIter func() (uint16, bool)

// U16LEIter yields 16-bit words sent little endian.
type U16LEIter func() (uint16, bool)

func (U8) dataFormat()        {}
func (U16) dataFormat()       {}
func (U16BE) dataFormat()     {}
func (U16LE) dataFormat()     {}
func (U8Iter) dataFormat()    {}
func (U16BEIter) dataFormat() {}
func (U16LEIter) dataFormat() {}
