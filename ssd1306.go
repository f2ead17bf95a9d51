// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Dev is an open handle to the display controller, exposing the raw
// positioning and drawing primitives shared by all modes.
//
// A Dev starts in page addressing mode with the panel asleep; call Init
// before drawing. For a framebuffer or a text surface, hand the Dev to
// NewBufferedGraphics or NewTerminal; the wrapper takes ownership and the
// Dev must not be used directly afterwards.
type Dev struct {
	di       Interface
	size     Size
	addrMode AddrMode
	rotation Rotation
}

// New returns a Dev controlling the panel described by size through di.
//
// The controller is not touched; call Init to configure and wake it.
func New(di Interface, size Size, rotation Rotation) (*Dev, error) {
	if size.DriverCols == 0 {
		size.DriverCols = driverCols
	}
	if size.W < 8 || size.W > size.DriverCols || size.W&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", size.W)
	}
	if size.H < 8 || size.H > 64 || size.H&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", size.H)
	}
	if size.W+size.ColOffset > size.DriverCols {
		return nil, fmt.Errorf("ssd1306: width %d does not fit at column offset %d", size.W, size.ColOffset)
	}
	return &Dev{di: di, size: size, addrMode: AddrModePage, rotation: rotation}, nil
}

// cmdSender sequences commands, latching the first error.
type cmdSender struct {
	di  Interface
	err error
}

func (s *cmdSender) send(c command) {
	if s.err != nil {
		return
	}
	s.err = c.send(s.di)
}

// Init configures the controller for the panel and powers it on, leaving
// the write pointer in the given addressing mode.
//
// Display RAM is not cleared and holds noise after power up; clear it
// before switching the panel on for longer than a blink.
func (d *Dev) Init(mode AddrMode) error {
	s := &cmdSender{di: d.di}
	s.send(cmdDisplayOn(false))
	s.send(cmdDisplayClockDiv(0x8, 0x0))
	s.send(cmdMultiplex(byte(d.size.H - 1)))
	s.send(cmdDisplayOffset(0))
	s.send(cmdStartLine(0))
	s.send(cmdChargePump(true))
	s.send(cmdAddressMode(mode))
	s.send(d.size.comPinConfig())
	if d.size.InternalIref {
		s.send(cmdInternalIref(true, true))
	}
	d.sendRotation(s, d.rotation)
	d.sendBrightness(s, BrightnessNormal)
	s.send(cmdVcomhDeselect(vcomhAuto))
	s.send(cmdAllOn(false))
	s.send(cmdInvert(false))
	s.send(cmdEnableScroll(false))
	s.send(cmdDisplayOn(true))
	if s.err != nil {
		return s.err
	}
	d.addrMode = mode
	return nil
}

// Dimensions returns the panel size in the rotated frame, so width and
// height read swapped at 90° and 270°.
func (d *Dev) Dimensions() (w, h int) {
	if d.rotation.swapsAxes() {
		return d.size.H, d.size.W
	}
	return d.size.W, d.size.H
}

// Rotation returns the active rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

func (d *Dev) sendRotation(s *cmdSender, r Rotation) {
	segRemap, comReverse := r.remapPair()
	s.send(cmdSegmentRemap(segRemap))
	s.send(cmdReverseComDir(comReverse))
}

// SetRotation changes the rotation. Pixels already on the panel are
// remapped in place; anything drawn afterwards uses the new frame.
func (d *Dev) SetRotation(r Rotation) error {
	d.rotation = r
	s := &cmdSender{di: d.di}
	d.sendRotation(s, r)
	return s.err
}

// SetMirror mirrors the output horizontally relative to the active
// rotation. Switching it off restores the plain rotation mapping.
func (d *Dev) SetMirror(on bool) error {
	if !on {
		return d.SetRotation(d.rotation)
	}
	segRemap, comReverse := d.rotation.mirrorPair()
	s := &cmdSender{di: d.di}
	s.send(cmdSegmentRemap(segRemap))
	s.send(cmdReverseComDir(comReverse))
	return s.err
}

func (d *Dev) sendBrightness(s *cmdSender, b Brightness) {
	s.send(cmdPreChargePeriod(1, b.precharge))
	s.send(cmdContrast(b.contrast))
}

// SetBrightness changes the perceived brightness by adjusting the
// pre-charge period and contrast together.
func (d *Dev) SetBrightness(b Brightness) error {
	if b.precharge < 1 || b.precharge > 15 {
		return errors.New("ssd1306: pre-charge period must be between 1 and 15")
	}
	s := &cmdSender{di: d.di}
	d.sendBrightness(s, b)
	return s.err
}

// SetDisplayOn wakes the panel, or puts it to sleep when on is false.
// Display RAM is retained while asleep.
func (d *Dev) SetDisplayOn(on bool) error {
	return cmdDisplayOn(on).send(d.di)
}

// SetInverted renders RAM zeroes lit and ones dark when on.
func (d *Dev) SetInverted(on bool) error {
	return cmdInvert(on).send(d.di)
}

// SetAddrMode changes the memory addressing mode.
func (d *Dev) SetAddrMode(mode AddrMode) error {
	if err := cmdAddressMode(mode).send(d.di); err != nil {
		return err
	}
	d.addrMode = mode
	return nil
}

// pageOf converts a pixel row to its 8 pixel page index.
func pageOf(row int) (byte, error) {
	if row < 0 || row > 63 {
		return 0, fmt.Errorf("%w: row %d has no page", ErrOutOfBounds, row)
	}
	return byte(row / 8), nil
}

// SetDrawArea bounds the RAM window that subsequent Draw calls fill, in
// unrotated panel coordinates. start is inclusive, end exclusive. The
// page window is only programmed outside page addressing mode, where the
// controller ignores it.
func (d *Dev) SetDrawArea(start, end image.Point) error {
	endCol := end.X - 1
	if endCol < 0 {
		endCol = 0
	}
	if err := cmdColumnAddress(byte(start.X), byte(endCol)).send(d.di); err != nil {
		return err
	}
	if d.addrMode == AddrModePage {
		return nil
	}
	endRow := end.Y - 1
	if endRow < 0 {
		endRow = 0
	}
	startPage, err := pageOf(start.Y)
	if err != nil {
		return err
	}
	endPage, err := pageOf(endRow)
	if err != nil {
		return err
	}
	return cmdPageAddress(startPage, endPage).send(d.di)
}

// SetColumn moves the write pointer to the given RAM column for page
// addressing mode.
func (d *Dev) SetColumn(col int) error {
	return cmdColStart(byte(col)).send(d.di)
}

// SetRow moves the write pointer to the page holding the given RAM row
// for page addressing mode.
func (d *Dev) SetRow(row int) error {
	page, err := pageOf(row)
	if err != nil {
		return err
	}
	return cmdPageStart(page).send(d.di)
}

// Draw writes raw RAM bytes at the current write pointer, which advances
// according to the addressing mode. Each byte covers 8 vertical pixels,
// least significant bit on top. Use SetDrawArea to bound the area filled.
func (d *Dev) Draw(pixels []byte) error {
	return d.di.SendData(U8(pixels))
}

// BoundedDraw writes the window of buf between upperLeft and lowerRight,
// one data transaction per 8 pixel page band. stride is buf's page width
// in bytes. lowerRight.X is exclusive; lowerRight.Y is the last covered
// pixel row. The draw area must have been set to match.
func (d *Dev) BoundedDraw(buf []byte, stride int, upperLeft, lowerRight image.Point) error {
	return flushChunks(d.di, buf, stride, upperLeft, lowerRight)
}

// flushChunks slices buf into 8 row page bands between the y bounds and
// writes each band's x range as one data transaction.
func flushChunks(di Interface, buf []byte, stride int, upperLeft, lowerRight image.Point) error {
	pages := (lowerRight.Y-upperLeft.Y)/8 + 1
	startPage := upperLeft.Y / 8
	for p := 0; p < pages; p++ {
		off := (startPage + p) * stride
		if off >= len(buf) {
			break
		}
		band := buf[off:min(off+stride, len(buf))]
		if err := di.SendData(U8(band[upperLeft.X:lowerRight.X])); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the display RAM covered by the logical frame.
func (d *Dev) Clear() error {
	w, h := d.Dimensions()
	if err := d.SetDrawArea(image.Point{}, image.Point{X: w, Y: h}); err != nil {
		return err
	}
	return d.Draw(make([]byte, w*h/8))
}

// colOffset returns the RAM column of the frame's first column under the
// active rotation. Remapped rotations count from the far edge of the
// driver RAM, which matters on panels narrower than it.
func (d *Dev) colOffset() int {
	switch d.rotation {
	case Rotate0, Rotate270:
		return d.size.ColOffset
	default: // Rotate90, Rotate180
		return d.size.DriverCols - d.size.W - d.size.ColOffset
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.size.W, d.size.H)
}

// Halt turns the panel off, implementing conn.Resource. Display RAM is
// retained; SetDisplayOn(true) brings the content back.
func (d *Dev) Halt() error {
	return d.SetDisplayOn(false)
}

// Reset pulses a display module's reset line. The controller state is
// lost; Init must run again afterwards.
func Reset(rst gpio.PinOut) error {
	if err := rst.Out(gpio.High); err != nil {
		return wrap(ErrResetPin, err)
	}
	time.Sleep(time.Millisecond)
	if err := rst.Out(gpio.Low); err != nil {
		return wrap(ErrResetPin, err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := rst.Out(gpio.High); err != nil {
		return wrap(ErrResetPin, err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
