// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3"
)

// cursor tracks the write position on the character grid.
type cursor struct {
	col, row int
	w, h     int // grid size in characters
}

func newCursor(widthPx, heightPx int) *cursor {
	return &cursor{w: widthPx / 8, h: heightPx / 8}
}

// advance moves one cell right, wrapping to the next row and from the
// bottom right cell back to the top left.
func (c *cursor) advance() {
	c.col = (c.col + 1) % c.w
	if c.col == 0 {
		c.row = (c.row + 1) % c.h
	}
}

// advanceLine moves to the first cell of the next row, wrapping from the
// last row back to the top.
func (c *cursor) advanceLine() {
	c.row = (c.row + 1) % c.h
	c.col = 0
}

// Terminal renders text straight to the display in 8x8 character cells,
// without a framebuffer. The cursor walks the grid left to right, top to
// bottom, and wraps from the last cell back to the first; there is no
// scrollback.
//
// Init or Clear must run before printing; operations return
// ErrUninitialized otherwise.
type Terminal struct {
	dev *Dev
	cur *cursor // nil until Init or Clear
}

// NewTerminal wraps d as a text terminal.
//
// It takes ownership of d; d must not be used directly afterwards.
func NewTerminal(d *Dev) *Terminal {
	return &Terminal{dev: d}
}

// Init initializes the display in page addressing mode and homes the
// cursor. The screen content is not cleared; call Clear for that.
func (t *Terminal) Init() error {
	if err := t.dev.Init(AddrModePage); err != nil {
		return err
	}
	return t.resetPos()
}

// Clear blanks the screen and homes the cursor.
func (t *Terminal) Clear() error {
	// Let the chip handle line wrapping so the blanks can stream out
	// back to back.
	if err := t.dev.SetAddrMode(AddrModeHorizontal); err != nil {
		return err
	}
	colOff := t.dev.colOffset()
	rowOff := t.dev.size.RowOffset
	w, h := t.dev.size.W, t.dev.size.H
	if err := t.dev.SetDrawArea(
		image.Point{X: colOff, Y: rowOff},
		image.Point{X: w + colOff, Y: h + rowOff},
	); err != nil {
		return err
	}
	var blank [8]byte
	for i := 0; i < w*h/64; i++ {
		if err := t.dev.Draw(blank[:]); err != nil {
			return err
		}
	}
	// Back to per-cell positioning.
	if err := t.dev.SetAddrMode(AddrModePage); err != nil {
		return err
	}
	return t.resetPos()
}

// PrintChar renders one character at the cursor and advances it. '\n'
// moves to the start of the next row and '\r' to the start of the current
// row. Runes without a glyph render as a blank cell.
func (t *Terminal) PrintChar(r rune) error {
	cur, err := t.ensureCursor()
	if err != nil {
		return err
	}
	switch r {
	case '\n':
		cur.advanceLine()
		return t.SetPosition(cur.col, cur.row)
	case '\r':
		return t.SetPosition(0, cur.row)
	default:
		bitmap := charBitmap(r)
		if t.dev.rotation.swapsAxes() {
			bitmap = rotateGlyph(bitmap)
		}
		if err := t.dev.Draw(bitmap[:]); err != nil {
			return err
		}
		cur.advance()
		return t.SetPosition(cur.col, cur.row)
	}
}

// WriteString renders s one rune at a time. On error it returns the byte
// offset of the rune that failed.
func (t *Terminal) WriteString(s string) (int, error) {
	for i, r := range s {
		if err := t.PrintChar(r); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Write renders p one rune at a time, implementing io.Writer so the
// display works with fmt.Fprintf and friends.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.WriteString(string(p))
}

// Position returns the character cell the next print lands on.
func (t *Terminal) Position() (col, row int, err error) {
	cur, err := t.ensureCursor()
	if err != nil {
		return 0, 0, err
	}
	return cur.col, cur.row, nil
}

// SetPosition moves the cursor to the given character cell, (0, 0) being
// the top left. It fails with ErrOutOfBounds outside the grid; Dimensions
// divided by 8 gives the grid size.
func (t *Terminal) SetPosition(col, row int) error {
	cur, err := t.ensureCursor()
	if err != nil {
		return err
	}
	if col < 0 || row < 0 || col >= cur.w || row >= cur.h {
		return fmt.Errorf("%w: cell (%d, %d) outside the %dx%d grid", ErrOutOfBounds, col, row, cur.w, cur.h)
	}
	colOff := t.dev.colOffset()
	rowOff := t.dev.size.RowOffset
	var ramCol, ramRow int
	if t.dev.rotation.swapsAxes() {
		ramCol, ramRow = colOff+row*8, rowOff+col*8
	} else {
		ramCol, ramRow = colOff+col*8, rowOff+row*8
	}
	if err := t.dev.SetColumn(ramCol); err != nil {
		return err
	}
	if err := t.dev.SetRow(ramRow); err != nil {
		return err
	}
	cur.col, cur.row = col, row
	return nil
}

// resetPos rebuilds the grid for the active rotation and homes the
// cursor.
func (t *Terminal) resetPos() error {
	w, h := t.dev.Dimensions()
	t.cur = newCursor(w, h)
	return t.SetPosition(0, 0)
}

func (t *Terminal) ensureCursor() (*cursor, error) {
	if t.cur == nil {
		return nil, ErrUninitialized
	}
	return t.cur, nil
}

// Dimensions returns the display size in pixels under the active
// rotation.
func (t *Terminal) Dimensions() (w, h int) {
	return t.dev.Dimensions()
}

// Rotation returns the active rotation.
func (t *Terminal) Rotation() Rotation {
	return t.dev.Rotation()
}

// SetRotation changes the rotation, rebuilds the character grid and homes
// the cursor. The screen content is not cleared.
func (t *Terminal) SetRotation(r Rotation) error {
	if err := t.dev.SetRotation(r); err != nil {
		return err
	}
	return t.resetPos()
}

// SetBrightness changes the perceived panel brightness.
func (t *Terminal) SetBrightness(b Brightness) error {
	return t.dev.SetBrightness(b)
}

// SetMirror mirrors the output horizontally relative to the rotation.
func (t *Terminal) SetMirror(on bool) error {
	return t.dev.SetMirror(on)
}

// SetDisplayOn wakes or sleeps the panel. The content is retained.
func (t *Terminal) SetDisplayOn(on bool) error {
	return t.dev.SetDisplayOn(on)
}

func (t *Terminal) String() string {
	return fmt.Sprintf("ssd1306.Terminal{%dx%d}", t.dev.size.W, t.dev.size.H)
}

// Halt turns the panel off, implementing conn.Resource.
func (t *Terminal) Halt() error {
	return t.dev.Halt()
}

var _ conn.Resource = &Terminal{}
var _ io.Writer = &Terminal{}
var _ io.StringWriter = &Terminal{}
