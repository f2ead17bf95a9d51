// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) 2D
// graphics in the vertically packed layout monochrome OLED and LCD
// controllers consume directly.
//
// It is compatible with packages image and image/draw.
package image1bit

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color model for Bit.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// convertBit returns a Bit from any color: On when the luminosity is at
// least 50%.
func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, b, _ := c.RGBA()
		// Values are on 16 bits.
		y := (299*r + 587*g + 114*b) / 1000
		return Bit(y >= 0x8000)
	}
}

// VerticalLSB is a 1 bit per pixel image with pixels packed vertically,
// least significant bit closest to the top.
//
// This is the SSD1306's native RAM layout: byte x of page p holds rows
// 8p to 8p+7 of column x, so a full frame can be sent to the controller
// without transformation.
type VerticalLSB struct {
	// Pix holds the image's pixels. Page p, column x is at
	// Pix[p*Stride+x]; the row within the page selects the bit.
	Pix []byte
	// Stride is the Pix offset between vertically adjacent pages.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an image covering r. The vertical extent is
// rounded out to whole 8 pixel pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	bandY := r.Min.Y &^ 7
	pages := ((r.Max.Y + 7) &^ 7) - bandY
	return &VerticalLSB{
		Pix:    make([]byte, w*pages/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the Bit version of At.
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Opaque scans the image and reports whether it is fully opaque. It
// always is.
func (i *VerticalLSB) Opaque() bool {
	return true
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the Bit version of Set. Out of bounds coordinates are
// ignored.
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// DrawHLine draws a horizontal line on row y from x1 to x2 exclusive.
func (i *VerticalLSB) DrawHLine(x1, x2, y int, b Bit) {
	for x := x1; x < x2; x++ {
		i.SetBit(x, y, b)
	}
}

// DrawVLine draws a vertical line on column x from y1 to y2 exclusive.
func (i *VerticalLSB) DrawVLine(y1, y2, x int, b Bit) {
	for y := y1; y < y2; y++ {
		i.SetBit(x, y, b)
	}
}

// pixOffset returns the byte index and bit mask addressing (x, y).
func (i *VerticalLSB) pixOffset(x, y int) (int, byte) {
	pY := y - (i.Rect.Min.Y &^ 7)
	return (pY/8)*i.Stride + (x - i.Rect.Min.X), 1 << uint(pY&7)
}

var _ draw.Image = &VerticalLSB{}
