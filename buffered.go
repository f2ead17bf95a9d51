// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"

	"github.com/kalkyl/ssd1306-async/image1bit"
)

// BufferedGraphics is a drawing surface over a Dev: pixels accumulate in
// an in-memory framebuffer and Flush sends only the bytes covering what
// changed since the previous Flush.
//
// It implements display.Drawer; Draw pushes its pixels to the panel before
// returning. For hand rolled rendering use SetPixel and Flush directly.
type BufferedGraphics struct {
	dev *Dev
	buf *image1bit.VerticalLSB

	// Dirty window in the rotated frame, both bounds inclusive. Empty
	// while max < min on either axis.
	minX, minY int
	maxX, maxY int
}

// NewBufferedGraphics wraps d with a framebuffer sized for its panel.
//
// It takes ownership of d; d must not be used directly afterwards.
func NewBufferedGraphics(d *Dev) *BufferedGraphics {
	g := &BufferedGraphics{
		dev: d,
		// The buffer stays in panel orientation; rotation is applied
		// when pixels are set.
		buf: image1bit.NewVerticalLSB(image.Rect(0, 0, d.size.W, d.size.H)),
	}
	g.resetDirty()
	return g
}

func (g *BufferedGraphics) resetDirty() {
	g.minX, g.minY = 255, 255
	g.maxX, g.maxY = 0, 0
}

func (g *BufferedGraphics) markDirty(r image.Rectangle) {
	if r.Min.X < g.minX {
		g.minX = r.Min.X
	}
	if r.Min.Y < g.minY {
		g.minY = r.Min.Y
	}
	if r.Max.X-1 > g.maxX {
		g.maxX = r.Max.X - 1
	}
	if r.Max.Y-1 > g.maxY {
		g.maxY = r.Max.Y - 1
	}
}

// Init clears the framebuffer and initializes the display in horizontal
// addressing mode. The first Flush afterwards blanks the panel's power-on
// noise.
func (g *BufferedGraphics) Init() error {
	g.Clear()
	return g.dev.Init(AddrModeHorizontal)
}

// Clear blanks the framebuffer and marks the whole frame dirty. The panel
// itself is untouched until Flush.
func (g *BufferedGraphics) Clear() {
	for i := range g.buf.Pix {
		g.buf.Pix[i] = 0
	}
	w, h := g.dev.Dimensions()
	g.markDirty(image.Rect(0, 0, w, h))
}

// SetPixel turns the pixel at (x, y) in the rotated frame on or off. Out
// of bounds coordinates are ignored.
func (g *BufferedGraphics) SetPixel(x, y int, on bool) {
	w, h := g.dev.Dimensions()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	if g.dev.rotation.swapsAxes() {
		g.buf.SetBit(y, x, image1bit.Bit(on))
	} else {
		g.buf.SetBit(x, y, image1bit.Bit(on))
	}
	if x < g.minX {
		g.minX = x
	}
	if x > g.maxX {
		g.maxX = x
	}
	if y < g.minY {
		g.minY = y
	}
	if y > g.maxY {
		g.maxY = y
	}
}

// Pixel reports whether the pixel at (x, y) in the rotated frame is on.
func (g *BufferedGraphics) Pixel(x, y int) bool {
	if g.dev.rotation.swapsAxes() {
		return bool(g.buf.BitAt(y, x))
	}
	return bool(g.buf.BitAt(x, y))
}

// Flush sends the dirty window to the panel, one transaction per 8 pixel
// page band. It is a no-op when nothing changed since the previous call.
func (g *BufferedGraphics) Flush() error {
	if g.maxX < g.minX || g.maxY < g.minY {
		return nil
	}
	w, h := g.dev.Dimensions()

	// Pages are 8 pixels tall, so the bound along the panel's vertical
	// axis widens to the page edge while the other stays exact.
	minX, minY := g.minX, g.minY
	var maxX, maxY int
	if g.dev.rotation.swapsAxes() {
		maxX = min(g.maxX|7, w)
		maxY = min(g.maxY+1, h)
	} else {
		maxX = min(g.maxX+1, w)
		maxY = min(g.maxY|7, h)
	}
	g.resetDirty()

	colOff := g.dev.colOffset()
	rowOff := g.dev.size.RowOffset
	if g.dev.rotation.swapsAxes() {
		if err := g.dev.SetDrawArea(
			image.Point{X: minY + colOff, Y: minX + rowOff},
			image.Point{X: maxY + colOff, Y: maxX + rowOff},
		); err != nil {
			return err
		}
		return flushChunks(g.dev.di, g.buf.Pix, h,
			image.Point{X: minY, Y: minX},
			image.Point{X: maxY, Y: maxX})
	}
	if err := g.dev.SetDrawArea(
		image.Point{X: minX + colOff, Y: minY + rowOff},
		image.Point{X: maxX + colOff, Y: maxY + rowOff},
	); err != nil {
		return err
	}
	return flushChunks(g.dev.di, g.buf.Pix, w,
		image.Point{X: minX, Y: minY},
		image.Point{X: maxX, Y: maxY})
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (g *BufferedGraphics) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (g *BufferedGraphics) Bounds() image.Rectangle {
	w, h := g.dev.Dimensions()
	return image.Rect(0, 0, w, h)
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns the changed window
// has been flushed to the panel. On a slow bus (I²C) it may be preferable
// to defer Draw calls to a background goroutine.
func (g *BufferedGraphics) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(g.Bounds())
	if r.Empty() {
		return nil
	}
	if !g.dev.rotation.swapsAxes() {
		// Buffer and frame share an orientation; let the image
		// package clip and convert.
		draw.Src.Draw(g.buf, r, src, sp)
		g.markDirty(r)
	} else {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
				g.SetPixel(x, y, bool(image1bit.BitModel.Convert(c).(image1bit.Bit)))
			}
		}
	}
	return g.Flush()
}

// Write accepts a full frame in the panel's native layout, the content of
// an image1bit.VerticalLSB covering Bounds, and flushes it. It implements
// io.Writer the same way a file backed framebuffer would.
func (g *BufferedGraphics) Write(pixels []byte) (int, error) {
	if len(pixels) != len(g.buf.Pix) {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", len(g.buf.Pix), len(pixels))
	}
	copy(g.buf.Pix, pixels)
	w, h := g.dev.Dimensions()
	g.markDirty(image.Rect(0, 0, w, h))
	if err := g.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Dimensions returns the frame size under the active rotation.
func (g *BufferedGraphics) Dimensions() (w, h int) {
	return g.dev.Dimensions()
}

// Rotation returns the active rotation.
func (g *BufferedGraphics) Rotation() Rotation {
	return g.dev.Rotation()
}

// SetRotation changes the rotation. Framebuffer content is not remapped;
// redraw and Flush after changing it.
func (g *BufferedGraphics) SetRotation(r Rotation) error {
	return g.dev.SetRotation(r)
}

// SetMirror mirrors the output horizontally relative to the rotation.
func (g *BufferedGraphics) SetMirror(on bool) error {
	return g.dev.SetMirror(on)
}

// SetBrightness changes the perceived panel brightness.
func (g *BufferedGraphics) SetBrightness(b Brightness) error {
	return g.dev.SetBrightness(b)
}

// SetDisplayOn wakes or sleeps the panel. The framebuffer and the panel
// RAM are retained.
func (g *BufferedGraphics) SetDisplayOn(on bool) error {
	return g.dev.SetDisplayOn(on)
}

// SetInverted renders RAM zeroes lit and ones dark when on.
func (g *BufferedGraphics) SetInverted(on bool) error {
	return g.dev.SetInverted(on)
}

func (g *BufferedGraphics) String() string {
	w, h := g.dev.Dimensions()
	return fmt.Sprintf("ssd1306.BufferedGraphics{%dx%d}", w, h)
}

// Halt turns the panel off, implementing conn.Resource.
func (g *BufferedGraphics) Halt() error {
	return g.dev.Halt()
}

var _ display.Drawer = &BufferedGraphics{}
var _ conn.Resource = &BufferedGraphics{}
