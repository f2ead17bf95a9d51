// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a display.Drawer that outputs to terminal
// (stdout) using ANSI color codes, one block character per pixel.
//
// Useful to exercise rendering code while you are waiting for your OLED
// panel to come by mail.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	W int
	H int
	// Palette converts colors to ANSI escapes. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette
	// Out is the destination terminal. Defaults to a colorable stdout.
	Out io.Writer

	_ struct{}
}

// Dev is a 2D display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	pixels []color.NRGBA
	buf    bytes.Buffer
	drawn  bool
}

// New returns a Dev that displays at the console.
//
// Permits local testing of display animations.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		bounds:  image.Rect(0, 0, opts.W, opts.H),
		palette: *p,
		pixels:  make([]color.NRGBA, opts.W*opts.H),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.bounds.Max.X, d.bounds.Max.Y)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a stream of raw RGB pixels for a full frame and writes it
// to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != 3*len(d.pixels) {
		return 0, errors.New("invalid RGB stream length")
	}
	for i := range d.pixels {
		d.pixels[i] = color.NRGBA{R: pixels[3*i], G: pixels[3*i+1], B: pixels[3*i+2], A: 255}
	}
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)
	w := d.bounds.Max.X
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			r16, g16, b16, _ := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y).RGBA()
			d.pixels[y*w+x] = color.NRGBA{R: byte(r16 >> 8), G: byte(g16 >> 8), B: byte(b16 >> 8), A: 255}
		}
	}
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.drawn {
		// Move back up over the previous frame and redraw in place.
		fmt.Fprintf(&d.buf, "\033[%dA", d.bounds.Max.Y)
	}
	w := d.bounds.Max.X
	for y := 0; y < d.bounds.Max.Y; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < w; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.pixels[y*w+x]))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
