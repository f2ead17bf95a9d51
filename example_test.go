// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	ssd1306 "github.com/kalkyl/ssd1306-async"
	"github.com/kalkyl/ssd1306-async/image1bit"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open a handle to the first available I²C bus:
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	// Open a handle to a ssd1306 connected on the I²C bus:
	di, err := ssd1306.NewI2C(bus, ssd1306.DefaultAddr)
	if err != nil {
		log.Fatal(err)
	}
	dev, err := ssd1306.New(di, ssd1306.Size128x64, ssd1306.Rotate0)
	if err != nil {
		log.Fatal(err)
	}
	disp := ssd1306.NewBufferedGraphics(dev)
	if err := disp.Init(); err != nil {
		log.Fatal(err)
	}
	defer disp.Halt()

	// Draw on it.
	w, h := disp.Dimensions()
	img := image1bit.NewVerticalLSB(disp.Bounds())
	img.DrawHLine(0, w, h>>1-1, image1bit.On)
	img.DrawVLine(0, h, w>>1-1, image1bit.On)
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: f,
		Dot:  fixed.P(0, img.Bounds().Dy()-1-f.Descent),
	}
	drawer.DrawString("Hello!")
	if err := disp.Draw(disp.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
}

func ExampleNewTerminal() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	di, err := ssd1306.NewI2C(bus, 0)
	if err != nil {
		log.Fatal(err)
	}
	dev, err := ssd1306.New(di, ssd1306.Size128x64, ssd1306.Rotate0)
	if err != nil {
		log.Fatal(err)
	}
	term := ssd1306.NewTerminal(dev)
	if err := term.Init(); err != nil {
		log.Fatal(err)
	}
	defer term.Halt()
	if err := term.Clear(); err != nil {
		log.Fatal(err)
	}

	// The terminal is an io.Writer, 16 characters by 8 lines at this
	// panel size.
	fmt.Fprintf(term, "%d lines of text\n", 8)
}

func ExampleNewSPIWithCS() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	port, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	dc := gpioreg.ByName("GPIO25")
	if dc == nil {
		log.Fatal("no D/C pin")
	}
	cs := gpioreg.ByName("GPIO8")
	if cs == nil {
		log.Fatal("no CS pin")
	}
	rst := gpioreg.ByName("GPIO24")
	if rst == nil {
		log.Fatal("no reset pin")
	}
	if err := ssd1306.Reset(rst); err != nil {
		log.Fatal(err)
	}

	di, err := ssd1306.NewSPIWithCS(port, dc, cs)
	if err != nil {
		log.Fatal(err)
	}
	dev, err := ssd1306.New(di, ssd1306.Size128x64, ssd1306.Rotate0)
	if err != nil {
		log.Fatal(err)
	}
	disp := ssd1306.NewBufferedGraphics(dev)
	if err := disp.Init(); err != nil {
		log.Fatal(err)
	}
	defer disp.Halt()

	disp.SetPixel(64, 32, true)
	if err := disp.Flush(); err != nil {
		log.Fatal(err)
	}
}
