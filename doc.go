// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls monochrome OLED panels driven by a SSD1306
// controller via I²C or 4-wire SPI.
//
// The controller has no readable state, so the driver is write-only: it
// mirrors whatever state matters on the host side. Construct a transport
// with NewI2C or NewSPI, wrap it in a Dev with New, then pick one of three
// access styles and stay with it:
//
//   - raw: Dev's positioning and drawing primitives, no host memory.
//   - buffered graphics: NewBufferedGraphics adds a framebuffer and sends
//     only the bytes covering what changed. Implements display.Drawer.
//   - terminal: NewTerminal renders text in 8x8 cells straight to the
//     panel, with cursor wrap.
//
// Rotation in 90° steps is handled by remapping the controller's scan
// order plus a transposed framebuffer layout, so it costs no time per
// frame.
//
// Some boards expose a RES pin; pulse it with Reset before Init if the
// controller can end up in a wedged state, such as after a brownout.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
