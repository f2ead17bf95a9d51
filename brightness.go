// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Brightness pairs the pre-charge period and contrast level that together
// set the perceived panel brightness.
type Brightness struct {
	precharge byte
	contrast  byte
}

// Brightness presets, dimmest to brightest.
var (
	BrightnessDimmest   = NewBrightness(0x1, 0x00)
	BrightnessDim       = NewBrightness(0x2, 0x2F)
	BrightnessNormal    = NewBrightness(0x2, 0x5F)
	BrightnessBright    = NewBrightness(0x2, 0x9F)
	BrightnessBrightest = NewBrightness(0x2, 0xFF)
)

// NewBrightness returns a custom brightness level. precharge is the phase
// 2 pre-charge period in clock cycles and must be in 1 to 15;
// SetBrightness rejects values outside that range.
func NewBrightness(precharge, contrast byte) Brightness {
	return Brightness{precharge: precharge, contrast: contrast}
}
