// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommandEncoding(t *testing.T) {
	tests := []struct {
		name string
		c    command
		want []byte
	}{
		{"AddressModeHorizontal", cmdAddressMode(AddrModeHorizontal), []byte{0x20, 0x00}},
		{"AddressModeVertical", cmdAddressMode(AddrModeVertical), []byte{0x20, 0x01}},
		{"AddressModePage", cmdAddressMode(AddrModePage), []byte{0x20, 0x02}},
		{"ColumnAddress", cmdColumnAddress(5, 90), []byte{0x21, 0x05, 0x5A}},
		{"PageAddress", cmdPageAddress(1, 7), []byte{0x22, 0x01, 0x07}},
		{"PageStart", cmdPageStart(3), []byte{0xB3}},
		{"PageStartMasked", cmdPageStart(9), []byte{0xB1}},
		{"LowerColStart", cmdLowerColStart(0xF), []byte{0x0F}},
		{"UpperColStart", cmdUpperColStart(0x3), []byte{0x13}},
		{"ColStart", cmdColStart(0x7B), []byte{0x0B, 0x17}},
		{"ColStartZero", cmdColStart(0), []byte{0x00, 0x10}},
		{"StartLineZero", cmdStartLine(0), []byte{0x40}},
		{"StartLine", cmdStartLine(25), []byte{0x59}},
		{"StartLineMasked", cmdStartLine(64), []byte{0x40}},
		{"Contrast", cmdContrast(0x5F), []byte{0x81, 0x5F}},
		{"AllOnOff", cmdAllOn(false), []byte{0xA4}},
		{"AllOnOn", cmdAllOn(true), []byte{0xA5}},
		{"InvertOff", cmdInvert(false), []byte{0xA6}},
		{"InvertOn", cmdInvert(true), []byte{0xA7}},
		{"Multiplex", cmdMultiplex(0x3F), []byte{0xA8, 0x3F}},
		{"DisplayOff", cmdDisplayOn(false), []byte{0xAE}},
		{"DisplayOn", cmdDisplayOn(true), []byte{0xAF}},
		{"SegmentRemapOff", cmdSegmentRemap(false), []byte{0xA0}},
		{"SegmentRemapOn", cmdSegmentRemap(true), []byte{0xA1}},
		{"ReverseComDirOff", cmdReverseComDir(false), []byte{0xC0}},
		{"ReverseComDirOn", cmdReverseComDir(true), []byte{0xC8}},
		{"DisplayOffset", cmdDisplayOffset(5), []byte{0xD3, 0x05}},
		{"ComPinsSequential", cmdComPinConfig(false, false), []byte{0xDA, 0x02}},
		{"ComPinsAlternative", cmdComPinConfig(true, false), []byte{0xDA, 0x12}},
		{"ComPinsRemapped", cmdComPinConfig(false, true), []byte{0xDA, 0x22}},
		{"ComPinsBoth", cmdComPinConfig(true, true), []byte{0xDA, 0x32}},
		{"DisplayClockDiv", cmdDisplayClockDiv(0x8, 0x0), []byte{0xD5, 0x80}},
		{"PreChargePeriod", cmdPreChargePeriod(0x1, 0x2), []byte{0xD9, 0x21}},
		{"PreChargePeriodMax", cmdPreChargePeriod(0x2, 0xF), []byte{0xD9, 0xF2}},
		{"Vcomh065", cmdVcomhDeselect(vcomh065), []byte{0xDB, 0x10}},
		{"Vcomh077", cmdVcomhDeselect(vcomh077), []byte{0xDB, 0x20}},
		{"Vcomh083", cmdVcomhDeselect(vcomh083), []byte{0xDB, 0x30}},
		{"VcomhAuto", cmdVcomhDeselect(vcomhAuto), []byte{0xDB, 0x40}},
		{"ChargePumpOn", cmdChargePump(true), []byte{0x8D, 0x14}},
		{"ChargePumpOff", cmdChargePump(false), []byte{0x8D, 0x10}},
		{"InternalIrefOn", cmdInternalIref(true, true), []byte{0xAD, 0x30}},
		{"InternalIrefLow", cmdInternalIref(false, true), []byte{0xAD, 0x10}},
		{"InternalIrefOff", cmdInternalIref(false, false), []byte{0xAD, 0x00}},
		{"Noop", cmdNoop(), []byte{0xE3}},
		{"EnableScrollOff", cmdEnableScroll(false), []byte{0x2E}},
		{"EnableScrollOn", cmdEnableScroll(true), []byte{0x2F}},
		{"HScrollRight", cmdHScrollSetup(scrollRight, 0, 7, 7), []byte{0x26, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF}},
		{"HScrollLeft", cmdHScrollSetup(scrollLeft, 2, 5, 0), []byte{0x27, 0x00, 0x02, 0x00, 0x05, 0x00, 0xFF}},
		{"VHScrollRight", cmdVHScrollSetup(scrollVerticalRight, 0, 7, 0, 1), []byte{0x29, 0x00, 0x00, 0x00, 0x07, 0x01}},
		{"VHScrollLeft", cmdVHScrollSetup(scrollVerticalLeft, 1, 3, 6, 8), []byte{0x2A, 0x00, 0x01, 0x06, 0x03, 0x08}},
		{"VScrollArea", cmdVScrollArea(16, 40), []byte{0xA3, 0x10, 0x28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.buf[:tt.c.n]
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("unexpected encoding (-got +want):\n%s", diff)
			}
		})
	}
}

func TestCommandSend(t *testing.T) {
	di := &fakeInterface{}
	if err := cmdContrast(0x42).send(di); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{0x81, 0x42}}
	if diff := cmp.Diff(di.cmds, want); diff != "" {
		t.Errorf("unexpected command stream (-got +want):\n%s", diff)
	}
	if len(di.data) != 0 {
		t.Errorf("commands must not reach the data channel, got %d writes", len(di.data))
	}
}
