// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Controller opcodes. See the SSD1306 datasheet, section 9.
const (
	opLowerColStart   byte = 0x00
	opUpperColStart   byte = 0x10
	opAddressMode     byte = 0x20
	opColumnAddress   byte = 0x21
	opPageAddress     byte = 0x22
	opHScrollSetup    byte = 0x26
	opVHScrollSetup   byte = 0x28
	opEnableScroll    byte = 0x2E
	opStartLine       byte = 0x40
	opContrast        byte = 0x81
	opChargePump      byte = 0x8D
	opSegmentRemap    byte = 0xA0
	opVScrollArea     byte = 0xA3
	opAllOn           byte = 0xA4
	opInvert          byte = 0xA6
	opMultiplex       byte = 0xA8
	opInternalIref    byte = 0xAD
	opDisplayOn       byte = 0xAE
	opPageStart       byte = 0xB0
	opReverseComDir   byte = 0xC0
	opDisplayOffset   byte = 0xD3
	opDisplayClockDiv byte = 0xD5
	opPreCharge       byte = 0xD9
	opComPinConfig    byte = 0xDA
	opVcomhDeselect   byte = 0xDB
	opNoop            byte = 0xE3
)

// AddrMode selects how the controller's write pointer advances across
// display RAM after each data byte.
type AddrMode byte

const (
	// AddrModeHorizontal advances across columns, wrapping to the next
	// page at the end of the addressed window.
	AddrModeHorizontal AddrMode = 0x00
	// AddrModeVertical advances down pages, wrapping to the next column.
	AddrModeVertical AddrMode = 0x01
	// AddrModePage advances across columns within one page and wraps back
	// to the page's start column. This is the power-on reset mode.
	AddrModePage AddrMode = 0x02
)

// vcomhLevel is the VCOMH regulator deselect level.
type vcomhLevel byte

const (
	vcomh065  vcomhLevel = 0x1 // 0.65 x Vcc
	vcomh077  vcomhLevel = 0x2 // 0.77 x Vcc
	vcomh083  vcomhLevel = 0x3 // 0.83 x Vcc
	vcomhAuto vcomhLevel = 0x4
)

// Horizontal scroll directions, encoded as opcode offsets.
const (
	scrollRight byte = 0x0
	scrollLeft  byte = 0x1
)

// Combined vertical and horizontal scroll directions.
const (
	scrollVerticalRight byte = 0x1
	scrollVerticalLeft  byte = 0x2
)

// command is one controller command with its arguments, at most 7 bytes on
// the wire.
type command struct {
	buf [7]byte
	n   int
}

func cmd(b ...byte) command {
	c := command{n: len(b)}
	copy(c.buf[:], b)
	return c
}

// send writes the encoded command through di as a single transaction.
func (c command) send(di Interface) error {
	return di.SendCommands(U8(c.buf[:c.n]))
}

func bit(on bool) byte {
	if on {
		return 1
	}
	return 0
}

// cmdAddressMode sets the memory addressing mode.
func cmdAddressMode(m AddrMode) command {
	return cmd(opAddressMode, byte(m))
}

// cmdColumnAddress sets the column window, both bounds inclusive. Only
// honored in horizontal and vertical addressing modes.
func cmdColumnAddress(start, end byte) command {
	return cmd(opColumnAddress, start, end)
}

// cmdPageAddress sets the page window, both bounds inclusive. Only honored
// in horizontal and vertical addressing modes.
func cmdPageAddress(start, end byte) command {
	return cmd(opPageAddress, start&7, end&7)
}

// cmdPageStart sets the current page for page addressing mode.
func cmdPageStart(page byte) command {
	return cmd(opPageStart | page&7)
}

// cmdLowerColStart sets the low nibble of the column start for page
// addressing mode.
func cmdLowerColStart(nibble byte) command {
	return cmd(opLowerColStart | nibble&0xF)
}

// cmdUpperColStart sets the high nibble of the column start for page
// addressing mode.
func cmdUpperColStart(nibble byte) command {
	return cmd(opUpperColStart | nibble&0xF)
}

// cmdColStart sets both nibbles of the column start in one transaction.
func cmdColStart(col byte) command {
	return cmd(opLowerColStart|col&0xF, opUpperColStart|col>>4&0xF)
}

// cmdStartLine maps RAM line 0..63 to the panel's top row.
func cmdStartLine(line byte) command {
	return cmd(opStartLine | line&0x3F)
}

// cmdContrast sets the contrast, 0x00 to 0xFF.
func cmdContrast(v byte) command {
	return cmd(opContrast, v)
}

// cmdAllOn lights every pixel regardless of RAM content when on.
func cmdAllOn(on bool) command {
	return cmd(opAllOn | bit(on))
}

// cmdInvert renders RAM zeroes lit and ones dark when on.
func cmdInvert(on bool) command {
	return cmd(opInvert | bit(on))
}

// cmdMultiplex sets the multiplex ratio, the number of driven rows minus
// one.
func cmdMultiplex(ratio byte) command {
	return cmd(opMultiplex, ratio)
}

// cmdDisplayOn wakes the panel, or puts it to sleep when off.
func cmdDisplayOn(on bool) command {
	return cmd(opDisplayOn | bit(on))
}

// cmdSegmentRemap maps column address 127 to SEG0 when remap is set,
// flipping the output horizontally.
func cmdSegmentRemap(remap bool) command {
	return cmd(opSegmentRemap | bit(remap))
}

// cmdReverseComDir scans COM outputs from COM[N-1] to COM0 when reverse is
// set, flipping the output vertically.
func cmdReverseComDir(reverse bool) command {
	return cmd(opReverseComDir | bit(reverse)<<3)
}

// cmdDisplayOffset shifts the COM output mapping by v lines.
func cmdDisplayOffset(v byte) command {
	return cmd(opDisplayOffset, v)
}

// cmdComPinConfig selects the COM pin wiring: alternative assignment and
// left/right remap.
func cmdComPinConfig(alt, leftRightRemap bool) command {
	return cmd(opComPinConfig, 0x02|bit(alt)<<4|bit(leftRightRemap)<<5)
}

// cmdDisplayClockDiv sets the oscillator frequency (upper nibble) and the
// display clock divide ratio (lower nibble, ratio minus one).
func cmdDisplayClockDiv(oscFreq, divideRatio byte) command {
	return cmd(opDisplayClockDiv, oscFreq&0xF<<4|divideRatio&0xF)
}

// cmdPreChargePeriod sets the pre-charge phase 1 and phase 2 periods in
// clock cycles.
func cmdPreChargePeriod(phase1, phase2 byte) command {
	return cmd(opPreCharge, phase2&0xF<<4|phase1&0xF)
}

// cmdVcomhDeselect sets the VCOMH regulator deselect level.
func cmdVcomhDeselect(level vcomhLevel) command {
	return cmd(opVcomhDeselect, byte(level)<<4)
}

// cmdChargePump enables the internal charge pump regulator. The panel must
// be off when this is issued.
func cmdChargePump(enable bool) command {
	return cmd(opChargePump, 0x10|bit(enable)<<2)
}

// cmdInternalIref selects the internal current reference, optionally at
// the higher 30µA level.
func cmdInternalIref(high, enable bool) command {
	return cmd(opInternalIref, bit(high)<<5|bit(enable)<<4)
}

// cmdNoop does nothing.
func cmdNoop() command {
	return cmd(opNoop)
}

// cmdEnableScroll starts the configured scroll when on. RAM writes while
// scrolling corrupt the panel; stop scrolling first.
func cmdEnableScroll(on bool) command {
	return cmd(opEnableScroll | bit(on))
}

// cmdHScrollSetup configures horizontal scrolling of the page band
// startPage..endPage inclusive. interval is the frame interval code, 0..7.
func cmdHScrollSetup(dir, startPage, endPage, interval byte) command {
	return cmd(opHScrollSetup|dir&1, 0x00, startPage&7, interval&7, endPage&7, 0x00, 0xFF)
}

// cmdVHScrollSetup configures combined vertical and horizontal scrolling,
// shifting rowOffset lines per step.
func cmdVHScrollSetup(dir, startPage, endPage, interval, rowOffset byte) command {
	return cmd(opVHScrollSetup|dir&3, 0x00, startPage&7, interval&7, endPage&7, rowOffset&0x3F)
}

// cmdVScrollArea reserves fixedRows top rows and scrolls the scrollRows
// below them.
func cmdVScrollArea(fixedRows, scrollRows byte) command {
	return cmd(opVScrollArea, fixedRows&0x3F, scrollRows&0x7F)
}
