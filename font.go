// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// glyphBase is the first rune with a glyph; anything below it, and
// anything past '~', renders as a blank cell.
const glyphBase = '!'

// glyphs holds the 8x8 cell bitmaps for the printable ASCII range '!'
// through '~', one byte per column with the least significant bit at the
// top.
var glyphs = [...][8]byte{
	'!' - glyphBase:  {0x00, 0x00, 0x2f, 0x00, 0x00, 0x00, 0x00, 0x00},
	'"' - glyphBase:  {0x00, 0x03, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00},
	'#' - glyphBase:  {0x00, 0x12, 0x3f, 0x12, 0x12, 0x3f, 0x12, 0x00},
	'$' - glyphBase:  {0x00, 0x2e, 0x2a, 0x7f, 0x2a, 0x3a, 0x00, 0x00},
	'%' - glyphBase:  {0x00, 0x23, 0x13, 0x08, 0x04, 0x32, 0x31, 0x00},
	'&' - glyphBase:  {0x00, 0x10, 0x2a, 0x25, 0x2a, 0x10, 0x20, 0x00},
	'\'' - glyphBase: {0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(' - glyphBase:  {0x00, 0x1e, 0x21, 0x00, 0x00, 0x00, 0x00, 0x00},
	')' - glyphBase:  {0x00, 0x21, 0x1e, 0x00, 0x00, 0x00, 0x00, 0x00},
	'*' - glyphBase:  {0x00, 0x08, 0x2a, 0x1c, 0x2a, 0x08, 0x00, 0x00},
	'+' - glyphBase:  {0x00, 0x08, 0x08, 0x3e, 0x08, 0x08, 0x00, 0x00},
	',' - glyphBase:  {0x00, 0x80, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00},
	'-' - glyphBase:  {0x00, 0x08, 0x08, 0x08, 0x08, 0x08, 0x00, 0x00},
	'.' - glyphBase:  {0x00, 0x30, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00},
	'/' - glyphBase:  {0x00, 0x20, 0x10, 0x08, 0x04, 0x02, 0x00, 0x00},
	'0' - glyphBase:  {0x00, 0x1e, 0x31, 0x29, 0x25, 0x23, 0x1e, 0x00},
	'1' - glyphBase:  {0x00, 0x22, 0x21, 0x3f, 0x20, 0x20, 0x20, 0x00},
	'2' - glyphBase:  {0x00, 0x32, 0x29, 0x29, 0x29, 0x29, 0x26, 0x00},
	'3' - glyphBase:  {0x00, 0x12, 0x21, 0x21, 0x25, 0x25, 0x1a, 0x00},
	'4' - glyphBase:  {0x00, 0x18, 0x14, 0x12, 0x3f, 0x10, 0x00, 0x00},
	'5' - glyphBase:  {0x00, 0x17, 0x25, 0x25, 0x25, 0x25, 0x19, 0x00},
	'6' - glyphBase:  {0x00, 0x1e, 0x25, 0x25, 0x25, 0x25, 0x18, 0x00},
	'7' - glyphBase:  {0x00, 0x01, 0x01, 0x31, 0x09, 0x05, 0x03, 0x00},
	'8' - glyphBase:  {0x00, 0x1a, 0x25, 0x25, 0x25, 0x25, 0x1a, 0x00},
	'9' - glyphBase:  {0x00, 0x06, 0x29, 0x29, 0x29, 0x29, 0x1e, 0x00},
	':' - glyphBase:  {0x00, 0x24, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	';' - glyphBase:  {0x00, 0x80, 0x64, 0x00, 0x00, 0x00, 0x00, 0x00},
	'<' - glyphBase:  {0x00, 0x08, 0x14, 0x22, 0x00, 0x00, 0x00, 0x00},
	'=' - glyphBase:  {0x00, 0x14, 0x14, 0x14, 0x14, 0x14, 0x00, 0x00},
	'>' - glyphBase:  {0x00, 0x22, 0x14, 0x08, 0x00, 0x00, 0x00, 0x00},
	'?' - glyphBase:  {0x00, 0x02, 0x01, 0x01, 0x29, 0x05, 0x02, 0x00},
	'@' - glyphBase:  {0x00, 0x1e, 0x21, 0x2d, 0x2b, 0x2d, 0x0e, 0x00},
	'A' - glyphBase:  {0x00, 0x3e, 0x09, 0x09, 0x09, 0x09, 0x3e, 0x00},
	'B' - glyphBase:  {0x00, 0x3f, 0x25, 0x25, 0x25, 0x25, 0x1a, 0x00},
	'C' - glyphBase:  {0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x12, 0x00},
	'D' - glyphBase:  {0x00, 0x3f, 0x21, 0x21, 0x21, 0x12, 0x0c, 0x00},
	'E' - glyphBase:  {0x00, 0x3f, 0x25, 0x25, 0x25, 0x25, 0x21, 0x00},
	'F' - glyphBase:  {0x00, 0x3f, 0x05, 0x05, 0x05, 0x05, 0x01, 0x00},
	'G' - glyphBase:  {0x00, 0x1e, 0x21, 0x21, 0x21, 0x29, 0x1a, 0x00},
	'H' - glyphBase:  {0x00, 0x3f, 0x04, 0x04, 0x04, 0x04, 0x3f, 0x00},
	'I' - glyphBase:  {0x00, 0x21, 0x21, 0x3f, 0x21, 0x21, 0x00, 0x00},
	'J' - glyphBase:  {0x00, 0x10, 0x20, 0x20, 0x20, 0x20, 0x1f, 0x00},
	'K' - glyphBase:  {0x00, 0x3f, 0x04, 0x0c, 0x0a, 0x11, 0x20, 0x00},
	'L' - glyphBase:  {0x00, 0x3f, 0x20, 0x20, 0x20, 0x20, 0x20, 0x00},
	'M' - glyphBase:  {0x00, 0x3f, 0x02, 0x04, 0x04, 0x02, 0x3f, 0x00},
	'N' - glyphBase:  {0x00, 0x3f, 0x02, 0x04, 0x08, 0x10, 0x3f, 0x00},
	'O' - glyphBase:  {0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00},
	'P' - glyphBase:  {0x00, 0x3f, 0x09, 0x09, 0x09, 0x09, 0x06, 0x00},
	'Q' - glyphBase:  {0x00, 0x1e, 0x21, 0x29, 0x31, 0x21, 0x5e, 0x00},
	'R' - glyphBase:  {0x00, 0x3f, 0x09, 0x09, 0x09, 0x19, 0x26, 0x00},
	'S' - glyphBase:  {0x00, 0x12, 0x25, 0x25, 0x25, 0x25, 0x18, 0x00},
	'T' - glyphBase:  {0x00, 0x01, 0x01, 0x01, 0x3f, 0x01, 0x01, 0x00},
	'U' - glyphBase:  {0x00, 0x1f, 0x20, 0x20, 0x20, 0x20, 0x1f, 0x00},
	'V' - glyphBase:  {0x00, 0x0f, 0x10, 0x20, 0x20, 0x10, 0x0f, 0x00},
	'W' - glyphBase:  {0x00, 0x1f, 0x20, 0x10, 0x10, 0x20, 0x1f, 0x00},
	'X' - glyphBase:  {0x00, 0x21, 0x12, 0x0c, 0x0c, 0x12, 0x21, 0x00},
	'Y' - glyphBase:  {0x00, 0x01, 0x02, 0x3c, 0x02, 0x01, 0x00, 0x00},
	'Z' - glyphBase:  {0x00, 0x21, 0x31, 0x29, 0x25, 0x23, 0x21, 0x00},
	'[' - glyphBase:  {0x00, 0x3f, 0x21, 0x00, 0x00, 0x00, 0x00, 0x00},
	'\\' - glyphBase: {0x00, 0x02, 0x04, 0x08, 0x10, 0x20, 0x00, 0x00},
	']' - glyphBase:  {0x00, 0x21, 0x3f, 0x00, 0x00, 0x00, 0x00, 0x00},
	'^' - glyphBase:  {0x00, 0x04, 0x02, 0x3f, 0x02, 0x04, 0x00, 0x00},
	'_' - glyphBase:  {0x00, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x00},
	'`' - glyphBase:  {0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a' - glyphBase:  {0x00, 0x10, 0x2a, 0x2a, 0x2a, 0x3c, 0x00, 0x00},
	'b' - glyphBase:  {0x00, 0x3f, 0x24, 0x24, 0x24, 0x18, 0x00, 0x00},
	'c' - glyphBase:  {0x00, 0x1c, 0x22, 0x22, 0x22, 0x00, 0x00, 0x00},
	'd' - glyphBase:  {0x00, 0x18, 0x24, 0x24, 0x24, 0x3f, 0x00, 0x00},
	'e' - glyphBase:  {0x00, 0x1c, 0x2a, 0x2a, 0x2a, 0x24, 0x00, 0x00},
	'f' - glyphBase:  {0x00, 0x00, 0x3e, 0x05, 0x01, 0x00, 0x00, 0x00},
	'g' - glyphBase:  {0x00, 0x18, 0xa4, 0xa4, 0xa4, 0x7c, 0x00, 0x00},
	'h' - glyphBase:  {0x00, 0x3f, 0x04, 0x04, 0x04, 0x38, 0x00, 0x00},
	'i' - glyphBase:  {0x00, 0x00, 0x24, 0x3d, 0x20, 0x00, 0x00, 0x00},
	'j' - glyphBase:  {0x00, 0x20, 0x40, 0x40, 0x3d, 0x00, 0x00, 0x00},
	'k' - glyphBase:  {0x00, 0x3f, 0x0c, 0x12, 0x20, 0x00, 0x00, 0x00},
	'l' - glyphBase:  {0x00, 0x1f, 0x20, 0x20, 0x00, 0x00, 0x00, 0x00},
	'm' - glyphBase:  {0x00, 0x3e, 0x02, 0x3c, 0x02, 0x3c, 0x00, 0x00},
	'n' - glyphBase:  {0x00, 0x3e, 0x02, 0x02, 0x02, 0x3c, 0x00, 0x00},
	'o' - glyphBase:  {0x00, 0x1c, 0x22, 0x22, 0x22, 0x1c, 0x00, 0x00},
	'p' - glyphBase:  {0x00, 0xfc, 0x24, 0x24, 0x24, 0x18, 0x00, 0x00},
	'q' - glyphBase:  {0x00, 0x18, 0x24, 0x24, 0x24, 0xfc, 0x00, 0x00},
	'r' - glyphBase:  {0x00, 0x3e, 0x04, 0x02, 0x02, 0x00, 0x00, 0x00},
	's' - glyphBase:  {0x00, 0x24, 0x2a, 0x2a, 0x2a, 0x10, 0x00, 0x00},
	't' - glyphBase:  {0x00, 0x02, 0x1f, 0x22, 0x20, 0x00, 0x00, 0x00},
	'u' - glyphBase:  {0x00, 0x1e, 0x20, 0x20, 0x20, 0x1e, 0x00, 0x00},
	'v' - glyphBase:  {0x00, 0x06, 0x18, 0x20, 0x18, 0x06, 0x00, 0x00},
	'w' - glyphBase:  {0x00, 0x1e, 0x30, 0x1c, 0x30, 0x1e, 0x00, 0x00},
	'x' - glyphBase:  {0x00, 0x22, 0x14, 0x08, 0x14, 0x22, 0x00, 0x00},
	'y' - glyphBase:  {0x00, 0x1c, 0xa0, 0xa0, 0xa0, 0x7c, 0x00, 0x00},
	'z' - glyphBase:  {0x00, 0x22, 0x32, 0x2a, 0x26, 0x22, 0x00, 0x00},
	'{' - glyphBase:  {0x00, 0x0c, 0x3f, 0x21, 0x00, 0x00, 0x00, 0x00},
	'|' - glyphBase:  {0x00, 0x3f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'}' - glyphBase:  {0x00, 0x21, 0x3f, 0x0c, 0x00, 0x00, 0x00, 0x00},
	'~' - glyphBase:  {0x00, 0x02, 0x01, 0x02, 0x01, 0x00, 0x00, 0x00},
}

// charBitmap returns r's cell bitmap, or a blank cell when the font has
// no glyph for it.
func charBitmap(r rune) [8]byte {
	if r < glyphBase || int(r-glyphBase) >= len(glyphs) {
		return [8]byte{}
	}
	return glyphs[r-glyphBase]
}

// rotateGlyph transposes a cell bitmap, moving the bit at column c, row r
// to column r, row c, which renders the glyph upright on a sideways
// panel.
func rotateGlyph(b [8]byte) [8]byte {
	var out [8]byte
	for c := uint(0); c < 8; c++ {
		for r := uint(0); r < 8; r++ {
			if b[c]&(1<<r) != 0 {
				out[r] |= 1 << c
			}
		}
	}
	return out
}
