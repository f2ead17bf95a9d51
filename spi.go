// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"encoding/binary"
	"errors"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI transfer bounds: 8-bit payloads go out 32 bytes at a time, 16-bit
// payloads 32 words at a time.
const (
	spiChunkBytes = 32
	spiChunkWords = 32
)

// SPI is an Interface writing through a 4-wire SPI port.
//
// The dc pin selects between command and data bytes; it is driven once per
// operation, before the first transfer. When constructed with a cs pin the
// chip select is software driven, asserted low around every operation and
// released on all exit paths; otherwise the port is expected to frame
// transfers itself.
type SPI struct {
	c  conn.Conn
	dc gpio.PinOut
	cs gpio.PinOut // nil when the port drives chip select

	buf [2 * spiChunkWords]byte
}

// NewSPI returns an Interface speaking to the display over port p with dc
// as the data/command line. Chip select is left to the port.
//
// The SSD1306 accepts a 3.3MHz clock, well past what I²C allows, which
// makes SPI the wiring of choice for animation.
func NewSPI(p spi.Port, dc gpio.PinOut) (*SPI, error) {
	return NewSPIWithCS(p, dc, nil)
}

// NewSPIWithCS is NewSPI for ports that do not handle chip select
// themselves; cs is asserted low for the duration of every operation.
func NewSPIWithCS(p spi.Port, dc, cs gpio.PinOut) (*SPI, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: a D/C pin is required in 4-wire mode")
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &SPI{c: c, dc: dc, cs: cs}, nil
}

// SendCommands implements Interface. All payload shapes are supported.
func (s *SPI) SendCommands(f DataFormat) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return wrap(ErrDCPin, err)
	}
	return s.transfer(f)
}

// SendData implements Interface. All payload shapes are supported.
func (s *SPI) SendData(f DataFormat) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return wrap(ErrDCPin, err)
	}
	return s.transfer(f)
}

// transfer frames one operation with chip select, when owned, around the
// chunked payload writes.
func (s *SPI) transfer(f DataFormat) error {
	if s.cs != nil {
		if err := s.cs.Out(gpio.Low); err != nil {
			return wrap(ErrCSPin, err)
		}
	}
	err := s.write(f)
	if s.cs != nil {
		// Always release; a release failure only surfaces when the
		// payload itself went through.
		if csErr := s.cs.Out(gpio.High); csErr != nil && err == nil {
			err = wrap(ErrCSPin, csErr)
		}
	}
	return err
}

func (s *SPI) write(f DataFormat) error {
	switch p := f.(type) {
	case U8:
		for len(p) > 0 {
			n := min(len(p), spiChunkBytes)
			if err := s.c.Tx(p[:n], nil); err != nil {
				return wrap(ErrBusWrite, err)
			}
			p = p[n:]
		}
		return nil
	case U16:
		return s.writeWords(p, binary.NativeEndian)
	case U16BE:
		return s.writeWords(p, binary.BigEndian)
	case U16LE:
		return s.writeWords(p, binary.LittleEndian)
	case U8Iter:
		n := 0
		for {
			b, ok := p()
			if !ok {
				break
			}
			s.buf[n] = b
			n++
			if n == spiChunkBytes {
				if err := s.c.Tx(s.buf[:n], nil); err != nil {
					return wrap(ErrBusWrite, err)
				}
				n = 0
			}
		}
		if n > 0 {
			if err := s.c.Tx(s.buf[:n], nil); err != nil {
				return wrap(ErrBusWrite, err)
			}
		}
		return nil
	case U16BEIter:
		return s.writeWordIter(p, binary.BigEndian)
	case U16LEIter:
		return s.writeWordIter(p, binary.LittleEndian)
	default:
		return ErrUnsupportedFormat
	}
}

// writeWords stages words into the scratch buffer in the given byte order,
// a chunk at a time. The source slice is never modified.
func (s *SPI) writeWords(p []uint16, order binary.ByteOrder) error {
	for len(p) > 0 {
		n := min(len(p), spiChunkWords)
		for i := 0; i < n; i++ {
			order.PutUint16(s.buf[2*i:], p[i])
		}
		if err := s.c.Tx(s.buf[:2*n], nil); err != nil {
			return wrap(ErrBusWrite, err)
		}
		p = p[n:]
	}
	return nil
}

// writeWordIter drains the iterator through the scratch buffer, flushing
// every spiChunkWords words and once more for a remainder.
func (s *SPI) writeWordIter(next func() (uint16, bool), order binary.ByteOrder) error {
	n := 0
	for {
		w, ok := next()
		if !ok {
			break
		}
		order.PutUint16(s.buf[2*n:], w)
		n++
		if n == spiChunkWords {
			if err := s.c.Tx(s.buf[:2*n], nil); err != nil {
				return wrap(ErrBusWrite, err)
			}
			n = 0
		}
	}
	if n > 0 {
		if err := s.c.Tx(s.buf[:2*n], nil); err != nil {
			return wrap(ErrBusWrite, err)
		}
	}
	return nil
}

var _ Interface = &SPI{}
