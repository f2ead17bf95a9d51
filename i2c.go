// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// I²C slave addresses. DefaultAddr is used by most modules; strapping the
// SA0 pin high selects AltAddr.
const (
	DefaultAddr uint16 = 0x3C
	AltAddr     uint16 = 0x3D
)

// Control bytes prefixed to every transaction, section 8.1.5.2 of the
// datasheet.
const (
	i2cCmd  byte = 0x00
	i2cData byte = 0x40
)

// I2C is an Interface writing through an I²C bus.
//
// I²C has no data/command line, so every transaction opens with a control
// byte. Command payloads are capped at 7 bytes so a whole command fits one
// transaction; data payloads stream in transactions of up to 16 bytes.
type I2C struct {
	c conn.Conn

	cmds [8]byte
	data [17]byte
}

// NewI2C returns an Interface speaking to the display at addr on bus b.
// addr 0 selects DefaultAddr.
//
// The SSD1306 tops out at 400kHz; run the bus at that speed if the wiring
// allows, a full 128x64 refresh is over a kilobyte.
func NewI2C(b i2c.Bus, addr uint16) (*I2C, error) {
	switch {
	case addr == 0:
		addr = DefaultAddr
	case addr > 0x7F:
		return nil, errors.New("ssd1306: invalid I²C address")
	}
	i := &I2C{c: &i2c.Dev{Bus: b, Addr: addr}}
	i.cmds[0] = i2cCmd
	i.data[0] = i2cData
	return i, nil
}

// SendCommands implements Interface. Only U8 payloads of up to 7 bytes
// are supported.
func (i *I2C) SendCommands(f DataFormat) error {
	p, ok := f.(U8)
	if !ok {
		return ErrUnsupportedFormat
	}
	if len(p) > len(i.cmds)-1 {
		return ErrCommandTooLong
	}
	n := copy(i.cmds[1:], p)
	if err := i.c.Tx(i.cmds[:n+1], nil); err != nil {
		return wrap(ErrBusWrite, err)
	}
	return nil
}

// SendData implements Interface. U8 and U8Iter payloads are supported;
// 16-bit shapes are not defined for this bus.
func (i *I2C) SendData(f DataFormat) error {
	switch p := f.(type) {
	case U8:
		for len(p) > 0 {
			n := copy(i.data[1:], p)
			if err := i.c.Tx(i.data[:n+1], nil); err != nil {
				return wrap(ErrBusWrite, err)
			}
			p = p[n:]
		}
		return nil
	case U8Iter:
		n := 1
		for {
			b, ok := p()
			if !ok {
				break
			}
			i.data[n] = b
			n++
			if n == len(i.data) {
				if err := i.c.Tx(i.data[:n], nil); err != nil {
					return wrap(ErrBusWrite, err)
				}
				n = 1
			}
		}
		if n > 1 {
			if err := i.c.Tx(i.data[:n], nil); err != nil {
				return wrap(ErrBusWrite, err)
			}
		}
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

var _ Interface = &I2C{}
