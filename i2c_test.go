// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

// seq returns n bytes counting up from 0.
func seq(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func iterBytes(p []byte) U8Iter {
	i := 0
	return func() (byte, bool) {
		if i >= len(p) {
			return 0, false
		}
		b := p[i]
		i++
		return b, true
	}
}

func TestNewI2C(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3C, W: []byte{0x00, 0xE3}},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{0xE3}); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := NewI2C(&i2ctest.Playback{DontPanic: true}, 0x80); err == nil {
		t.Fatal("NewI2C accepted an address beyond 7 bits")
	}
}

func TestNewI2CAltAddr(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3D, W: []byte{0x00, 0xE3}},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, AltAddr)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{0xE3}); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendCommands(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// One transaction per command, control byte first.
			{Addr: 0x3C, W: []byte{0x00, 0x21, 0x00, 0x7F}},
			// A command can use the full 7 payload bytes.
			{Addr: 0x3C, W: []byte{0x00, 0x26, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF}},
			// An empty command still writes the control byte.
			{Addr: 0x3C, W: []byte{0x00}},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{0x21, 0x00, 0x7F}); err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{0x26, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF}); err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{}); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendCommandsRejects(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8(seq(8))); !errors.Is(err, ErrCommandTooLong) {
		t.Errorf("SendCommands(8 bytes) = %v, want ErrCommandTooLong", err)
	}
	if err := i.SendCommands(U16{0x1234}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SendCommands(U16) = %v, want ErrUnsupportedFormat", err)
	}
	if err := i.SendCommands(iterBytes(seq(2))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SendCommands(U8Iter) = %v, want ErrUnsupportedFormat", err)
	}
	// None of the rejections may touch the bus.
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendData(t *testing.T) {
	payload := seq(40)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3C, W: append([]byte{0x40}, payload[:16]...)},
			{Addr: 0x3C, W: append([]byte{0x40}, payload[16:32]...)},
			{Addr: 0x3C, W: append([]byte{0x40}, payload[32:]...)},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendData(U8(payload)); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendDataEmpty(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendData(U8{}); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendDataIter(t *testing.T) {
	payload := seq(20)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3C, W: append([]byte{0x40}, payload[:16]...)},
			{Addr: 0x3C, W: append([]byte{0x40}, payload[16:]...)},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendData(iterBytes(payload)); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendDataIterExactChunk(t *testing.T) {
	// An iterator ending on a chunk boundary must not write a trailing
	// empty transaction.
	payload := seq(16)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3C, W: append([]byte{0x40}, payload...)},
		},
		DontPanic: true,
	}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendData(iterBytes(payload)); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CSendDataRejects(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	i, err := NewI2C(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []DataFormat{
		U16{0x1234},
		U16BE{0x1234},
		U16LE{0x1234},
		U16BEIter(func() (uint16, bool) { return 0, false }),
		U16LEIter(func() (uint16, bool) { return 0, false }),
	} {
		if err := i.SendData(f); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("SendData(%T) = %v, want ErrUnsupportedFormat", f, err)
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CBusError(t *testing.T) {
	// An exhausted playback fails every transaction.
	i, err := NewI2C(&i2ctest.Playback{DontPanic: true}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := i.SendCommands(U8{0xE3}); !errors.Is(err, ErrBusWrite) {
		t.Errorf("SendCommands() = %v, want ErrBusWrite", err)
	}
	if err := i.SendData(U8{0x01}); !errors.Is(err, ErrBusWrite) {
		t.Errorf("SendData() = %v, want ErrBusWrite", err)
	}
	if err := i.SendData(iterBytes(seq(1))); !errors.Is(err, ErrBusWrite) {
		t.Errorf("SendData(iter) = %v, want ErrBusWrite", err)
	}
}
