package main

import (
	"fmt"
	"os"
)

// EmitBuffer is the append-only machine-code buffer. Its length is the
// location counter (LC) at all times; only Patch may overwrite already
// written bytes, and only at a recorded pending-reference position.
type EmitBuffer struct {
	bytes   []byte
	Verbose bool
}

// LC returns the current location counter (equal to the buffer length).
func (b *EmitBuffer) LC() int {
	return len(b.bytes)
}

// Bytes returns the emitted byte sequence.
func (b *EmitBuffer) Bytes() []byte {
	return b.bytes
}

// WriteByte appends a single byte and advances the LC by one.
func (b *EmitBuffer) WriteByte(v byte) {
	b.bytes = append(b.bytes, v)
	if b.Verbose {
		fmt.Fprintf(os.Stderr, " %02X", v)
	}
}

// WriteBytes appends a slice of bytes in order.
func (b *EmitBuffer) WriteBytes(vs ...byte) {
	for _, v := range vs {
		b.WriteByte(v)
	}
}

// WritePlaceholder appends width zero bytes and returns the LC at which
// they start, for later backpatching.
func (b *EmitBuffer) WritePlaceholder(width int) int {
	pos := b.LC()
	for i := 0; i < width; i++ {
		b.WriteByte(0)
	}
	return pos
}

// WriteDword appends a 32-bit value, little-endian.
func (b *EmitBuffer) WriteDword(v uint32) {
	b.WriteByte(byte(v))
	b.WriteByte(byte(v >> 8))
	b.WriteByte(byte(v >> 16))
	b.WriteByte(byte(v >> 24))
}

// Patch overwrites width bytes at pos, little-endian, used only by the
// backpatcher.
func (b *EmitBuffer) Patch(pos int, width int, value uint32) {
	for i := 0; i < width; i++ {
		b.bytes[pos+i] = byte(value >> (8 * uint(i)))
	}
}
