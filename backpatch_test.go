package main

import "testing"

func TestBackpatchAbsoluteReference(t *testing.T) {
	buf := &EmitBuffer{}
	syms := NewSymbolTable()
	pending := NewPendingReferenceTable()
	diags := &Diagnostics{}

	pos := buf.WritePlaceholder(4)
	pending.Record("DATO", pos, 4, RefAbsolute)
	syms.Define("DATO", 42)

	Backpatch(buf, syms, pending, diags)

	want := []byte{0x2A, 0x00, 0x00, 0x00}
	for i, b := range want {
		if buf.Bytes()[i] != b {
			t.Fatalf("byte %d: got %02X, want %02X", i, buf.Bytes()[i], b)
		}
	}
	if diags.Count() != 0 {
		t.Fatalf("expected no diagnostics, got %d", diags.Count())
	}
}

func TestBackpatchPCRelativeReference(t *testing.T) {
	buf := &EmitBuffer{}
	buf.WriteByte(0xE8)
	syms := NewSymbolTable()
	pending := NewPendingReferenceTable()
	diags := &Diagnostics{}

	pos := buf.WritePlaceholder(4)
	pending.Record("RUTINA", pos, 4, RefPCRelative)
	syms.Define("RUTINA", 100)

	Backpatch(buf, syms, pending, diags)

	want := int32(100 - (pos + 4))
	got := int32(buf.Bytes()[pos]) | int32(buf.Bytes()[pos+1])<<8 | int32(buf.Bytes()[pos+2])<<16 | int32(buf.Bytes()[pos+3])<<24
	if got != want {
		t.Fatalf("got offset %d, want %d", got, want)
	}
}

func TestBackpatchUnresolvedLabelWarns(t *testing.T) {
	buf := &EmitBuffer{}
	syms := NewSymbolTable()
	pending := NewPendingReferenceTable()
	diags := &Diagnostics{}

	pos := buf.WritePlaceholder(4)
	pending.Record("FANTASMA", pos, 4, RefAbsolute)

	Backpatch(buf, syms, pending, diags)

	if diags.Count() != 1 {
		t.Fatalf("expected one diagnostic, got %d", diags.Count())
	}
	item := diags.Items()[0]
	if item.Severity != SeverityWarning || item.Category != CategoryUnresolved {
		t.Fatalf("unexpected diagnostic: %+v", item)
	}
	for _, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("expected placeholder to stay zero, got % X", buf.Bytes())
		}
	}
}

func TestBackpatchWidthOneTruncatesSilently(t *testing.T) {
	buf := &EmitBuffer{}
	syms := NewSymbolTable()
	pending := NewPendingReferenceTable()
	diags := &Diagnostics{}

	buf.WriteByte(0xEB)
	pos := buf.WritePlaceholder(1)
	pending.Record("LEJOS", pos, 1, RefPCRelative)
	syms.Define("LEJOS", 1000)

	Backpatch(buf, syms, pending, diags)

	want := byte(int8(1000 - (pos + 1)))
	if buf.Bytes()[pos] != want {
		t.Fatalf("got %02X, want truncated low byte %02X", buf.Bytes()[pos], want)
	}
}
