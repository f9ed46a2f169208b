package main

import (
	"bytes"
	"strings"
	"testing"
)

func assembleSource(t *testing.T, source string) *Assembler {
	t.Helper()
	a := NewAssembler(false)
	a.Assemble(strings.NewReader(source))
	return a
}

func TestAssemblerMOVRegImm(t *testing.T) {
	a := assembleSource(t, "MOV EAX, 1\n")
	want := []byte{0xB8, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
}

func TestAssemblerMOVRegReg(t *testing.T) {
	a := assembleSource(t, "MOV EBX, EAX\n")
	want := []byte{0x89, 0xC3}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
}

func TestAssemblerADDAccumulatorVsShortImm(t *testing.T) {
	a := assembleSource(t, "ADD EAX, 5\nADD ECX, 5\n")
	want := []byte{
		0x05, 0x05, 0x00, 0x00, 0x00,
		0x83, 0xC1, 0x05,
	}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
}

func TestAssemblerSelfLoopShortJump(t *testing.T) {
	a := assembleSource(t, "INICIO:\nJMP INICIO\n")
	want := []byte{0xEB, 0xFE}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
	if a.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %+v", a.Diags.Items())
	}
}

func TestAssemblerLabelReferencePatchedAbsolute(t *testing.T) {
	a := assembleSource(t, "DATO DD 5, 2, 8\nMOV EAX, [DATO]\n")
	want := []byte{
		0x05, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
		0x8B, 0x05, 0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
}

func TestAssemblerUnresolvedLabelLeftZeroWithWarning(t *testing.T) {
	a := assembleSource(t, "JMP ADELANTE\nNOP\nNOP\n")
	want := []byte{0xEB, 0x00, 0x90, 0x90}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
	found := false
	for _, d := range a.Diags.Items() {
		if d.Category == CategoryUnresolved {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an unresolved-label warning diagnostic")
	}
}

func TestAssemblerOutOfRangeForwardJumpTruncatesSilently(t *testing.T) {
	var lines []string
	lines = append(lines, "JMP LEJOS")
	for i := 0; i < 200; i++ {
		lines = append(lines, "NOP")
	}
	lines = append(lines, "LEJOS:")
	a := assembleSource(t, strings.Join(lines, "\n")+"\n")
	if a.Buf.Bytes()[0] != 0xEB {
		t.Fatalf("expected short JMP opcode for an undefined forward label, got %02X", a.Buf.Bytes()[0])
	}
	if len(a.Diags.Items()) != 0 {
		t.Fatalf("expected no diagnostics (silent truncation), got %+v", a.Diags.Items())
	}
}

func TestAssemblerIgnoredDirectivesAndEQU(t *testing.T) {
	a := assembleSource(t, "SECTION .text\nGLOBAL _start\nLIMITE EQU 10\nNOP\n")
	want := []byte{0x90}
	if !bytes.Equal(a.Buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", a.Buf.Bytes(), want)
	}
	if a.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %+v", a.Diags.Items())
	}
}

func TestAssemblerUnsupportedMnemonicReportsError(t *testing.T) {
	a := assembleSource(t, "FROB EAX, EBX\n")
	if !a.Diags.HasErrors() {
		t.Fatal("expected an error diagnostic for an unsupported mnemonic")
	}
}
