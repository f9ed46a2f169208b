package main

import (
	"bytes"
	"testing"
)

func TestAssembleADDRegReg(t *testing.T) {
	buf := &EmitBuffer{}
	dst, _ := ClassifyOperand("EBX")
	src, _ := ClassifyOperand("EAX")
	if err := assembleADD(buf, nil, dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x01, 0xC3}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestAssembleADDEAXImm(t *testing.T) {
	buf := &EmitBuffer{}
	dst, _ := ClassifyOperand("EAX")
	src, _ := ClassifyOperand("5")
	if err := assembleADD(buf, nil, dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x05, 0x05, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestAssembleADDNonEAXShortImm(t *testing.T) {
	buf := &EmitBuffer{}
	dst, _ := ClassifyOperand("ECX")
	src, _ := ClassifyOperand("5")
	if err := assembleADD(buf, nil, dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x83, 0xC1, 0x05}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestAssembleSUBRegImm32(t *testing.T) {
	buf := &EmitBuffer{}
	dst, _ := ClassifyOperand("ECX")
	src, _ := ClassifyOperand("100000")
	if err := assembleSUB(buf, nil, dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x81, 0xE9, 0xA0, 0x86, 0x01, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestAssembleCMPMemReg(t *testing.T) {
	buf := &EmitBuffer{}
	pending := NewPendingReferenceTable()
	dst, _ := ClassifyOperand("[CONTADOR]")
	src, _ := ClassifyOperand("EDX")
	if err := assembleCMP(buf, pending, dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x39, 0x15, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
	if refs := pending.Refs("CONTADOR"); len(refs) != 1 || refs[0].Kind != RefAbsolute {
		t.Fatalf("expected one absolute pending ref, got %+v", refs)
	}
}

func TestAssembleBinaryUnsupportedCombination(t *testing.T) {
	buf := &EmitBuffer{}
	dst, _ := ClassifyOperand("5")
	src, _ := ClassifyOperand("10")
	if err := assembleADD(buf, nil, dst, src); err == nil {
		t.Fatal("expected an error for imm,imm operands")
	}
}
