package main

import "fmt"

// condOpcodes maps a conditional-jump mnemonic to its short (rel8) opcode
// and its near (0F-prefixed, rel32) opcode extension byte.
var condOpcodes = map[string]struct{ Short, Near byte }{
	"JE": {0x74, 0x84}, "JZ": {0x74, 0x84},
	"JNE": {0x75, 0x85}, "JNZ": {0x75, 0x85},
	"JLE": {0x7E, 0x8E},
	"JL":  {0x7C, 0x8C},
	"JA":  {0x77, 0x87},
	"JAE": {0x73, 0x83},
	"JB":  {0x72, 0x82},
	"JBE": {0x76, 0x86},
	"JG":  {0x7F, 0x8F},
	"JGE": {0x7D, 0x8D},
}

// assembleBranch applies the short-vs-near forward branch policy shared by
// JMP and every conditional jump: a defined label that fits a signed rel8
// takes the short encoding; a defined label out of range takes the near
// encoding (only available when nearOpcode is non-zero, i.e. conditional
// jumps); an undefined label always commits to the short encoding with a
// width-1 PC-relative pending reference — a deliberately truncating policy,
// since a later-resolved long offset silently overflows its one byte.
func assembleBranch(buf *EmitBuffer, syms *SymbolTable, pending *PendingReferenceTable, shortOpcode, nearOpcode byte, label string) {
	if target, ok := syms.Lookup(label); ok {
		offset := target - (buf.LC() + 2)
		if offset >= -128 && offset <= 127 {
			buf.WriteByte(shortOpcode)
			buf.WriteByte(byte(int8(offset)))
			return
		}
		if nearOpcode != 0 {
			buf.WriteByte(0x0F)
			buf.WriteByte(nearOpcode)
			pos := buf.WritePlaceholder(4)
			pending.Record(label, pos, 4, RefPCRelative)
			return
		}
	}
	buf.WriteByte(shortOpcode)
	pos := buf.WritePlaceholder(1)
	pending.Record(label, pos, 1, RefPCRelative)
}

// assembleJMP encodes an unconditional JMP: short (EB rel8) when the target
// is defined and in range, otherwise near (E9 rel32); an undefined label
// commits to the short form per the branch policy above.
func assembleJMP(buf *EmitBuffer, syms *SymbolTable, pending *PendingReferenceTable, label string) {
	if target, ok := syms.Lookup(label); ok {
		offset := target - (buf.LC() + 2)
		if offset >= -128 && offset <= 127 {
			buf.WriteByte(0xEB)
			buf.WriteByte(byte(int8(offset)))
			return
		}
		buf.WriteByte(0xE9)
		pos := buf.WritePlaceholder(4)
		pending.Record(label, pos, 4, RefPCRelative)
		return
	}
	buf.WriteByte(0xEB)
	pos := buf.WritePlaceholder(1)
	pending.Record(label, pos, 1, RefPCRelative)
}

// assembleConditional encodes one of the twelve conditional branch
// mnemonics using the shared short-vs-near branch policy.
func assembleConditional(buf *EmitBuffer, syms *SymbolTable, pending *PendingReferenceTable, mnemonic, label string) error {
	op, ok := condOpcodes[mnemonic]
	if !ok {
		return fmt.Errorf("unsupported conditional mnemonic %q", mnemonic)
	}
	assembleBranch(buf, syms, pending, op.Short, op.Near, label)
	return nil
}

// assembleCALL encodes CALL rel32 (E8), always a pending PC-relative
// reference regardless of whether the label is already defined.
func assembleCALL(buf *EmitBuffer, pending *PendingReferenceTable, label string) {
	buf.WriteByte(0xE8)
	pos := buf.WritePlaceholder(4)
	pending.Record(label, pos, 4, RefPCRelative)
}

// assembleLOOP encodes LOOP rel8 (E2), always a pending PC-relative
// reference regardless of whether the label is already defined.
func assembleLOOP(buf *EmitBuffer, pending *PendingReferenceTable, label string) {
	buf.WriteByte(0xE2)
	pos := buf.WritePlaceholder(1)
	pending.Record(label, pos, 1, RefPCRelative)
}
