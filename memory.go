package main

// generateModRM packs the mod/reg/rm fields of a ModR/M byte.
func generateModRM(mod, reg, rm uint8) byte {
	return (mod << 6) | (reg << 3) | (rm & 0x07)
}

// emitMemAbs writes the ModR/M byte and absolute disp32 placeholder for the
// [LABEL] form: mod=00, rm=101, a pending absolute reference at the
// placeholder. regField carries either the other operand's register
// encoding or an opcode-extension /digit, depending on the caller.
func emitMemAbs(buf *EmitBuffer, pending *PendingReferenceTable, op Operand, regField uint8) {
	buf.WriteByte(generateModRM(0b00, regField, 0b101))
	pos := buf.WritePlaceholder(4)
	pending.Record(op.Name, pos, 4, RefAbsolute)
}

// emitMemBaseDisp writes the ModR/M byte (and disp8/disp32, if any) for the
// [EBP+-disp] form. A zero displacement still encodes mod=01 with a literal
// zero disp8 byte, matching the reference assembler's "including d=0" rule.
func emitMemBaseDisp(buf *EmitBuffer, op Operand, regField uint8) {
	const ebp = 0b101
	var mod uint8
	switch {
	case op.BaseDisp == 0:
		mod = 0b01
	case op.BaseDisp >= -128 && op.BaseDisp <= 127:
		mod = 0b01
	default:
		mod = 0b10
	}
	buf.WriteByte(generateModRM(mod, regField, ebp))
	if mod == 0b01 {
		buf.WriteByte(byte(int8(op.BaseDisp)))
	} else {
		buf.WriteDword(uint32(op.BaseDisp))
	}
}

// emitMemSIB writes the ModR/M byte, SIB byte, optional disp8, and absolute
// disp32 placeholder for the [LABEL + ESI*4 (+disp8)] form: scale=10
// (index*4), index=110 (ESI), base=101 (disp32 base, carrying the label's
// address). mod follows the optional disp8 exactly as the trailing +N term
// the source line carried: absent or zero takes mod=00, any other value
// takes mod=01.
func emitMemSIB(buf *EmitBuffer, pending *PendingReferenceTable, op Operand, regField uint8) {
	const scale, index, base = 0b10, 0b110, 0b101
	mod := uint8(0b00)
	if op.SIBDisp != 0 {
		mod = 0b01
	}
	buf.WriteByte(generateModRM(mod, regField, 0b100))
	buf.WriteByte((scale << 6) | (index << 3) | base)
	if mod == 0b01 {
		buf.WriteByte(byte(op.SIBDisp))
	}
	pos := buf.WritePlaceholder(4)
	pending.Record(op.Name, pos, 4, RefAbsolute)
}

// emitMemory dispatches a memory operand to its sub-form emitter.
func emitMemory(buf *EmitBuffer, pending *PendingReferenceTable, op Operand, regField uint8) {
	switch op.Kind {
	case OperandMemAbs:
		emitMemAbs(buf, pending, op, regField)
	case OperandMemBaseDisp:
		emitMemBaseDisp(buf, op, regField)
	case OperandMemSIB:
		emitMemSIB(buf, pending, op, regField)
	}
}
