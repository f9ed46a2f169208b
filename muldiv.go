package main

import "fmt"

// assembleMulDiv encodes MUL/DIV/IDIV: F7 /ext, mod=11 for a register
// operand or the simple-label memory form for [LABEL]. Unlike the reference
// assembler, the operand shape is validated before any byte is written, so a
// rejected operand never leaves a stray opcode byte in the buffer.
func assembleMulDiv(buf *EmitBuffer, pending *PendingReferenceTable, ext uint8, op Operand) error {
	switch op.Kind {
	case OperandReg32:
		buf.WriteByte(0xF7)
		buf.WriteByte(generateModRM(0b11, ext, op.Reg))
		return nil
	case OperandMemAbs:
		buf.WriteByte(0xF7)
		emitMemAbs(buf, pending, op, ext)
		return nil
	default:
		return fmt.Errorf("unsupported operand for MUL/DIV/IDIV")
	}
}

func assembleMUL(buf *EmitBuffer, pending *PendingReferenceTable, op Operand) error {
	return assembleMulDiv(buf, pending, 0b100, op)
}

func assembleDIV(buf *EmitBuffer, pending *PendingReferenceTable, op Operand) error {
	return assembleMulDiv(buf, pending, 0b110, op)
}

func assembleIDIV(buf *EmitBuffer, pending *PendingReferenceTable, op Operand) error {
	return assembleMulDiv(buf, pending, 0b111, op)
}
