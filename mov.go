package main

import "fmt"

// assembleMOV encodes MOV, selecting a form in the reference assembler's
// priority order: reg,reg; reg,imm; [LABEL],EAX (the dedicated A3 opcode,
// only for a simple absolute label destination); mem,reg; reg,mem; mem,imm.
func assembleMOV(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	switch {
	case dst.Kind == OperandReg32 && src.Kind == OperandReg32:
		buf.WriteByte(0x89)
		buf.WriteByte(generateModRM(0b11, src.Reg, dst.Reg))
		return nil

	case dst.Kind == OperandReg32 && src.Kind == OperandImm32:
		buf.WriteByte(0xB8 + dst.Reg)
		buf.WriteDword(src.Imm)
		return nil

	case dst.Kind == OperandMemAbs && src.Kind == OperandReg32 && src.Reg == 0:
		buf.WriteByte(0xA3)
		pos := buf.WritePlaceholder(4)
		pending.Record(dst.Name, pos, 4, RefAbsolute)
		return nil

	case dst.IsMemory() && src.Kind == OperandReg32:
		buf.WriteByte(0x89)
		emitMemory(buf, pending, dst, src.Reg)
		return nil

	case dst.Kind == OperandReg32 && src.IsMemory():
		buf.WriteByte(0x8B)
		emitMemory(buf, pending, src, dst.Reg)
		return nil

	case dst.IsMemory() && src.Kind == OperandImm32:
		buf.WriteByte(0xC7)
		emitMemory(buf, pending, dst, 0b000)
		buf.WriteDword(src.Imm)
		return nil

	default:
		return fmt.Errorf("unsupported operand combination for MOV")
	}
}
