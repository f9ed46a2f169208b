package main

import "fmt"

// assembleMOVZX encodes MOVZX r32, r8 or r32, m8 (both 0F B6 /r). The source
// operand's size hint ("BYTE ") has already been stripped by classification.
func assembleMOVZX(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	if dst.Kind != OperandReg32 {
		return fmt.Errorf("MOVZX requires a 32-bit register destination")
	}
	switch {
	case src.Kind == OperandReg8:
		buf.WriteByte(0x0F)
		buf.WriteByte(0xB6)
		buf.WriteByte(generateModRM(0b11, dst.Reg, src.Reg))
		return nil
	case src.IsMemory():
		buf.WriteByte(0x0F)
		buf.WriteByte(0xB6)
		emitMemory(buf, pending, src, dst.Reg)
		return nil
	default:
		return fmt.Errorf("MOVZX source must be an 8-bit register or memory operand")
	}
}
