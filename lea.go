package main

import "fmt"

// assembleLEA encodes LEA r32, m (8D /r) for any of the three memory forms.
func assembleLEA(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	if dst.Kind != OperandReg32 {
		return fmt.Errorf("LEA requires a 32-bit register destination")
	}
	if !src.IsMemory() {
		return fmt.Errorf("LEA requires a memory source operand")
	}
	buf.WriteByte(0x8D)
	emitMemory(buf, pending, src, dst.Reg)
	return nil
}
