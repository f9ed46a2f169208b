package main

import "fmt"

// assembleTEST encodes TEST r/m32, r32 (85 /r).
func assembleTEST(buf *EmitBuffer, dst, src Operand) error {
	if dst.Kind != OperandReg32 || src.Kind != OperandReg32 {
		return fmt.Errorf("TEST requires two 32-bit register operands")
	}
	buf.WriteByte(0x85)
	buf.WriteByte(generateModRM(0b11, src.Reg, dst.Reg))
	return nil
}
