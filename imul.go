package main

import "fmt"

// assembleIMUL encodes IMUL r32, r32 (0F AF /r, mod=11, reg=dst, rm=src).
func assembleIMUL(buf *EmitBuffer, dst, src Operand) error {
	if dst.Kind != OperandReg32 || src.Kind != OperandReg32 {
		return fmt.Errorf("IMUL requires two 32-bit register operands")
	}
	buf.WriteByte(0x0F)
	buf.WriteByte(0xAF)
	buf.WriteByte(generateModRM(0b11, dst.Reg, src.Reg))
	return nil
}
