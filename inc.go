package main

import "fmt"

// assembleINC encodes INC r32 (40+rd).
func assembleINC(buf *EmitBuffer, op Operand) error {
	if op.Kind != OperandReg32 {
		return fmt.Errorf("INC requires a 32-bit register operand")
	}
	buf.WriteByte(0x40 + op.Reg)
	return nil
}
