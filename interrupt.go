package main

import "fmt"

// assembleINT encodes INT imm8 (CD ib). The immediate must fit in a byte.
func assembleINT(buf *EmitBuffer, op Operand) error {
	if op.Kind != OperandImm32 {
		return fmt.Errorf("INT requires an immediate operand")
	}
	if op.Imm > 0xFF {
		return fmt.Errorf("INT immediate %d out of range (0-255)", op.Imm)
	}
	buf.WriteByte(0xCD)
	buf.WriteByte(byte(op.Imm))
	return nil
}
