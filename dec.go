package main

import "fmt"

// assembleDEC encodes DEC r32 (48+rd).
func assembleDEC(buf *EmitBuffer, op Operand) error {
	if op.Kind != OperandReg32 {
		return fmt.Errorf("DEC requires a 32-bit register operand")
	}
	buf.WriteByte(0x48 + op.Reg)
	return nil
}
