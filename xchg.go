package main

import "fmt"

// assembleXCHG encodes XCHG r/m32, r32 (87 /r), accepting either a register
// or memory destination.
func assembleXCHG(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	switch {
	case dst.Kind == OperandReg32 && src.Kind == OperandReg32:
		buf.WriteByte(0x87)
		buf.WriteByte(generateModRM(0b11, src.Reg, dst.Reg))
		return nil
	case dst.IsMemory() && src.Kind == OperandReg32:
		buf.WriteByte(0x87)
		emitMemory(buf, pending, dst, src.Reg)
		return nil
	default:
		return fmt.Errorf("unsupported operand combination for XCHG")
	}
}
