package main

import "fmt"

// binaryOpcodes is the opcode row a two-operand arithmetic/logic mnemonic
// selects from, mirroring the reference assembler's procesar_binaria table.
type binaryOpcodes struct {
	RMtoReg  byte  // r/m32, r32
	RegToRM  byte  // r32, r/m32
	EAXImm   byte  // EAX, imm32
	ImmGroup byte  // r/m32, imm32 (0x81); imm8 sign-extended form reuses 0x83
	Ext      uint8 // opcode-extension /digit for the imm forms
}

// emitBinary encodes a two-operand ADD/SUB/CMP/AND/OR/XOR instruction,
// selecting a form in the same priority order as the reference assembler:
// reg,reg; EAX,imm; reg,mem; mem,reg; mem,imm; reg,imm.
func emitBinary(buf *EmitBuffer, pending *PendingReferenceTable, ops binaryOpcodes, dst, src Operand) error {
	switch {
	case dst.Kind == OperandReg32 && src.Kind == OperandReg32:
		buf.WriteByte(ops.RMtoReg)
		buf.WriteByte(generateModRM(0b11, src.Reg, dst.Reg))
		return nil

	case dst.Kind == OperandReg32 && dst.Reg == 0 && src.Kind == OperandImm32:
		buf.WriteByte(ops.EAXImm)
		buf.WriteDword(src.Imm)
		return nil

	case dst.Kind == OperandReg32 && src.IsMemory():
		buf.WriteByte(ops.RegToRM)
		emitMemory(buf, pending, src, dst.Reg)
		return nil

	case dst.IsMemory() && src.Kind == OperandReg32:
		buf.WriteByte(ops.RMtoReg)
		emitMemory(buf, pending, dst, src.Reg)
		return nil

	case dst.IsMemory() && src.Kind == OperandImm32:
		opcode, useImm8 := immOpcode(ops.ImmGroup, src.Imm)
		buf.WriteByte(opcode)
		emitMemory(buf, pending, dst, ops.Ext)
		writeImm(buf, src.Imm, useImm8)
		return nil

	case dst.Kind == OperandReg32 && src.Kind == OperandImm32:
		opcode, useImm8 := immOpcode(ops.ImmGroup, src.Imm)
		buf.WriteByte(opcode)
		buf.WriteByte(generateModRM(0b11, ops.Ext, dst.Reg))
		writeImm(buf, src.Imm, useImm8)
		return nil

	default:
		return fmt.Errorf("unsupported operand combination")
	}
}

// immOpcode picks the 0x83 sign-extended imm8 encoding when the immediate is
// at most 0xFF or at least 0xFFFFFF80, falling back to the full imm32 group
// opcode. Values 0x80-0xFF also take the imm8 form; the processor
// sign-extends that byte.
func immOpcode(group byte, imm uint32) (opcode byte, useImm8 bool) {
	if imm <= 0xFF || imm >= 0xFFFFFF80 {
		return 0x83, true
	}
	return group, false
}

func writeImm(buf *EmitBuffer, imm uint32, useImm8 bool) {
	if useImm8 {
		buf.WriteByte(byte(imm))
		return
	}
	buf.WriteDword(imm)
}
