package main

// subOpcodes: 0x29 SUB r/m32,r32; 0x2B SUB r32,r/m32; 0x2D SUB EAX,imm32;
// 0x81 SUB r/m32,imm32 extension /5.
var subOpcodes = binaryOpcodes{RMtoReg: 0x29, RegToRM: 0x2B, EAXImm: 0x2D, ImmGroup: 0x81, Ext: 0b101}

func assembleSUB(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, subOpcodes, dst, src)
}
