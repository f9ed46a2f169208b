package main

// cmpOpcodes: 0x39 CMP r/m32,r32; 0x3B CMP r32,r/m32; 0x3D CMP EAX,imm32;
// 0x81 CMP r/m32,imm32 extension /7.
var cmpOpcodes = binaryOpcodes{RMtoReg: 0x39, RegToRM: 0x3B, EAXImm: 0x3D, ImmGroup: 0x81, Ext: 0b111}

func assembleCMP(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, cmpOpcodes, dst, src)
}
