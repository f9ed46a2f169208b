package main

// andOpcodes: 0x21 AND r/m32,r32; 0x23 AND r32,r/m32; 0x25 AND EAX,imm32;
// 0x81 AND r/m32,imm32 extension /4.
var andOpcodes = binaryOpcodes{RMtoReg: 0x21, RegToRM: 0x23, EAXImm: 0x25, ImmGroup: 0x81, Ext: 0b100}

func assembleAND(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, andOpcodes, dst, src)
}
