package main

// xorOpcodes: 0x31 XOR r/m32,r32; 0x33 XOR r32,r/m32; 0x35 XOR EAX,imm32;
// 0x81 XOR r/m32,imm32 extension /6.
var xorOpcodes = binaryOpcodes{RMtoReg: 0x31, RegToRM: 0x33, EAXImm: 0x35, ImmGroup: 0x81, Ext: 0b110}

func assembleXOR(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, xorOpcodes, dst, src)
}
