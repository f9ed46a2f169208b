package main

// orOpcodes: 0x09 OR r/m32,r32; 0x0B OR r32,r/m32; 0x0D OR EAX,imm32;
// 0x81 OR r/m32,imm32 extension /1.
var orOpcodes = binaryOpcodes{RMtoReg: 0x09, RegToRM: 0x0B, EAXImm: 0x0D, ImmGroup: 0x81, Ext: 0b001}

func assembleOR(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, orOpcodes, dst, src)
}
