package main

// addOpcodes: 0x01 ADD r/m32,r32; 0x03 ADD r32,r/m32; 0x05 ADD EAX,imm32;
// 0x81 ADD r/m32,imm32 extension /0.
var addOpcodes = binaryOpcodes{RMtoReg: 0x01, RegToRM: 0x03, EAXImm: 0x05, ImmGroup: 0x81, Ext: 0b000}

func assembleADD(buf *EmitBuffer, pending *PendingReferenceTable, dst, src Operand) error {
	return emitBinary(buf, pending, addOpcodes, dst, src)
}
