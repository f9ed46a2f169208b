package main

// assembleRET encodes RET (C3).
func assembleRET(buf *EmitBuffer) {
	buf.WriteByte(0xC3)
}

// assembleLEAVE encodes LEAVE (C9).
func assembleLEAVE(buf *EmitBuffer) {
	buf.WriteByte(0xC9)
}

// assembleNOP encodes NOP (90).
func assembleNOP(buf *EmitBuffer) {
	buf.WriteByte(0x90)
}
