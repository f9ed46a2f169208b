package main

import "strings"

// REG32 maps the NASM-style 32-bit register names to their ModR/M/SIB/+rd
// encoding. Process-wide constant per the data model.
var REG32 = map[string]uint8{
	"EAX": 0,
	"ECX": 1,
	"EDX": 2,
	"EBX": 3,
	"ESP": 4,
	"EBP": 5,
	"ESI": 6,
	"EDI": 7,
}

// REG8 maps the NASM-style 8-bit register names to their ModR/M encoding.
var REG8 = map[string]uint8{
	"AL": 0,
	"CL": 1,
	"DL": 2,
	"BL": 3,
	"AH": 4,
	"CH": 5,
	"DH": 6,
	"BH": 7,
}

// LookupReg32 returns the encoding for a 32-bit register name.
func LookupReg32(name string) (uint8, bool) {
	code, ok := REG32[strings.ToUpper(name)]
	return code, ok
}

// LookupReg8 returns the encoding for an 8-bit register name.
func LookupReg8(name string) (uint8, bool) {
	code, ok := REG8[strings.ToUpper(name)]
	return code, ok
}
