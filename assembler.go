package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Assembler holds the persistent state threaded across every source line:
// the emit buffer, symbol table, pending-reference table, and the
// diagnostics collected so far. There is no other state — each line is
// processed independently of every other.
type Assembler struct {
	Buf     *EmitBuffer
	Symbols *SymbolTable
	Pending *PendingReferenceTable
	Diags   *Diagnostics
}

// NewAssembler creates an Assembler with empty state.
func NewAssembler(verbose bool) *Assembler {
	return &Assembler{
		Buf:     &EmitBuffer{Verbose: verbose},
		Symbols: NewSymbolTable(),
		Pending: NewPendingReferenceTable(),
		Diags:   &Diagnostics{},
	}
}

// Assemble reads every line from r, processes it, and finally resolves
// every pending reference against the completed symbol table.
func (a *Assembler) Assemble(r io.Reader) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		a.ProcessLine(lineNo, scanner.Text())
	}
	Backpatch(a.Buf, a.Symbols, a.Pending, a.Diags)
}

// ProcessLine normalizes and dispatches a single source line: a standalone
// label definition, a data directive, an ignored NASM directive, or an
// instruction mnemonic. Any error is recorded as a diagnostic and the line
// contributes no further bytes; assembly always continues.
func (a *Assembler) ProcessLine(lineNo int, raw string) {
	normalized := NormalizeLine(raw)
	if normalized == "" {
		return
	}

	if label, ok := IsLabelDef(normalized); ok {
		a.define(lineNo, label)
		return
	}

	mnemonic, operands := SplitMnemonic(normalized)
	if mnemonic == "" {
		return
	}

	if isIgnoredDirective(mnemonic) {
		return
	}

	fields := strings.Fields(operands)
	if len(fields) > 0 && fields[0] == "EQU" {
		return
	}
	if len(fields) > 0 && fields[0] == "DD" {
		rest := strings.TrimSpace(operands[len("DD"):])
		if err := assembleDD(a.Buf, a.Symbols, a.Diags, lineNo, mnemonic, rest); err != nil {
			a.syntaxError(lineNo, err)
		}
		return
	}
	if len(fields) > 0 && fields[0] == "DB" {
		rest := strings.TrimSpace(operands[len("DB"):])
		if err := assembleDB(a.Buf, a.Symbols, a.Diags, lineNo, mnemonic, rest); err != nil {
			a.syntaxError(lineNo, err)
		}
		return
	}

	a.dispatch(lineNo, mnemonic, operands)
}

// define records a label at the current LC, reporting a redefinition as a
// syntax diagnostic rather than failing assembly.
func (a *Assembler) define(lineNo int, name string) {
	if err := a.Symbols.Define(name, a.Buf.LC()); err != nil {
		a.syntaxError(lineNo, err)
	}
}

func (a *Assembler) syntaxError(lineNo int, err error) {
	a.Diags.Add(Diagnostic{Line: lineNo, Severity: SeverityError, Category: CategorySyntax, Message: err.Error()})
}

// operandPair classifies the two comma-separated operands of a two-operand
// instruction line.
func operandPair(operands string) (dst, src Operand, err error) {
	parts := splitOperands(operands)
	if len(parts) != 2 {
		return Operand{}, Operand{}, fmt.Errorf("expected 2 operands, got %d", len(parts))
	}
	dst, err = ClassifyOperand(parts[0])
	if err != nil {
		return Operand{}, Operand{}, err
	}
	src, err = ClassifyOperand(parts[1])
	if err != nil {
		return Operand{}, Operand{}, err
	}
	return dst, src, nil
}

// operandSingle classifies the single operand of a one-operand instruction
// line.
func operandSingle(operands string) (Operand, error) {
	parts := splitOperands(operands)
	if len(parts) != 1 {
		return Operand{}, fmt.Errorf("expected 1 operand, got %d", len(parts))
	}
	return ClassifyOperand(parts[0])
}

// dispatch routes a classified mnemonic and its raw operand text to the
// matching encoder, mirroring the reference assembler's instruction
// dispatch table.
func (a *Assembler) dispatch(lineNo int, mnemonic, operands string) {
	var err error

	switch mnemonic {
	case "MOV":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleMOV(a.Buf, a.Pending, dst, src)
		}
	case "ADD":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleADD(a.Buf, a.Pending, dst, src)
		}
	case "SUB":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleSUB(a.Buf, a.Pending, dst, src)
		}
	case "CMP":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleCMP(a.Buf, a.Pending, dst, src)
		}
	case "XOR":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleXOR(a.Buf, a.Pending, dst, src)
		}
	case "AND":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleAND(a.Buf, a.Pending, dst, src)
		}
	case "OR":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleOR(a.Buf, a.Pending, dst, src)
		}
	case "TEST":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleTEST(a.Buf, dst, src)
		}
	case "XCHG":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleXCHG(a.Buf, a.Pending, dst, src)
		}
	case "IMUL":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleIMUL(a.Buf, dst, src)
		}
	case "LEA":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleLEA(a.Buf, a.Pending, dst, src)
		}
	case "MOVZX":
		var dst, src Operand
		if dst, src, err = operandPair(operands); err == nil {
			err = assembleMOVZX(a.Buf, a.Pending, dst, src)
		}
	case "INC":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleINC(a.Buf, op)
		}
	case "DEC":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleDEC(a.Buf, op)
		}
	case "MUL":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleMUL(a.Buf, a.Pending, op)
		}
	case "DIV":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleDIV(a.Buf, a.Pending, op)
		}
	case "IDIV":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleIDIV(a.Buf, a.Pending, op)
		}
	case "PUSH":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assemblePUSH(a.Buf, a.Pending, op)
		}
	case "POP":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assemblePOP(a.Buf, op)
		}
	case "INT":
		var op Operand
		if op, err = operandSingle(operands); err == nil {
			err = assembleINT(a.Buf, op)
		}
	case "RET":
		assembleRET(a.Buf)
	case "LEAVE":
		assembleLEAVE(a.Buf)
	case "NOP":
		assembleNOP(a.Buf)
	case "JMP":
		assembleJMP(a.Buf, a.Symbols, a.Pending, strings.TrimSpace(operands))
	case "CALL":
		assembleCALL(a.Buf, a.Pending, strings.TrimSpace(operands))
	case "LOOP":
		assembleLOOP(a.Buf, a.Pending, strings.TrimSpace(operands))
	case "JE", "JZ", "JNE", "JNZ", "JLE", "JL", "JA", "JAE", "JB", "JBE", "JG", "JGE":
		err = assembleConditional(a.Buf, a.Symbols, a.Pending, mnemonic, strings.TrimSpace(operands))
	default:
		err = fmt.Errorf("unsupported mnemonic or directive: %s", mnemonic)
	}

	if err != nil {
		a.syntaxError(lineNo, err)
	}
}
