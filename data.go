package main

import "strings"

// assembleDD defines name at the current LC and emits one little-endian
// dword per comma-separated value. A value that fails immediate
// classification is reported and contributes a zero dword.
func assembleDD(buf *EmitBuffer, syms *SymbolTable, diags *Diagnostics, line int, name string, valuesText string) error {
	if err := syms.Define(name, buf.LC()); err != nil {
		return err
	}
	for _, tok := range strings.Split(valuesText, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		op, err := classifyImmediate(tok)
		if err != nil {
			diags.Add(Diagnostic{
				Line:     line,
				Severity: SeverityWarning,
				Category: CategorySyntax,
				Message:  "invalid DD value '" + tok + "', using 0",
			})
			buf.WriteDword(0)
			continue
		}
		buf.WriteDword(op.Imm)
	}
	return nil
}

// assembleDB defines name at the current LC and emits the low 8 bits of a
// single value.
func assembleDB(buf *EmitBuffer, syms *SymbolTable, diags *Diagnostics, line int, name string, valueText string) error {
	if err := syms.Define(name, buf.LC()); err != nil {
		return err
	}
	valueText = strings.TrimSpace(valueText)
	if valueText == "" {
		buf.WriteByte(0)
		return nil
	}
	op, err := classifyImmediate(valueText)
	if err != nil {
		diags.Add(Diagnostic{
			Line:     line,
			Severity: SeverityWarning,
			Category: CategorySyntax,
			Message:  "invalid DB value '" + valueText + "', using 0",
		})
		buf.WriteByte(0)
		return nil
	}
	buf.WriteByte(byte(op.Imm))
	return nil
}

// isIgnoredDirective reports whether mnemonic is a no-op NASM directive that
// emits no bytes and defines no symbol.
func isIgnoredDirective(mnemonic string) bool {
	switch mnemonic {
	case "SECTION", "GLOBAL", "EXTERN", "BITS":
		return true
	default:
		return false
	}
}

// isEquDirective reports whether the second token of a line is EQU, which is
// also silently skipped.
func isEquDirective(operands string) bool {
	fields := strings.Fields(operands)
	return len(fields) > 0 && fields[0] == "EQU"
}
