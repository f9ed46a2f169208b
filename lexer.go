package main

import "strings"

// NormalizeLine folds case to uppercase, strips a trailing ";" comment, and
// trims leading/trailing whitespace. Idempotent: re-normalizing an
// already-normalized line returns it unchanged.
func NormalizeLine(raw string) string {
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimRight(raw, "\r")
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsLabelDef reports whether a normalized line is a standalone "NAME:" label
// definition, returning the label name with the colon stripped.
func IsLabelDef(normalized string) (string, bool) {
	if len(normalized) < 2 || normalized[len(normalized)-1] != ':' {
		return "", false
	}
	name := normalized[:len(normalized)-1]
	if name == "" {
		return "", false
	}
	return name, true
}

// SplitMnemonic splits a normalized instruction/directive line into its
// mnemonic and the (re-normalized) operand string.
func SplitMnemonic(normalized string) (mnemonic, operands string) {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return "", ""
	}
	mnemonic = fields[0]
	rest := strings.TrimSpace(normalized[len(mnemonic):])
	return mnemonic, NormalizeLine(rest)
}

// splitOperands splits a comma-separated operand string into its non-empty
// trimmed operands, respecting bracket nesting so a memory operand's own
// commas (there are none in this dialect, but defensively) don't split it.
// The number of parts is not capped; callers reject an unexpected count.
func splitOperands(operands string) []string {
	var result []string
	depth := 0
	start := 0
	for i, r := range operands {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if part := strings.TrimSpace(operands[start:i]); part != "" {
					result = append(result, part)
				}
				start = i + 1
			}
		}
	}
	if start < len(operands) {
		if part := strings.TrimSpace(operands[start:]); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// stripSizeHint removes a leading "BYTE " size hint from an operand token.
func stripSizeHint(op string) string {
	const hint = "BYTE "
	if strings.HasPrefix(op, hint) {
		return strings.TrimSpace(op[len(hint):])
	}
	return op
}
