package main

import (
	"fmt"
	"io"
)

// WriteHexDump renders buf as two uppercase hex digits per byte separated by
// a space, with a newline after every bytesPerLine-th byte and, if the final
// line is partial, a trailing newline. bytesPerLine <= 0 falls back to the
// default wrap width of 16.
func WriteHexDump(w io.Writer, buf []byte, bytesPerLine int) error {
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}
	for i, b := range buf {
		if _, err := fmt.Fprintf(w, "%02X ", b); err != nil {
			return err
		}
		if (i+1)%bytesPerLine == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	if len(buf)%bytesPerLine != 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteSymbolReport renders the symbol table as "Tabla de Simbolos:" followed
// by one "NAME -> OFFSET" line per symbol, in declaration order.
func WriteSymbolReport(w io.Writer, syms *SymbolTable) error {
	if _, err := fmt.Fprintln(w, "Tabla de Simbolos:"); err != nil {
		return err
	}
	for _, name := range syms.Names() {
		offset, _ := syms.Lookup(name)
		if _, err := fmt.Fprintf(w, "%s -> %d\n", name, offset); err != nil {
			return err
		}
	}
	return nil
}

// WriteReferenceReport renders the pending-reference table as "Tabla de
// Referencias Pendientes:" followed by one line per patch site, in the order
// each label was first referenced.
func WriteReferenceReport(w io.Writer, pending *PendingReferenceTable) error {
	if _, err := fmt.Fprintln(w, "Tabla de Referencias Pendientes:"); err != nil {
		return err
	}
	for _, name := range pending.Labels() {
		for _, ref := range pending.Refs(name) {
			_, err := fmt.Fprintf(w, "Etiqueta: %s, Posicion: %d, Tamano: %d, Tipo: %s\n",
				name, ref.Position, ref.Width, ref.Kind)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
