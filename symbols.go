package main

import "fmt"

// RefKind distinguishes an absolute patch (writes the target LC) from a
// PC-relative patch (writes target LC minus the byte after the placeholder).
type RefKind int

const (
	RefAbsolute RefKind = iota
	RefPCRelative
)

// String renders the kind the way referencias.txt expects it.
func (k RefKind) String() string {
	if k == RefAbsolute {
		return "ABSOLUTO"
	}
	return "RELATIVO"
}

// PendingRef is a single patch site: a placeholder region in the emit
// buffer that must be overwritten once its label is defined.
type PendingRef struct {
	Position int
	Width    int
	Kind     RefKind
}

// SymbolTable maps label name to the LC at its point of definition.
// Iteration follows declaration order so report output is deterministic
// across runs.
type SymbolTable struct {
	values map[string]int
	order  []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{values: make(map[string]int)}
}

// Define records name at lc. Redefining an existing name is an error.
func (t *SymbolTable) Define(name string, lc int) error {
	if _, exists := t.values[name]; exists {
		return fmt.Errorf("label %q already defined", name)
	}
	t.values[name] = lc
	t.order = append(t.order, name)
	return nil
}

// Lookup returns the LC for name, or ok=false if it is not defined.
func (t *SymbolTable) Lookup(name string) (int, bool) {
	lc, ok := t.values[name]
	return lc, ok
}

// Names returns every defined label in declaration order.
func (t *SymbolTable) Names() []string {
	return t.order
}

// PendingReferenceTable maps label name to its ordered list of patch sites.
type PendingReferenceTable struct {
	refs  map[string][]PendingRef
	order []string
}

// NewPendingReferenceTable creates an empty pending-reference table.
func NewPendingReferenceTable() *PendingReferenceTable {
	return &PendingReferenceTable{refs: make(map[string][]PendingRef)}
}

// Record appends a patch site for name.
func (p *PendingReferenceTable) Record(name string, position, width int, kind RefKind) {
	if _, seen := p.refs[name]; !seen {
		p.order = append(p.order, name)
	}
	p.refs[name] = append(p.refs[name], PendingRef{Position: position, Width: width, Kind: kind})
}

// Labels returns every label with at least one pending reference, in the
// order each was first referenced.
func (p *PendingReferenceTable) Labels() []string {
	return p.order
}

// Refs returns the patch sites recorded for name, in insertion order.
func (p *PendingReferenceTable) Refs(name string) []PendingRef {
	return p.refs[name]
}
