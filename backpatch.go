package main

// Backpatch resolves every pending reference against the final symbol
// table, writing absolute or PC-relative values into the placeholder bytes
// reserved during encoding. Invoked once, after all input lines are
// consumed. Unresolved labels produce a warning and their placeholder
// bytes are left as zero.
func Backpatch(buf *EmitBuffer, syms *SymbolTable, pending *PendingReferenceTable, diags *Diagnostics) {
	for _, label := range pending.Labels() {
		target, ok := syms.Lookup(label)
		if !ok {
			diags.Add(Diagnostic{
				Severity: SeverityWarning,
				Category: CategoryUnresolved,
				Message:  "unresolved label '" + label + "', reference not patched",
			})
			continue
		}

		for _, ref := range pending.Refs(label) {
			var value uint32
			switch ref.Kind {
			case RefAbsolute:
				value = uint32(target)
			case RefPCRelative:
				// No sign-range check is performed for width-1 sites: an
				// offset that doesn't fit in a signed byte is silently
				// truncated to its low byte.
				value = uint32(int32(target) - int32(ref.Position+ref.Width))
			}
			buf.Patch(ref.Position, ref.Width, value)
		}
	}
}
