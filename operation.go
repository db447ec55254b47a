package jsonflow

// OpKind identifies which variant an Operation record holds (§3.2).
type OpKind int

const (
	OpRemoveEmptyStrings OpKind = iota
	OpRemoveNulls
	OpReplaceKeys
	OpReplaceValues
	OpFlatten
)

// OpMask is a bitmask over OpKind values, precomputed by the pipeline
// builder so the runner can answer "does this pipeline contain X" in
// O(1) during traversal (§3.2).
type OpMask uint8

func maskBit(k OpKind) OpMask { return 1 << OpMask(k) }

func (m OpMask) has(k OpKind) bool { return m&maskBit(k) != 0 }

// Operation is one queued pipeline step. Pattern/Replacement/Compiled are
// populated only for the Replace* variants; immutable once queued (§3.2).
type Operation struct {
	Kind        OpKind
	Pattern     string
	Replacement string
	Compiled    *CompiledPattern
}

// RemoveEmptyStringsOp queues removal of empty-string values.
func RemoveEmptyStringsOp() Operation { return Operation{Kind: OpRemoveEmptyStrings} }

// RemoveNullsOp queues removal of null values.
func RemoveNullsOp() Operation { return Operation{Kind: OpRemoveNulls} }

// ReplaceKeysOp queues whole-key replacement for keys matching pattern.
func ReplaceKeysOp(pattern, replacement string, compiled *CompiledPattern) Operation {
	return Operation{Kind: OpReplaceKeys, Pattern: pattern, Replacement: replacement, Compiled: compiled}
}

// ReplaceValuesOp queues whole-value replacement for string values matching pattern.
func ReplaceValuesOp(pattern, replacement string, compiled *CompiledPattern) Operation {
	return Operation{Kind: OpReplaceValues, Pattern: pattern, Replacement: replacement, Compiled: compiled}
}

// FlattenOp queues the flatten step, always applied last (§4.8).
func FlattenOp() Operation { return Operation{Kind: OpFlatten} }

// compileMask precomputes the bitmask for an ordered operation list.
func compileMask(ops []Operation) OpMask {
	var m OpMask
	for _, op := range ops {
		m |= maskBit(op.Kind)
	}
	return m
}
