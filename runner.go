package jsonflow

import (
	"github.com/jflowlabs/jsonflow/internal/executor"
)

// Run executes ops against root per the pipeline's execution order
// discipline (§4.8):
//  1. compile the operation bitmask,
//  2. if any filtering or regex operation is queued, perform one
//     traversal applying, per node, key rewriting then empty/null
//     removal then value rewriting, recursing into surviving containers,
//  3. if Flatten is queued, apply it last, with batch fan-out when the
//     result is a large enough array of independent elements.
func Run(root *Value, ops []Operation, cfg *config) (*Value, error) {
	mask := compileMask(ops)

	var keyPattern, valuePattern *CompiledPattern
	var keyReplacement, valueReplacement string
	for _, op := range ops {
		switch op.Kind {
		case OpReplaceKeys:
			keyPattern, keyReplacement = op.Compiled, op.Replacement
		case OpReplaceValues:
			valuePattern, valueReplacement = op.Compiled, op.Replacement
		}
	}

	current := root
	if mask.has(OpReplaceKeys) || mask.has(OpRemoveEmptyStrings) || mask.has(OpRemoveNulls) || mask.has(OpReplaceValues) {
		current = traverse(current, mask, keyPattern, keyReplacement, valuePattern, valueReplacement, cfg)
	} else {
		current = current.Clone()
	}

	if mask.has(OpFlatten) {
		flattened, err := runFlatten(current, cfg)
		if err != nil {
			return nil, err
		}
		current = flattened
	}

	return current, nil
}

// traverse is the single in-place-style pass combining key rewrite,
// empty/null removal and value rewrite, recursing into surviving
// containers (§4.8 step 2).
func traverse(v *Value, mask OpMask, keyPattern *CompiledPattern, keyReplacement string,
	valuePattern *CompiledPattern, valueReplacement string, cfg *config) *Value {

	switch v.Kind() {
	case KindObject:
		out := Obj()
		v.Object().Range(func(key string, val *Value) bool {
			newKey := key
			if mask.has(OpReplaceKeys) {
				newKey = rewriteKey(key, keyPattern, keyReplacement, cfg.maxRegexLength, cfg.diagnostics)
			}

			if mask.has(OpRemoveEmptyStrings) && val.IsString() && val.StrValue() == "" {
				return true
			}
			if mask.has(OpRemoveNulls) && val.IsNull() {
				return true
			}

			newVal := val
			if mask.has(OpReplaceValues) && !val.IsContainer() {
				newVal = rewriteValue(val, valuePattern, valueReplacement, cfg.maxRegexLength, cfg.diagnostics)
			}

			out.Object().Set(newKey, traverse(newVal, mask, keyPattern, keyReplacement, valuePattern, valueReplacement, cfg))
			return true
		})
		return out
	case KindArray:
		out := Arr()
		for _, val := range v.Array() {
			if mask.has(OpRemoveEmptyStrings) && val.IsString() && val.StrValue() == "" {
				continue
			}
			if mask.has(OpRemoveNulls) && val.IsNull() {
				continue
			}
			newVal := val
			if mask.has(OpReplaceValues) && !val.IsContainer() {
				newVal = rewriteValue(val, valuePattern, valueReplacement, cfg.maxRegexLength, cfg.diagnostics)
			}
			out.Push(traverse(newVal, mask, keyPattern, keyReplacement, valuePattern, valueReplacement, cfg))
		}
		return out
	default:
		return v.Clone()
	}
}

// runFlatten applies Flatten, fanning out across the executor pool when
// the root is an array of at least MinBatchForMT independent elements
// containing at least one container (§4.8 "Batch parallelism").
func runFlatten(v *Value, cfg *config) (*Value, error) {
	if v.Kind() != KindArray || v.Len() < MinBatchForMT {
		return Flatten(v, cfg.maxPathLength)
	}

	hasContainer := false
	for _, e := range v.Array() {
		if e.IsContainer() {
			hasContainer = true
			break
		}
	}
	if !hasContainer {
		return Flatten(v, cfg.maxPathLength)
	}

	elems := v.Array()
	results := make([]*Value, len(elems))
	errs := make([]error, len(elems))

	pool := executor.New(ResolveThreads(cfg.threads))

	for i, e := range elems {
		i, e := i, e
		pool.Submit(func() {
			out, err := Flatten(e, cfg.maxPathLength)
			results[i] = out
			errs[i] = err
		})
	}
	pool.WaitAll()
	pool.Shutdown()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return Arr(results...), nil
}

// InferBatch infers a schema per element of a batch and folds them with
// Merge in input order (§4.8 "Schema across batch"). Inference runs in
// parallel across the executor pool when the batch is large enough;
// the fold is always sequential since it determines output property
// order.
func InferBatch(elems []*Value, cfg *config) *SchemaNode {
	schemas := make([]*SchemaNode, len(elems))

	if len(elems) >= MinBatchForMT {
		pool := executor.New(ResolveThreads(cfg.threads))
		for i, e := range elems {
			i, e := i, e
			pool.Submit(func() {
				schemas[i] = Infer(e, cfg.sampleSize)
			})
		}
		pool.WaitAll()
		pool.Shutdown()
	} else {
		for i, e := range elems {
			schemas[i] = Infer(e, cfg.sampleSize)
		}
	}

	return MergeBatch(schemas)
}
