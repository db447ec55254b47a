package jsonflow

import (
	"strconv"

	"github.com/jflowlabs/jsonflow/internal/alloc"
)

// DefaultMaxPathLength is the default bound (in bytes) on a single
// flattened key (§4.1). Exceeding it fails the document with
// PathOverflowError.
const DefaultMaxPathLength = 8192

// DefaultKeyArenaCapacity sizes the per-call arena backing flattened keys
// (§4.10). A document whose flattened keys exceed this in total spills
// the remainder to normal heap allocation; correctness is unaffected.
const DefaultKeyArenaCapacity = 64 * 1024

// Flatten produces a flat mapping from dotted/bracketed paths to leaf
// values per §4.1. Scalars are deep-copied unchanged. A maxPathLength of
// zero uses DefaultMaxPathLength.
func Flatten(v *Value, maxPathLength int) (*Value, error) {
	if maxPathLength <= 0 {
		maxPathLength = DefaultMaxPathLength
	}
	f := &flattener{maxPathLength: maxPathLength, arena: alloc.NewArena(DefaultKeyArenaCapacity)}

	switch v.Kind() {
	case KindObject:
		out := Obj()
		if err := f.walkObject(v, "", out); err != nil {
			return nil, err
		}
		return out, nil
	case KindArray:
		return f.flattenTopLevelArray(v)
	default:
		return v.Clone(), nil
	}
}

type flattener struct {
	maxPathLength int
	arena         *alloc.Arena
}

// flattenTopLevelArray implements the array-specific rule of §4.1: an
// all-scalar array is copied unchanged; an array with any container
// element has each element flattened independently.
func (f *flattener) flattenTopLevelArray(v *Value) (*Value, error) {
	hasContainer := false
	for _, e := range v.Array() {
		if e.IsContainer() {
			hasContainer = true
			break
		}
	}
	if !hasContainer {
		return v.Clone(), nil
	}

	out := Arr()
	for _, e := range v.Array() {
		switch e.Kind() {
		case KindObject:
			elemOut := Obj()
			if err := f.walkObject(e, "", elemOut); err != nil {
				return nil, err
			}
			out.Push(elemOut)
		case KindArray:
			elemOut, err := f.flattenTopLevelArray(e)
			if err != nil {
				return nil, err
			}
			out.Push(elemOut)
		default:
			out.Push(e.Clone())
		}
	}
	return out, nil
}

func (f *flattener) walkObject(obj *Value, prefix string, out *Value) error {
	var walkErr error
	obj.Object().Range(func(key string, val *Value) bool {
		childPath := joinObjectPath(prefix, key)
		if len(childPath) > f.maxPathLength {
			walkErr = &PathOverflowError{Path: childPath, Limit: f.maxPathLength}
			return false
		}
		walkErr = f.walkValue(val, childPath, out)
		return walkErr == nil
	})
	return walkErr
}

func (f *flattener) walkArray(arr *Value, prefix string, out *Value) error {
	for i, val := range arr.Array() {
		childPath := joinArrayPath(prefix, i)
		if len(childPath) > f.maxPathLength {
			return &PathOverflowError{Path: childPath, Limit: f.maxPathLength}
		}
		if err := f.walkValue(val, childPath, out); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener) walkValue(val *Value, path string, out *Value) error {
	switch val.Kind() {
	case KindObject:
		if val.Len() == 0 {
			return nil // empty containers are elided
		}
		return f.walkObject(val, path, out)
	case KindArray:
		if val.Len() == 0 {
			return nil
		}
		return f.walkArray(val, path, out)
	default:
		out.Object().Insert(f.arena.AllocString(path), val.Clone())
		return nil
	}
}

func joinObjectPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func joinArrayPath(prefix string, index int) string {
	idx := "[" + strconv.Itoa(index) + "]"
	if prefix == "" {
		return idx
	}
	return prefix + idx
}
