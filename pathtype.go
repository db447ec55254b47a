package jsonflow

// PathsWithTypes produces a mapping from each flattened path to the
// type-name string of the value found there (§4.2). Unlike Flatten, empty
// containers are emitted (as "array"/"object") rather than elided, since
// there is no leaf beneath them to take over their path.
func PathsWithTypes(v *Value, maxPathLength int) (*Value, error) {
	if maxPathLength <= 0 {
		maxPathLength = DefaultMaxPathLength
	}
	if !v.IsContainer() {
		out := Obj()
		out.Object().Insert("root", Str(v.Kind().String()))
		return out, nil
	}

	out := Obj()
	p := &pathTyper{maxPathLength: maxPathLength}
	if err := p.walk(v, "", out); err != nil {
		return nil, err
	}
	return out, nil
}

type pathTyper struct {
	maxPathLength int
}

func (p *pathTyper) walk(v *Value, path string, out *Value) error {
	switch v.Kind() {
	case KindObject:
		if v.Len() == 0 {
			out.Object().Insert(path, Str("object"))
			return nil
		}
		var walkErr error
		v.Object().Range(func(key string, val *Value) bool {
			childPath := joinObjectPath(path, key)
			if len(childPath) > p.maxPathLength {
				walkErr = &PathOverflowError{Path: childPath, Limit: p.maxPathLength}
				return false
			}
			walkErr = p.walk(val, childPath, out)
			return walkErr == nil
		})
		return walkErr
	case KindArray:
		if v.Len() == 0 {
			out.Object().Insert(path, Str("array"))
			return nil
		}
		for i, val := range v.Array() {
			childPath := joinArrayPath(path, i)
			if len(childPath) > p.maxPathLength {
				return &PathOverflowError{Path: childPath, Limit: p.maxPathLength}
			}
			if err := p.walk(val, childPath, out); err != nil {
				return err
			}
		}
		return nil
	default:
		out.Object().Insert(path, Str(v.Kind().String()))
		return nil
	}
}
