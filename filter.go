package jsonflow

// Filter removes empty-string and/or null values from v recursively
// (§4.3). Array holes are not preserved: filtered elements are dropped
// and subsequent elements shift left. Scalars are returned unchanged.
func Filter(v *Value, removeEmptyStrings, removeNulls bool) *Value {
	if !removeEmptyStrings && !removeNulls {
		return v.Clone()
	}
	return filterValue(v, removeEmptyStrings, removeNulls)
}

func filterValue(v *Value, removeEmptyStrings, removeNulls bool) *Value {
	switch v.Kind() {
	case KindObject:
		out := Obj()
		v.Object().Range(func(key string, val *Value) bool {
			if shouldDrop(val, removeEmptyStrings, removeNulls) {
				return true
			}
			out.Object().Insert(key, filterValue(val, removeEmptyStrings, removeNulls))
			return true
		})
		return out
	case KindArray:
		out := Arr()
		for _, val := range v.Array() {
			if shouldDrop(val, removeEmptyStrings, removeNulls) {
				continue
			}
			out.Push(filterValue(val, removeEmptyStrings, removeNulls))
		}
		return out
	default:
		return v.Clone()
	}
}

func shouldDrop(v *Value, removeEmptyStrings, removeNulls bool) bool {
	if removeNulls && v.IsNull() {
		return true
	}
	if removeEmptyStrings && v.IsString() && v.StrValue() == "" {
		return true
	}
	return false
}
