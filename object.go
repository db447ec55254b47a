package jsonflow

// Object is an insertion-ordered string-to-Value mapping. Iteration via
// Keys/Range always yields entries in the order they were first inserted;
// Set on an existing key updates its value in place without moving it,
// while Insert rejects an existing key.
type Object struct {
	index map[string]int
	keys  []string
	vals  []*Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of properties.
func (o *Object) Len() int { return len(o.keys) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Get returns the value for key, or nil if absent.
func (o *Object) Get(key string) *Value {
	if i, ok := o.index[key]; ok {
		return o.vals[i]
	}
	return nil
}

// Set inserts key with value, appending it at the end if new, or
// overwriting the existing slot in place if key is already present.
func (o *Object) Set(key string, value *Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = value
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, value)
}

// Insert appends key with value. It is a programmer error to call Insert
// with a key already present; callers constructing new objects from a
// decoder should prefer Insert, which panics on the duplicate-key
// violation the JSON value model disallows. Use Set when overwrite is
// intended (e.g. key rewriting).
func (o *Object) Insert(key string, value *Value) {
	if o.Has(key) {
		panic("jsonflow: duplicate object key on insert: " + key)
	}
	o.Set(key, value)
}

// Delete removes key if present, shifting subsequent keys left so
// iteration order of the remaining keys is preserved.
func (o *Object) Delete(key string) {
	i, ok := o.index[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for k := i; k < len(o.keys); k++ {
		o.index[o.keys[k]] = k
	}
}

// Keys returns the property names in insertion order. Callers must not
// mutate the returned slice.
func (o *Object) Keys() []string { return o.keys }

// Range calls fn for each property in insertion order, stopping early if
// fn returns false.
func (o *Object) Range(fn func(key string, value *Value) bool) {
	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// Clone deep-copies the object, preserving key order.
func (o *Object) Clone() *Object {
	out := &Object{
		index: make(map[string]int, len(o.index)),
		keys:  make([]string, len(o.keys)),
		vals:  make([]*Value, len(o.vals)),
	}
	copy(out.keys, o.keys)
	for k, v := range o.index {
		out.index[k] = v
	}
	for i, v := range o.vals {
		out.vals[i] = v.Clone()
	}
	return out
}

// Equal reports whether o and other have the same keys, in the same
// order, with structurally equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		if !o.vals[i].Equal(other.vals[i]) {
			return false
		}
	}
	return true
}
