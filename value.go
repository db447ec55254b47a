package jsonflow

// Kind identifies which of the seven JSON value variants (plus the
// integer/number split) a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the fixed type-name vocabulary used by the path-type
// extractor and the schema emitter: "null", "boolean", "integer", "number",
// "string", "array", "object".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an in-memory tagged JSON tree node. The zero Value is Null.
// Values are owned exclusively by their holder: primitives (Array, String)
// carry to a new owner must go through Clone, never shared by reference.
type Value struct {
	kind Kind
	b    bool
	i    int64
	n    float64
	s    string
	arr  []*Value
	obj  *Object
}

// Null returns a Value holding JSON null.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a Value holding a JSON boolean.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int returns a Value holding a JSON integer (exactly representable as int64).
func Int(i int64) *Value { return &Value{kind: KindInteger, i: i} }

// Float returns a Value holding a JSON number with a fractional component.
func Float(f float64) *Value { return &Value{kind: KindNumber, n: f} }

// Str returns a Value holding a JSON string.
func Str(s string) *Value { return &Value{kind: KindString, s: s} }

// Arr returns a Value holding a JSON array built from the given elements.
// Ownership of each element transfers to the returned array.
func Arr(elems ...*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}

// Obj returns a Value holding an empty JSON object.
func Obj() *Value {
	return &Value{kind: KindObject, obj: NewObject()}
}

// Kind reports the variant held by v.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool    { return v.kind == KindNull }
func (v *Value) IsBool() bool    { return v.kind == KindBool }
func (v *Value) IsInteger() bool { return v.kind == KindInteger }
func (v *Value) IsNumber() bool  { return v.kind == KindNumber }
func (v *Value) IsString() bool  { return v.kind == KindString }
func (v *Value) IsArray() bool   { return v.kind == KindArray }
func (v *Value) IsObject() bool  { return v.kind == KindObject }

// IsContainer reports whether v is an Array or Object, i.e. not a leaf for
// flattening purposes.
func (v *Value) IsContainer() bool { return v.kind == KindArray || v.kind == KindObject }

// BoolValue returns the boolean payload; valid only when Kind() == KindBool.
func (v *Value) BoolValue() bool { return v.b }

// IntValue returns the integer payload; valid only when Kind() == KindInteger.
func (v *Value) IntValue() int64 { return v.i }

// FloatValue returns the float payload; valid only when Kind() == KindNumber.
func (v *Value) FloatValue() float64 { return v.n }

// StrValue returns the string payload; valid only when Kind() == KindString.
func (v *Value) StrValue() string { return v.s }

// Array returns the element slice; valid only when Kind() == KindArray.
// Callers must not retain it across a mutation of v.
func (v *Value) Array() []*Value { return v.arr }

// Object returns the backing ordered map; valid only when Kind() == KindObject.
func (v *Value) Object() *Object { return v.obj }

// Len reports the number of elements (Array) or properties (Object); zero
// for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Push appends an element to an Array value.
func (v *Value) Push(elem *Value) {
	v.arr = append(v.arr, elem)
}

// Clone deep-copies v so the result can be safely retained in a second
// location without aliasing the original tree.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindArray:
		out := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Clone()
		}
		return &Value{kind: KindArray, arr: out}
	case KindObject:
		return &Value{kind: KindObject, obj: v.obj.Clone()}
	default:
		cp := *v
		return &cp
	}
}

// Equal reports structural equality: same kind, same payload, same
// insertion order for objects and arrays.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInteger:
		return v.i == other.i
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}
	return false
}
