package jsonflow

// DefaultArraySampleSize is the recommended number of evenly-spaced array
// elements sampled during inference (§4.5).
const DefaultArraySampleSize = 50

// SchemaKind is the lattice of inferred JSON types (§3.3), including the
// unresolved top Mixed element.
type SchemaKind int

const (
	SchemaNull SchemaKind = iota
	SchemaBoolean
	SchemaInteger
	SchemaNumber
	SchemaString
	SchemaArray
	SchemaObject
	SchemaMixed
)

func (k SchemaKind) String() string {
	switch k {
	case SchemaNull:
		return "null"
	case SchemaBoolean:
		return "boolean"
	case SchemaInteger:
		return "integer"
	case SchemaNumber:
		return "number"
	case SchemaString:
		return "string"
	case SchemaArray:
		return "array"
	case SchemaObject:
		return "object"
	default:
		return "mixed"
	}
}

// Property records the merged schema for a single object property
// together with its required flag (§3.3).
type Property struct {
	Schema   *SchemaNode
	Required bool
}

// SchemaNode is one point in the inferred type lattice (§3.3).
type SchemaNode struct {
	Kind       SchemaKind
	Nullable   bool
	Required   bool
	Items      *SchemaNode         // set when Kind == SchemaArray
	Properties *OrderedProperties   // set when Kind == SchemaObject
}

// OrderedProperties is a first-seen-order mapping from property name to
// Property, mirroring Object's insertion-order guarantee (§3.3).
type OrderedProperties struct {
	keys  []string
	index map[string]int
	vals  []Property
}

// NewOrderedProperties returns an empty OrderedProperties.
func NewOrderedProperties() *OrderedProperties {
	return &OrderedProperties{index: make(map[string]int)}
}

func (p *OrderedProperties) Get(name string) (Property, bool) {
	if i, ok := p.index[name]; ok {
		return p.vals[i], true
	}
	return Property{}, false
}

func (p *OrderedProperties) Set(name string, prop Property) {
	if i, ok := p.index[name]; ok {
		p.vals[i] = prop
		return
	}
	p.index[name] = len(p.keys)
	p.keys = append(p.keys, name)
	p.vals = append(p.vals, prop)
}

func (p *OrderedProperties) Keys() []string { return p.keys }

func (p *OrderedProperties) Len() int { return len(p.keys) }

func (p *OrderedProperties) Range(fn func(name string, prop Property) bool) {
	for i, k := range p.keys {
		if !fn(k, p.vals[i]) {
			return
		}
	}
}

// Infer builds a SchemaNode describing v (§4.5). sampleSize bounds how
// many evenly-spaced array elements are sampled before folding; zero uses
// DefaultArraySampleSize.
func Infer(v *Value, sampleSize int) *SchemaNode {
	if sampleSize <= 0 {
		sampleSize = DefaultArraySampleSize
	}
	return inferValue(v, sampleSize)
}

func inferValue(v *Value, sampleSize int) *SchemaNode {
	switch v.Kind() {
	case KindNull:
		return &SchemaNode{Kind: SchemaNull, Nullable: true, Required: false}
	case KindBool:
		return &SchemaNode{Kind: SchemaBoolean, Required: true}
	case KindInteger:
		return &SchemaNode{Kind: SchemaInteger, Required: true}
	case KindNumber:
		return &SchemaNode{Kind: SchemaNumber, Required: true}
	case KindString:
		return &SchemaNode{Kind: SchemaString, Required: true}
	case KindArray:
		return inferArray(v, sampleSize)
	case KindObject:
		return inferObject(v, sampleSize)
	default:
		return &SchemaNode{Kind: SchemaMixed, Required: true}
	}
}

func inferArray(v *Value, sampleSize int) *SchemaNode {
	node := &SchemaNode{Kind: SchemaArray, Required: true}
	elems := v.Array()
	if len(elems) == 0 {
		node.Items = &SchemaNode{Kind: SchemaNull, Nullable: true}
		return node
	}

	sampled := sampleIndices(len(elems), sampleSize)
	var items *SchemaNode
	for _, i := range sampled {
		elemSchema := inferValue(elems[i], sampleSize)
		if items == nil {
			items = elemSchema
		} else {
			items = Merge(items, elemSchema)
		}
	}
	node.Items = items
	return node
}

// sampleIndices returns up to n evenly-spaced indices in [0, length).
func sampleIndices(length, n int) []int {
	if length <= n {
		out := make([]int, length)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, n)
	step := float64(length) / float64(n)
	for i := 0; i < n; i++ {
		idx := int(float64(i) * step)
		if idx >= length {
			idx = length - 1
		}
		out[i] = idx
	}
	return out
}

func inferObject(v *Value, sampleSize int) *SchemaNode {
	node := &SchemaNode{Kind: SchemaObject, Required: true, Properties: NewOrderedProperties()}
	v.Object().Range(func(key string, val *Value) bool {
		propSchema := inferValue(val, sampleSize)
		node.Properties.Set(key, Property{Schema: propSchema, Required: true})
		return true
	})
	return node
}
