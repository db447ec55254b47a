package jsonflow

// Merge combines two schema nodes into the schema that describes either
// input (§4.6). Merge is associative and commutative on Kind, Nullable
// and Required; only property insertion order in the result depends on
// argument order (first-seen wins).
func Merge(a, b *SchemaNode) *SchemaNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	// Null merges only ever toggle nullability on the other side; they
	// never introduce a new concrete kind.
	if a.Kind == SchemaNull && b.Kind != SchemaNull {
		return withNullable(b, true)
	}
	if b.Kind == SchemaNull && a.Kind != SchemaNull {
		return withNullable(a, true)
	}

	nullable := a.Nullable || b.Nullable || a.Kind == SchemaNull || b.Kind == SchemaNull
	required := a.Required && b.Required

	switch {
	case a.Kind == b.Kind:
		return mergeSameKind(a, b, nullable, required)
	case isNumeric(a.Kind) && isNumeric(b.Kind):
		// Integer merged with Number widens to Number (§3.3).
		return &SchemaNode{Kind: SchemaNumber, Nullable: nullable, Required: required}
	default:
		return &SchemaNode{Kind: SchemaMixed, Nullable: nullable, Required: required}
	}
}

func isNumeric(k SchemaKind) bool { return k == SchemaInteger || k == SchemaNumber }

func mergeSameKind(a, b *SchemaNode, nullable, required bool) *SchemaNode {
	switch a.Kind {
	case SchemaArray:
		return &SchemaNode{
			Kind:     SchemaArray,
			Nullable: nullable,
			Required: required,
			Items:    mergeItems(a.Items, b.Items),
		}
	case SchemaObject:
		return &SchemaNode{
			Kind:       SchemaObject,
			Nullable:   nullable,
			Required:   required,
			Properties: mergeProperties(a.Properties, b.Properties),
		}
	default:
		return &SchemaNode{Kind: a.Kind, Nullable: nullable, Required: required}
	}
}

// mergeItems merges two array element schemas. If one side has no
// sampled items (empty array observation), the merged items schema is
// the other side's, marked nullable (§4.6).
func mergeItems(a, b *SchemaNode) *SchemaNode {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return withNullable(b, true)
	case b == nil:
		return withNullable(a, true)
	default:
		return Merge(a, b)
	}
}

// mergeProperties merges two objects' property maps by name: a property
// on both sides merges its schema and ANDs required; a property on only
// one side carries over as optional and nullable (§4.6). First-seen
// insertion order is preserved, `a`'s properties first, then any new
// names contributed by `b`.
func mergeProperties(a, b *OrderedProperties) *OrderedProperties {
	out := NewOrderedProperties()
	if a != nil {
		a.Range(func(name string, prop Property) bool {
			out.Set(name, prop)
			return true
		})
	}
	if b == nil {
		return out
	}

	b.Range(func(name string, bProp Property) bool {
		aProp, ok := out.Get(name)
		if !ok {
			out.Set(name, Property{Schema: withNullable(bProp.Schema, true), Required: false})
			return true
		}
		out.Set(name, Property{
			Schema:   Merge(aProp.Schema, bProp.Schema),
			Required: aProp.Required && bProp.Required,
		})
		return true
	})

	// Properties present only on `a` become optional too, since `b`
	// didn't observe them.
	if a != nil {
		a.Range(func(name string, aProp Property) bool {
			if _, inB := b.Get(name); !inB {
				out.Set(name, Property{Schema: withNullable(aProp.Schema, true), Required: false})
			}
			return true
		})
	}
	return out
}

func withNullable(n *SchemaNode, nullable bool) *SchemaNode {
	if n == nil {
		return &SchemaNode{Kind: SchemaNull, Nullable: true}
	}
	cp := *n
	cp.Nullable = cp.Nullable || nullable
	return &cp
}

// MergeBatch folds Merge over schemas in order, producing a single
// schema whose property order reflects first-seen order across the
// sequence (§4.8 "Schema across batch").
func MergeBatch(schemas []*SchemaNode) *SchemaNode {
	var out *SchemaNode
	for _, s := range schemas {
		out = Merge(out, s)
	}
	return out
}
