package jsonflow

// DraftSchemaURI is the $schema value stamped on the root of every emitted
// document (§4.7).
const DraftSchemaURI = "http://json-schema.org/draft-07/schema#"

// EmitSchema renders node as a Draft-07 JSON Schema document, with the
// root carrying a $schema field (§4.7). Property and required ordering
// follows first-seen insertion order from inference, never sorted.
func EmitSchema(node *SchemaNode) *Value {
	out := emitNode(node)
	if out.IsObject() {
		root := Obj()
		root.Object().Insert("$schema", Str(DraftSchemaURI))
		out.Object().Range(func(key string, val *Value) bool {
			root.Object().Insert(key, val)
			return true
		})
		return root
	}
	return out
}

func emitNode(node *SchemaNode) *Value {
	if node == nil {
		return Obj()
	}

	out := Obj()
	out.Object().Insert("type", emitType(node))

	switch node.Kind {
	case SchemaArray:
		out.Object().Insert("items", emitNode(node.Items))
	case SchemaObject:
		props := Obj()
		var required []string
		if node.Properties != nil {
			node.Properties.Range(func(name string, prop Property) bool {
				props.Object().Insert(name, emitNode(prop.Schema))
				if prop.Required {
					required = append(required, name)
				}
				return true
			})
		}
		out.Object().Insert("properties", props)
		if len(required) > 0 {
			arr := Arr()
			for _, name := range required {
				arr.Push(Str(name))
			}
			out.Object().Insert("required", arr)
		}
	}
	return out
}

// mixedTypeOrder is the fixed type-name order §4.7 specifies for a Mixed
// schema kind; "null" is appended after these, never mixed in.
var mixedTypeOrder = []string{"string", "number", "integer", "boolean", "object", "array"}

// emitType renders the "type" keyword: a bare string for a single
// non-nullable kind, otherwise a JSON array (nullable adds "null"; a
// Mixed kind always lists all six names of mixedTypeOrder, whichever
// kinds it was folded from) (§4.7).
func emitType(node *SchemaNode) *Value {
	if node.Kind == SchemaMixed {
		arr := Arr()
		for _, n := range mixedTypeOrder {
			arr.Push(Str(n))
		}
		if node.Nullable {
			arr.Push(Str("null"))
		}
		return arr
	}

	if !node.Nullable || node.Kind == SchemaNull {
		return Str(node.Kind.String())
	}

	arr := Arr()
	arr.Push(Str(node.Kind.String()))
	arr.Push(Str("null"))
	return arr
}
