package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeIntegerAndNumberWidensToNumber(t *testing.T) {
	merged := Merge(&SchemaNode{Kind: SchemaInteger}, &SchemaNode{Kind: SchemaNumber})
	assert.Equal(t, SchemaNumber, merged.Kind)
}

func TestMergeNullTogglesNullableWithoutChangingKind(t *testing.T) {
	merged := Merge(&SchemaNode{Kind: SchemaString, Required: true}, &SchemaNode{Kind: SchemaNull, Nullable: true})
	assert.Equal(t, SchemaString, merged.Kind)
	assert.True(t, merged.Nullable)
}

func TestMergeHeterogeneousYieldsMixed(t *testing.T) {
	merged := Merge(&SchemaNode{Kind: SchemaString}, &SchemaNode{Kind: SchemaBoolean})
	assert.Equal(t, SchemaMixed, merged.Kind)
}

func TestMergeRequiredIsAND(t *testing.T) {
	merged := Merge(&SchemaNode{Kind: SchemaString, Required: true}, &SchemaNode{Kind: SchemaString, Required: false})
	assert.False(t, merged.Required)
}

func TestMergeObjectPropertiesOneSidedBecomesOptionalAndNullable(t *testing.T) {
	a := &SchemaNode{Kind: SchemaObject, Properties: NewOrderedProperties()}
	a.Properties.Set("id", Property{Schema: &SchemaNode{Kind: SchemaInteger}, Required: true})
	a.Properties.Set("name", Property{Schema: &SchemaNode{Kind: SchemaString}, Required: true})

	b := &SchemaNode{Kind: SchemaObject, Properties: NewOrderedProperties()}
	b.Properties.Set("id", Property{Schema: &SchemaNode{Kind: SchemaInteger}, Required: true})
	b.Properties.Set("name", Property{Schema: &SchemaNode{Kind: SchemaString}, Required: true})
	b.Properties.Set("active", Property{Schema: &SchemaNode{Kind: SchemaBoolean}, Required: true})

	merged := Merge(a, b)

	idProp, _ := merged.Properties.Get("id")
	assert.True(t, idProp.Required)

	activeProp, ok := merged.Properties.Get("active")
	require.True(t, ok)
	assert.False(t, activeProp.Required)
	assert.True(t, activeProp.Schema.Nullable)
}

func TestMergePreservesFirstSeenPropertyOrder(t *testing.T) {
	a := &SchemaNode{Kind: SchemaObject, Properties: NewOrderedProperties()}
	a.Properties.Set("b", Property{Schema: &SchemaNode{Kind: SchemaString}, Required: true})
	a.Properties.Set("a", Property{Schema: &SchemaNode{Kind: SchemaString}, Required: true})

	b := &SchemaNode{Kind: SchemaObject, Properties: NewOrderedProperties()}
	b.Properties.Set("c", Property{Schema: &SchemaNode{Kind: SchemaString}, Required: true})

	merged := Merge(a, b)
	assert.Equal(t, []string{"b", "a", "c"}, merged.Properties.Keys())
}

func TestMergeBatchSchemaAcrossDocuments(t *testing.T) {
	doc1, err := Parse([]byte(`{"id":1,"name":"a"}`), nil)
	require.NoError(t, err)
	doc2, err := Parse([]byte(`{"id":2,"name":"b","active":true}`), nil)
	require.NoError(t, err)

	merged := MergeBatch([]*SchemaNode{Infer(doc1, 0), Infer(doc2, 0)})

	require.Equal(t, SchemaObject, merged.Kind)
	idProp, _ := merged.Properties.Get("id")
	nameProp, _ := merged.Properties.Get("name")
	activeProp, _ := merged.Properties.Get("active")
	assert.True(t, idProp.Required)
	assert.True(t, nameProp.Required)
	assert.False(t, activeProp.Required)
	assert.True(t, activeProp.Schema.Nullable)
}

func TestMergeReorderingPreservesKindAndRequiredFlags(t *testing.T) {
	doc1, err := Parse([]byte(`{"id":1,"name":"a"}`), nil)
	require.NoError(t, err)
	doc2, err := Parse([]byte(`{"id":2,"name":"b","active":true}`), nil)
	require.NoError(t, err)

	s1, s2 := Infer(doc1, 0), Infer(doc2, 0)
	forward := Merge(s1, s2)
	backward := Merge(s2, s1)

	assert.Equal(t, forward.Kind, backward.Kind)
	fwdID, _ := forward.Properties.Get("id")
	bckID, _ := backward.Properties.Get("id")
	assert.Equal(t, fwdID.Required, bckID.Required)
	assert.Equal(t, fwdID.Schema.Kind, bckID.Schema.Kind)
}
