package jsonflow

// FlattenJSON parses json, flattens it, and serializes the result (§6.2).
// threads follows §6.2's semantics: omitted or 0 selects auto.
func FlattenJSON(json []byte, pretty bool, threads int, opts ...Option) ([]byte, error) {
	return NewPipeline().
		AddJSON(json).
		Flatten().
		Pretty(pretty).
		WithThreads(threads).
		WithOptions(opts...).
		Build()
}

// PathsWithTypesJSON parses json and returns the path-to-type mapping
// (§6.2, §4.2).
func PathsWithTypesJSON(json []byte, pretty bool, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	v, err := Parse(json, cfg.codec)
	if err != nil {
		return nil, err
	}
	result, err := PathsWithTypes(v, cfg.maxPathLength)
	if err != nil {
		return nil, err
	}
	return []byte(Print(result, pretty)), nil
}

// GenerateSchemaJSON parses json and infers a Draft-07 schema (§6.2,
// §4.5-§4.7). When the root value is an array, each element is treated
// as an independent document in a batch: schemas are inferred
// per-element (in parallel for large batches) and folded with Merge,
// matching §4.8's "schema across batch" discipline and yielding an
// object/array/etc. schema for the batch's documents, not an
// array-of-items schema.
func GenerateSchemaJSON(json []byte, pretty bool, threads int, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	cfg.threads = threads
	for _, opt := range opts {
		opt(cfg)
	}
	v, err := Parse(json, cfg.codec)
	if err != nil {
		return nil, err
	}

	var node *SchemaNode
	if v.Kind() == KindArray {
		if v.Len() == 0 {
			return nil, NewPipelineError("internal_invariant",
				"cannot generate a schema from an empty batch", ErrEmptyBatch, nil)
		}
		node = InferBatch(v.Array(), cfg)
	} else {
		node = Infer(v, cfg.sampleSize)
	}

	return []byte(Print(EmitSchema(node), pretty)), nil
}

// RemoveEmptyStringsJSON parses json and removes empty-string values
// (§6.2, §4.3).
func RemoveEmptyStringsJSON(json []byte, pretty bool, opts ...Option) ([]byte, error) {
	return NewPipeline().
		AddJSON(json).
		RemoveEmptyStrings().
		Pretty(pretty).
		WithOptions(opts...).
		Build()
}

// RemoveNullsJSON parses json and removes null values (§6.2, §4.3).
func RemoveNullsJSON(json []byte, pretty bool, opts ...Option) ([]byte, error) {
	return NewPipeline().
		AddJSON(json).
		RemoveNulls().
		Pretty(pretty).
		WithOptions(opts...).
		Build()
}

// ReplaceKeysJSON parses json and whole-key-replaces keys matching
// pattern (§6.2, §4.4).
func ReplaceKeysJSON(json []byte, pattern, replacement string, pretty bool, opts ...Option) ([]byte, error) {
	return NewPipeline().
		AddJSON(json).
		ReplaceKeys(pattern, replacement).
		Pretty(pretty).
		WithOptions(opts...).
		Build()
}

// ReplaceValuesJSON parses json and whole-value-replaces string values
// matching pattern (§6.2, §4.4).
func ReplaceValuesJSON(json []byte, pattern, replacement string, pretty bool, opts ...Option) ([]byte, error) {
	return NewPipeline().
		AddJSON(json).
		ReplaceValues(pattern, replacement).
		Pretty(pretty).
		WithOptions(opts...).
		Build()
}
