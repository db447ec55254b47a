package jsonflow

// PipelineBuilder is the fluent entry point for composing a queue of
// operations over a single JSON document or batch (§6.2). Call AddJSON
// first, queue zero or more operations, optionally set Pretty/Threads,
// then Build.
type PipelineBuilder struct {
	root   *Value
	ops    []Operation
	cfg    *config
	optErr error
}

// NewPipeline starts a fluent pipeline, matching §6.2's `add_json → ...
// → build()` chain.
func NewPipeline() *PipelineBuilder {
	return &PipelineBuilder{cfg: defaultConfig()}
}

// AddJSON parses data with the configured codec and sets it as the
// pipeline's root value. Parse failures are deferred to Build, matching
// the builder's fluent chaining style.
func (b *PipelineBuilder) AddJSON(data []byte) *PipelineBuilder {
	v, err := Parse(data, b.cfg.codec)
	if err != nil {
		b.optErr = err
		return b
	}
	b.root = v
	return b
}

// AddValue sets an already-parsed Value as the pipeline's root, for
// callers composing pipelines in-process without a round trip through
// bytes.
func (b *PipelineBuilder) AddValue(v *Value) *PipelineBuilder {
	b.root = v
	return b
}

// RemoveEmptyStrings queues empty-string removal (§4.3).
func (b *PipelineBuilder) RemoveEmptyStrings() *PipelineBuilder {
	b.ops = append(b.ops, RemoveEmptyStringsOp())
	return b
}

// RemoveNulls queues null removal (§4.3).
func (b *PipelineBuilder) RemoveNulls() *PipelineBuilder {
	b.ops = append(b.ops, RemoveNullsOp())
	return b
}

// ReplaceKeys queues whole-key replacement for keys matching pattern
// (§4.4). A compile failure is deferred to Build.
func (b *PipelineBuilder) ReplaceKeys(pattern, replacement string) *PipelineBuilder {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		b.optErr = err
		return b
	}
	b.ops = append(b.ops, ReplaceKeysOp(pattern, replacement, compiled))
	return b
}

// ReplaceValues queues whole-value replacement for string values
// matching pattern (§4.4). A compile failure is deferred to Build.
func (b *PipelineBuilder) ReplaceValues(pattern, replacement string) *PipelineBuilder {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		b.optErr = err
		return b
	}
	b.ops = append(b.ops, ReplaceValuesOp(pattern, replacement, compiled))
	return b
}

// Flatten queues the flatten step, always applied last regardless of
// queue position (§4.8).
func (b *PipelineBuilder) Flatten() *PipelineBuilder {
	b.ops = append(b.ops, FlattenOp())
	return b
}

// Pretty selects pretty-printed output for Build.
func (b *PipelineBuilder) Pretty(pretty bool) *PipelineBuilder {
	b.cfg.pretty = pretty
	return b
}

// WithThreads sets the worker count used for batch fan-out; see
// ResolveThreads for the zero/auto semantics (§6.2).
func (b *PipelineBuilder) WithThreads(n int) *PipelineBuilder {
	b.cfg.threads = n
	return b
}

// WithOptions applies additional functional Options to the pipeline's
// configuration.
func (b *PipelineBuilder) WithOptions(opts ...Option) *PipelineBuilder {
	for _, opt := range opts {
		opt(b.cfg)
	}
	return b
}

// Build runs the queued operations through the Runner and serializes the
// result (§6.2). Any deferred parse/compile error from earlier in the
// chain is returned here.
func (b *PipelineBuilder) Build() ([]byte, error) {
	if b.optErr != nil {
		return nil, b.optErr
	}
	if b.root == nil {
		return nil, NewPipelineError("internal_invariant",
			"pipeline built with no input value", ErrInternalInvariant, nil)
	}

	result, err := Run(b.root, b.ops, b.cfg)
	if err != nil {
		return nil, err
	}
	return []byte(Print(result, b.cfg.pretty)), nil
}

// BuildValue is Build without the final serialization step, for callers
// that want the Value, not bytes.
func (b *PipelineBuilder) BuildValue() (*Value, error) {
	if b.optErr != nil {
		return nil, b.optErr
	}
	if b.root == nil {
		return nil, NewPipelineError("internal_invariant",
			"pipeline built with no input value", ErrInternalInvariant, nil)
	}
	return Run(b.root, b.ops, b.cfg)
}
