package jsonflow

import "runtime"

// MinThreads and MaxThreads bound the resolved worker count (§6.2).
const (
	MinThreads = 1
	MaxThreads = 128
)

// MinBatchForMT is the minimum array length at which the runner considers
// dispatching element-wise work to the executor (§4.8).
const MinBatchForMT = 100

// config holds every tunable a pipeline or top-level library call accepts,
// populated by functional Option values (§A "Configuration").
type config struct {
	threads        int
	pretty         bool
	sampleSize     int
	maxPathLength  int
	maxRegexLength int
	codec          *Codec
	diagnostics    Diagnostics
}

func defaultConfig() *config {
	return &config{
		threads:        0,
		sampleSize:     DefaultArraySampleSize,
		maxPathLength:  DefaultMaxPathLength,
		maxRegexLength: DefaultMaxRegexInputLength,
		codec:          GoJSONCodec,
	}
}

// Option configures a pipeline or a top-level library call.
type Option func(*config)

// WithThreads sets an explicit worker count, clamped to [MinThreads,
// MaxThreads]. Zero (or omitting the option) selects ResolveThreads'
// auto behavior (§6.2).
func WithThreads(n int) Option {
	return func(c *config) { c.threads = n }
}

// WithPretty selects two-space-indented output over compact (§6.1).
func WithPretty(pretty bool) Option {
	return func(c *config) { c.pretty = pretty }
}

// WithSampleSize overrides the number of evenly-spaced array elements
// sampled during schema inference (§4.5).
func WithSampleSize(n int) Option {
	return func(c *config) { c.sampleSize = n }
}

// WithMaxPathLength overrides the flattened-path byte bound (§4.1).
func WithMaxPathLength(n int) Option {
	return func(c *config) { c.maxPathLength = n }
}

// WithMaxRegexLength overrides the regex-input byte bound beyond which a
// string is left unchanged (§4.4).
func WithMaxRegexLength(n int) Option {
	return func(c *config) { c.maxRegexLength = n }
}

// WithCodec selects the JSON decoder used for parsing (§6.1); output is
// always written by Print, whatever the codec. GoJSONCodec is
// the default; SonicCodec trades a larger dependency footprint for SIMD
// acceleration where available.
func WithCodec(codec *Codec) Option {
	return func(c *config) { c.codec = codec }
}

// WithDiagnostics installs a callback for non-fatal degradation notices
// (§4.4, §7), e.g. a regex input skipped for exceeding the length bound.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *config) { c.diagnostics = d }
}

// ResolveThreads applies §6.2's thread argument semantics: zero means
// auto (half the logical CPUs, minimum 1), a positive value is used
// as-is; both are clamped to [MinThreads, MaxThreads].
func ResolveThreads(requested int) int {
	n := requested
	if n == 0 {
		n = runtime.NumCPU() / 2
		if n < 1 {
			n = 1
		}
	}
	return clampInt(n, MinThreads, MaxThreads)
}
