package jsonflow

import (
	"regexp"
	"strings"
)

// DefaultMaxRegexInputLength is the default bound (in bytes) on a string
// considered for regex application (§4.4). Longer strings are left
// unchanged; the degradation is reported through Diagnostics rather than
// failing the call.
const DefaultMaxRegexInputLength = 10000

// literalKind classifies a pattern that needs no backtracking engine at
// match time.
type literalKind int

const (
	literalNone literalKind = iota
	literalEquals
	literalPrefix
	literalSuffix
	literalContains
)

// CompiledPattern is a pattern compiled once and shared (read-only) across
// every traversal and, per §5, across every worker goroutine.
type CompiledPattern struct {
	source  string
	re      *regexp.Regexp
	literal literalKind
	lit     string
}

// CompilePattern compiles pattern and classifies its literal fast path
// per §4.4. Metacharacters outside of leading "^"/trailing "$" anchors
// disqualify the literal path and fall back to the compiled regexp.
func CompilePattern(pattern string) (*CompiledPattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Reason: err.Error()}
	}
	kind, lit := classifyLiteral(pattern)
	return &CompiledPattern{source: pattern, re: re, literal: kind, lit: lit}, nil
}

func classifyLiteral(pattern string) (literalKind, string) {
	hasCaret := strings.HasPrefix(pattern, "^")
	hasDollar := strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`)

	core := pattern
	if hasCaret {
		core = core[1:]
	}
	if hasDollar {
		core = core[:len(core)-1]
	}
	if containsMetachar(core) {
		return literalNone, ""
	}
	switch {
	case hasCaret && hasDollar:
		return literalEquals, core
	case hasCaret:
		return literalPrefix, core
	case hasDollar:
		return literalSuffix, core
	default:
		return literalContains, core
	}
}

const regexMetachars = `^$.*+?[]{}()|\`

func containsMetachar(s string) bool {
	return strings.ContainsAny(s, regexMetachars)
}

// MatchString reports whether s matches the compiled pattern, preferring
// the literal fast path when available.
func (p *CompiledPattern) MatchString(s string) bool {
	switch p.literal {
	case literalEquals:
		return s == p.lit
	case literalPrefix:
		return strings.HasPrefix(s, p.lit)
	case literalSuffix:
		return strings.HasSuffix(s, p.lit)
	case literalContains:
		return strings.Contains(s, p.lit)
	default:
		return p.re.MatchString(s)
	}
}

// Diagnostics receives non-fatal degradation notices (§4.4, §7): the code
// identifies the condition (e.g. "regex_input_skipped") and detail gives
// human-readable context. A nil Diagnostics is a no-op.
type Diagnostics func(code, detail string)

func (d Diagnostics) report(code, detail string) {
	if d != nil {
		d(code, detail)
	}
}

// ReplaceKeys rewrites, for every object key in v (recursively), keys
// that match pattern to exactly replacement — a full key replacement, not
// a substring substitution (§4.4, §9 Open Question). Values are traversed
// unchanged.
func ReplaceKeys(v *Value, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) *Value {
	if maxInputLength <= 0 {
		maxInputLength = DefaultMaxRegexInputLength
	}
	return rewriteKeys(v, pattern, replacement, maxInputLength, diag)
}

func rewriteKeys(v *Value, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) *Value {
	switch v.Kind() {
	case KindObject:
		out := Obj()
		v.Object().Range(func(key string, val *Value) bool {
			newKey := rewriteKey(key, pattern, replacement, maxInputLength, diag)
			out.Object().Set(newKey, rewriteKeys(val, pattern, replacement, maxInputLength, diag))
			return true
		})
		return out
	case KindArray:
		out := Arr()
		for _, val := range v.Array() {
			out.Push(rewriteKeys(val, pattern, replacement, maxInputLength, diag))
		}
		return out
	default:
		return v.Clone()
	}
}

// rewriteKey applies a single key-rewrite decision: the node-level step
// shared by the standalone ReplaceKeys pass and the pipeline runner's
// fused traversal (§4.4, §4.8).
func rewriteKey(key string, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) string {
	if len(key) > maxInputLength {
		diag.report("regex_input_skipped", "key exceeds regex input bound, left unchanged")
		return key
	}
	if pattern.MatchString(key) {
		return replacement
	}
	return key
}

// ReplaceValues rewrites every string value in v (recursively) that
// matches pattern to exactly replacement. Non-string values are
// untouched (§4.4).
func ReplaceValues(v *Value, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) *Value {
	if maxInputLength <= 0 {
		maxInputLength = DefaultMaxRegexInputLength
	}
	return rewriteValues(v, pattern, replacement, maxInputLength, diag)
}

func rewriteValues(v *Value, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) *Value {
	switch v.Kind() {
	case KindObject:
		out := Obj()
		v.Object().Range(func(key string, val *Value) bool {
			out.Object().Insert(key, rewriteValues(val, pattern, replacement, maxInputLength, diag))
			return true
		})
		return out
	case KindArray:
		out := Arr()
		for _, val := range v.Array() {
			out.Push(rewriteValues(val, pattern, replacement, maxInputLength, diag))
		}
		return out
	default:
		return rewriteValue(v, pattern, replacement, maxInputLength, diag)
	}
}

// rewriteValue applies a single value-rewrite decision to a scalar,
// leaving non-string scalars untouched: the node-level step shared by
// the standalone ReplaceValues pass and the pipeline runner's fused
// traversal (§4.4, §4.8).
func rewriteValue(v *Value, pattern *CompiledPattern, replacement string, maxInputLength int, diag Diagnostics) *Value {
	if !v.IsString() {
		return v.Clone()
	}
	s := v.StrValue()
	if len(s) > maxInputLength {
		diag.report("regex_input_skipped", "value exceeds regex input bound, left unchanged")
		return v.Clone()
	}
	if pattern.MatchString(s) {
		return Str(replacement)
	}
	return v.Clone()
}
