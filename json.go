package jsonflow

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// tokenDecoder is the subset of encoding/json's Decoder that a pluggable
// JSON codec must implement to back Parse. Both github.com/goccy/go-json
// and github.com/bytedance/sonic (via its ConfigStd compatibility layer)
// satisfy this shape.
type tokenDecoder interface {
	Token() (any, error)
	More() bool
	UseNumber()
}

// Codec selects which third-party JSON library backs decoding. The
// transformation core never serializes through a Codec's own encoder:
// Print is hand-written so it can guarantee the exact insertion order,
// integer/number fidelity and whitespace rules of §6.1/§6.3, which a
// generic map[string]any-based Marshal cannot promise.
type Codec struct {
	name       string
	newDecoder func(r io.Reader) tokenDecoder
}

// GoJSONCodec decodes using github.com/goccy/go-json. This is the default.
var GoJSONCodec = &Codec{
	name:       "goccy/go-json",
	newDecoder: func(r io.Reader) tokenDecoder { return gojson.NewDecoder(r) },
}

// Parse decodes data into a Value using codec, preserving object insertion
// order and the integer/number distinction required by §3.1. A nil codec
// defaults to GoJSONCodec.
func Parse(data []byte, codec *Codec) (*Value, error) {
	if codec == nil {
		codec = GoJSONCodec
	}
	dec := codec.newDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, NewPipelineError("parse_error", "failed to parse input JSON: {detail}", fmt.Errorf("%w: %v", ErrParseFailed, err), map[string]any{"detail": err.Error()})
	}
	return v, nil
}

func parseValue(dec tokenDecoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec tokenDecoder, tok any) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case gojson.Number:
		return parseNumber(string(t))
	case float64:
		return Float(t), nil
	}

	// Delimiters ('[', '{', ']', '}') are a distinct named rune type in
	// every encoding/json-compatible decoder (goccy's and sonic's both
	// implement Stringer on it), and so is each decoder's Number type.
	// Dispatch on the rendered string so neither type needs importing here.
	if s, ok := tok.(fmt.Stringer); ok {
		switch str := s.String(); str {
		case "[":
			return parseArray(dec)
		case "{":
			return parseObject(dec)
		default:
			return parseNumber(str)
		}
	}

	return nil, fmt.Errorf("unrecognized token type %T", tok)
}

func parseNumber(lit string) (*Value, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", lit, err)
	}
	return Float(f), nil
}

func parseArray(dec tokenDecoder) (*Value, error) {
	arr := Arr()
	for dec.More() {
		elem, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Push(elem)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}
	return arr, nil
}

func parseObject(dec tokenDecoder) (*Value, error) {
	obj := Obj()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %T", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		if obj.Object().Has(key) {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		obj.Object().Insert(key, val)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}
	return obj, nil
}

// Print renders v as a JSON document. pretty=true uses two-space
// indentation with newlines (§6.1); pretty=false omits all whitespace.
func Print(v *Value, pretty bool) string {
	var sb strings.Builder
	if pretty {
		writePretty(&sb, v, 0)
	} else {
		writeCompact(&sb, v)
	}
	return sb.String()
}

func writeCompact(sb *strings.Builder, v *Value) {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.BoolValue() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.IntValue(), 10))
	case KindNumber:
		sb.WriteString(formatFloat(v.FloatValue()))
	case KindString:
		writeJSONString(sb, v.StrValue())
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.Array() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, e)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		first := true
		v.Object().Range(func(key string, val *Value) bool {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeJSONString(sb, key)
			sb.WriteByte(':')
			writeCompact(sb, val)
			return true
		})
		sb.WriteByte('}')
	}
}

func writePretty(sb *strings.Builder, v *Value, depth int) {
	indent := strings.Repeat("  ", depth)
	childIndent := strings.Repeat("  ", depth+1)
	switch v.Kind() {
	case KindArray:
		if v.Len() == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, e := range v.Array() {
			sb.WriteString(childIndent)
			writePretty(sb, e, depth+1)
			if i < len(v.Array())-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(indent)
		sb.WriteByte(']')
	case KindObject:
		if v.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		keys := v.Object().Keys()
		for i, k := range keys {
			sb.WriteString(childIndent)
			writeJSONString(sb, k)
			sb.WriteString(": ")
			writePretty(sb, v.Object().Get(k), depth+1)
			if i < len(keys)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(indent)
		sb.WriteByte('}')
	default:
		writeCompact(sb, v)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		// Keep a whole-valued Number from reading back as an Integer.
		s += ".0"
	}
	return s
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}
