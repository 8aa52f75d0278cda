// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant of the union a [Value] holds.
type Kind uint8

const (
	// KindNull is the zero Kind, so the zero Value is Null.
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindSequence
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Value is the universal payload type. The zero Value is Null.
type Value struct {
	kind    Kind
	long    bool
	boolean bool
	integer int64
	float   float64
	text    string
	items   []Value
	entries map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns an integer value rendered with the "int" wire tag.
func Int(i int64) Value { return Value{kind: KindInt, integer: i} }

// Long returns an integer value rendered with the "long" wire tag.
func Long(i int64) Value { return Value{kind: KindInt, integer: i, long: true} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Sequence returns an ordered list. The items slice is copied. A nil
// or empty argument produces an empty sequence, which is distinct
// from Null and from an empty mapping.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: slices.Clone(items)}
}

// Mapping returns a string-keyed map. The entries map is copied.
func Mapping(entries map[string]Value) Value {
	cloned := make(map[string]Value, len(entries))
	maps.Copy(cloned, entries)
	return Value{kind: KindMapping, entries: cloned}
}

// Object is a convenience constructor for mappings written inline as
// alternating key/value pairs:
//
//	value.Object("id", value.Text("a"), "admin_state_up", value.Bool(true))
//
// Panics if pairs has odd length or a key is not a string.
func Object(pairs ...any) Value {
	if len(pairs)%2 != 0 {
		panic("value.Object: odd number of arguments")
	}
	entries := make(map[string]Value, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("value.Object: key at position %d is %T, want string", i, pairs[i]))
		}
		element, ok := pairs[i+1].(Value)
		if !ok {
			panic(fmt.Sprintf("value.Object: value for %q is %T, want value.Value", key, pairs[i+1]))
		}
		entries[key] = element
	}
	return Value{kind: KindMapping, entries: entries}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsLong reports whether an integer carries the "long" wire tag.
// Always false for non-integers.
func (v Value) IsLong() bool { return v.kind == KindInt && v.long }

// AsBool returns the boolean and true if v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsInt returns the integer and true if v is an Int.
func (v Value) AsInt() (int64, bool) { return v.integer, v.kind == KindInt }

// AsFloat returns the float and true if v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.float, v.kind == KindFloat }

// AsText returns the string and true if v is Text.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

// Items returns a copy of the elements of a sequence, or nil for any
// other kind.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of items in a sequence or entries in a
// mapping, and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// Index returns the i'th item of a sequence. Panics if v is not a
// sequence or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindSequence {
		panic(fmt.Sprintf("value.Index on %s", v.kind))
	}
	return v.items[i]
}

// Get returns the entry stored under key and whether it exists.
// Always reports false for non-mappings.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	element, ok := v.entries[key]
	return element, ok
}

// Keys returns the keys of a mapping in sorted order, or nil for any
// other kind.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return slices.Sorted(maps.Keys(v.entries))
}

// Entries returns a copy of the entries of a mapping, or nil for any
// other kind.
func (v Value) Entries() map[string]Value {
	if v.kind != KindMapping {
		return nil
	}
	return maps.Clone(v.entries)
}

// With returns a copy of the mapping v with key set to element. Panics
// if v is not a mapping.
func (v Value) With(key string, element Value) Value {
	if v.kind != KindMapping {
		panic(fmt.Sprintf("value.With on %s", v.kind))
	}
	entries := make(map[string]Value, len(v.entries)+1)
	maps.Copy(entries, v.entries)
	entries[key] = element
	return Value{kind: KindMapping, entries: entries}
}

// Without returns a copy of the mapping v with key removed. Panics if
// v is not a mapping.
func (v Value) Without(key string) Value {
	if v.kind != KindMapping {
		panic(fmt.Sprintf("value.Without on %s", v.kind))
	}
	entries := maps.Clone(v.entries)
	delete(entries, key)
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: KindMapping, entries: entries}
}

// DisplayString renders a scalar as plain text: "true"/"false" for
// booleans, shortest round-trip decimal for numbers, the string itself
// for Text, and the empty string for Null. Containers render in a
// compact bracketed form intended for diagnostics only.
func (v Value) DisplayString() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindInt:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return FormatFloat(v.float)
	case KindText:
		return v.text
	default:
		return v.String()
	}
}

// String returns a debugging representation that shows kinds, e.g.
// {"a": int(1), "b": [text("x")]}.
func (v Value) String() string {
	var builder strings.Builder
	v.writeDebug(&builder)
	return builder.String()
}

func (v Value) writeDebug(builder *strings.Builder) {
	switch v.kind {
	case KindNull:
		builder.WriteString("null")
	case KindBool:
		fmt.Fprintf(builder, "bool(%t)", v.boolean)
	case KindInt:
		if v.long {
			fmt.Fprintf(builder, "long(%d)", v.integer)
		} else {
			fmt.Fprintf(builder, "int(%d)", v.integer)
		}
	case KindFloat:
		fmt.Fprintf(builder, "float(%s)", FormatFloat(v.float))
	case KindText:
		fmt.Fprintf(builder, "text(%q)", v.text)
	case KindSequence:
		builder.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				builder.WriteString(", ")
			}
			item.writeDebug(builder)
		}
		builder.WriteByte(']')
	case KindMapping:
		builder.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				builder.WriteString(", ")
			}
			fmt.Fprintf(builder, "%q: ", key)
			v.entries[key].writeDebug(builder)
		}
		builder.WriteByte('}')
	default:
		fmt.Fprintf(builder, "<%s>", v.kind)
	}
}

// FormatFloat renders f in the shortest form that parses back to the
// same float64. Non-finite values render as "NaN", "+Inf" and "-Inf",
// which strconv.ParseFloat accepts.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
