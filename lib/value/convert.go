// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"
)

// FromGo converts plain Go data into a Value.
//
// Structural types map directly: nil to Null, bool, every integer
// width, float32/float64, string, slices and arrays to Sequence, and
// maps with string keys to Mapping. json.Number becomes Int when it
// parses as int64 and Float otherwise. Unsigned integers above
// math.MaxInt64 become Float.
//
// Everything else is sanitized to Text: time.Time as RFC 3339 with
// nanoseconds, fmt.Stringer and error via their methods, and any other
// type via fmt.Sprint. Sanitizing never fails, so callers can hand
// arbitrary request bodies to the encoders.
func FromGo(data any) Value {
	switch typed := data.(type) {
	case nil:
		return Null()
	case Value:
		return typed
	case bool:
		return Bool(typed)
	case int:
		return Int(int64(typed))
	case int8:
		return Int(int64(typed))
	case int16:
		return Int(int64(typed))
	case int32:
		return Int(int64(typed))
	case int64:
		return Int(typed)
	case uint:
		return fromUnsigned(uint64(typed))
	case uint8:
		return Int(int64(typed))
	case uint16:
		return Int(int64(typed))
	case uint32:
		return Int(int64(typed))
	case uint64:
		return fromUnsigned(typed)
	case float32:
		return Float(float64(typed))
	case float64:
		return Float(typed)
	case json.Number:
		if integer, err := typed.Int64(); err == nil {
			return Int(integer)
		}
		if float, err := typed.Float64(); err == nil {
			return Float(float)
		}
		return Text(typed.String())
	case string:
		return Text(typed)
	case []byte:
		return Text(string(typed))
	case time.Time:
		return Text(typed.Format(time.RFC3339Nano))
	case []any:
		items := make([]Value, len(typed))
		for i, element := range typed {
			items[i] = FromGo(element)
		}
		return Value{kind: KindSequence, items: items}
	case map[string]any:
		entries := make(map[string]Value, len(typed))
		for key, element := range typed {
			entries[key] = FromGo(element)
		}
		return Value{kind: KindMapping, entries: entries}
	case fmt.Stringer:
		return Text(typed.String())
	case error:
		return Text(typed.Error())
	}
	return fromReflect(reflect.ValueOf(data))
}

func fromUnsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// fromReflect handles typed slices and string-keyed maps that the
// type switch in FromGo does not name ([]string, map[string]int,
// pointers to either). Anything else falls back to its display string.
func fromReflect(reflected reflect.Value) Value {
	switch reflected.Kind() {
	case reflect.Pointer, reflect.Interface:
		if reflected.IsNil() {
			return Null()
		}
		return FromGo(reflected.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if reflected.Kind() == reflect.Slice && reflected.IsNil() {
			return Null()
		}
		items := make([]Value, reflected.Len())
		for i := range items {
			items[i] = FromGo(reflected.Index(i).Interface())
		}
		return Value{kind: KindSequence, items: items}
	case reflect.Map:
		if reflected.Type().Key().Kind() != reflect.String {
			break
		}
		entries := make(map[string]Value, reflected.Len())
		iterator := reflected.MapRange()
		for iterator.Next() {
			entries[iterator.Key().String()] = FromGo(iterator.Value().Interface())
		}
		return Value{kind: KindMapping, entries: entries}
	}
	return Text(fmt.Sprint(reflected.Interface()))
}

// ToGo converts v to plain Go data: nil, bool, int64, float64, string,
// []any and map[string]any. The result shares nothing with v.
func (v Value) ToGo() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.boolean
	case KindInt:
		return v.integer
	case KindFloat:
		return v.float
	case KindText:
		return v.text
	case KindSequence:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.ToGo()
		}
		return items
	case KindMapping:
		entries := make(map[string]any, len(v.entries))
		for key, element := range v.entries {
			entries[key] = element.ToGo()
		}
		return entries
	default:
		panic(fmt.Sprintf("value.ToGo: unknown kind %s", v.kind))
	}
}
