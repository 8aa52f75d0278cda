// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/netcodec/lib/value"
)

// longTag marks an integer that carries the long wire type, so a
// snapshot keeps the int/long distinction the XML dialect makes.
// The number is from the CBOR first-come-first-served tag range.
const longTag = 1_668_182_380

var snapshotEncMode cbor.EncMode

var snapshotDecMode cbor.DecMode

func init() {
	var err error

	snapshotEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	snapshotDecMode, err = cbor.DecOptions{
		// Snapshot maps are always string-keyed.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalSnapshot encodes v as Core Deterministic CBOR. Every kind
// maps to its CBOR counterpart; long integers are wrapped in a private
// tag. Equal values with the same integer widths produce identical
// bytes.
func MarshalSnapshot(v value.Value) ([]byte, error) {
	return snapshotEncMode.Marshal(snapshotTree(v))
}

func snapshotTree(v value.Value) any {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.AsInt()
		if v.IsLong() {
			return cbor.Tag{Number: longTag, Content: i}
		}
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f
	case value.KindSequence:
		items := make([]any, v.Len())
		for i, item := range v.Items() {
			items[i] = snapshotTree(item)
		}
		return items
	case value.KindMapping:
		entries := make(map[string]any, v.Len())
		for key, entry := range v.Entries() {
			entries[key] = snapshotTree(entry)
		}
		return entries
	default:
		return v.ToGo()
	}
}

// UnmarshalSnapshot decodes bytes produced by [MarshalSnapshot].
func UnmarshalSnapshot(data []byte) (value.Value, error) {
	var tree any
	if err := snapshotDecMode.Unmarshal(data, &tree); err != nil {
		return value.Null(), fmt.Errorf("decoding snapshot: %w", err)
	}
	return fromSnapshot(tree)
}

func fromSnapshot(tree any) (value.Value, error) {
	switch typed := tree.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(typed), nil
	case int64:
		return value.Int(typed), nil
	case float64:
		return value.Float(typed), nil
	case string:
		return value.Text(typed), nil
	case cbor.Tag:
		integer, ok := typed.Content.(int64)
		if typed.Number != longTag || !ok {
			return value.Null(), fmt.Errorf("snapshot contains unsupported tag %d", typed.Number)
		}
		return value.Long(integer), nil
	case []any:
		items := make([]value.Value, len(typed))
		for i, element := range typed {
			item, err := fromSnapshot(element)
			if err != nil {
				return value.Null(), err
			}
			items[i] = item
		}
		return value.Sequence(items...), nil
	case map[string]any:
		entries := make(map[string]value.Value, len(typed))
		for key, element := range typed {
			entry, err := fromSnapshot(element)
			if err != nil {
				return value.Null(), err
			}
			entries[key] = entry
		}
		return value.Mapping(entries), nil
	default:
		return value.Null(), fmt.Errorf("snapshot contains unsupported %T", tree)
	}
}

// Diagnose returns the CBOR extended diagnostic notation (RFC 8949
// §8) of snapshot bytes, which shows integers, floats and tags
// unambiguously.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
