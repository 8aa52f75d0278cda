// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bureau-foundation/netcodec/lib/value"
)

// BodyKey is the key under which [DecodeJSON] and [Codec.Deserialize]
// place the decoded document.
const BodyKey = "body"

// EncodeJSON renders v as compact JSON. Mapping keys are sorted. Floats
// always carry a decimal point or exponent; NaN and infinities, which
// JSON cannot represent, are written as their display strings.
func EncodeJSON(v value.Value) []byte {
	return encodeJSON(v, "")
}

// EncodeJSONIndent is EncodeJSON with one element per line.
func EncodeJSONIndent(v value.Value, indent string) []byte {
	return encodeJSON(v, indent)
}

func encodeJSON(v value.Value, indent string) []byte {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(jsonTree(v)); err != nil {
		// Every node of jsonTree is a type encoding/json handles, so
		// this is unreachable.
		panic(fmt.Sprintf("codec: encoding JSON: %v", err))
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n"))
}

// jsonFloat marshals a finite float64 so that it reads back as a float.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	text := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return []byte(text), nil
}

// jsonTree converts v into values encoding/json marshals directly.
func jsonTree(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v.DisplayString()
		}
		return jsonFloat(f)
	case value.KindText:
		s, _ := v.AsText()
		return s
	case value.KindSequence:
		items := make([]any, v.Len())
		for i, item := range v.Items() {
			items[i] = jsonTree(item)
		}
		return items
	case value.KindMapping:
		entries := make(map[string]any, v.Len())
		for key, entry := range v.Entries() {
			entries[key] = jsonTree(entry)
		}
		return entries
	default:
		panic(fmt.Sprintf("codec: cannot encode value of kind %s", v.Kind()))
	}
}

// DecodeJSON parses one JSON document and returns it wrapped as
// {"body": <document>}. Numbers without a fraction or exponent that
// fit in int64 decode as Int; all other numbers decode as Float.
// Trailing data after the document is an error.
func DecodeJSON(data []byte) (value.Value, error) {
	parsed, err := decodeJSONDocument(data)
	if err != nil {
		return value.Null(), malformed(FormatJSON, err)
	}
	return value.Mapping(map[string]value.Value{BodyKey: parsed}), nil
}

func decodeJSONDocument(data []byte) (value.Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var document any
	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return value.Null(), errors.New("empty document")
		}
		return value.Null(), err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return value.Null(), errors.New("unexpected data after top-level value")
	}
	return fromJSON(document), nil
}

// fromJSON converts decoded JSON into a Value. It differs from
// value.FromGo only in number handling: a number written with a
// fraction or exponent is a Float even when its value is integral.
func fromJSON(document any) value.Value {
	switch typed := document.(type) {
	case json.Number:
		text := typed.String()
		if !strings.ContainsAny(text, ".eE") {
			if integer, err := strconv.ParseInt(text, 10, 64); err == nil {
				return value.Int(integer)
			}
		}
		if float, err := strconv.ParseFloat(text, 64); err == nil {
			return value.Float(float)
		}
		return value.Text(text)
	case []any:
		items := make([]value.Value, len(typed))
		for i, element := range typed {
			items[i] = fromJSON(element)
		}
		return value.Sequence(items...)
	case map[string]any:
		entries := make(map[string]value.Value, len(typed))
		for key, element := range typed {
			entries[key] = fromJSON(element)
		}
		return value.Mapping(entries)
	default:
		return value.FromGo(typed)
	}
}
