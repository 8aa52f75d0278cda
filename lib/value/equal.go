// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"math"
	"strconv"
)

// Equal reports whether a and b hold the same variant and contents.
//
// The int/long width flag is ignored: Int(3) equals Long(3). Floats
// compare by value except that NaN equals NaN, so a decoded NaN
// compares equal to the value that was encoded. Mappings compare as
// unordered key sets.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindInt:
		return a.integer == b.integer
	case KindFloat:
		if math.IsNaN(a.float) && math.IsNaN(b.float) {
			return true
		}
		return a.float == b.float
	case KindText:
		return a.text == b.text
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for key, left := range a.entries {
			right, ok := b.entries[key]
			if !ok || !Equal(left, right) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Diff returns a path to the first difference between a and b, or ""
// when they are equal. Paths use dotted keys and bracketed indices
// ("networks[0].id"); the empty path for a top-level mismatch is "$".
// Intended for test failure messages and the validate command.
func Diff(a, b Value) string {
	return diffAt("$", a, b)
}

func diffAt(path string, a, b Value) string {
	if a.kind != b.kind {
		return path
	}
	switch a.kind {
	case KindSequence:
		if len(a.items) != len(b.items) {
			return path
		}
		for i := range a.items {
			if found := diffAt(indexPath(path, i), a.items[i], b.items[i]); found != "" {
				return found
			}
		}
		return ""
	case KindMapping:
		for _, key := range a.Keys() {
			right, ok := b.entries[key]
			if !ok {
				return keyPath(path, key)
			}
			if found := diffAt(keyPath(path, key), a.entries[key], right); found != "" {
				return found
			}
		}
		for _, key := range b.Keys() {
			if _, ok := a.entries[key]; !ok {
				return keyPath(path, key)
			}
		}
		return ""
	default:
		if Equal(a, b) {
			return ""
		}
		return path
	}
}

func indexPath(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}

func keyPath(path, key string) string {
	if path == "$" {
		return key
	}
	return path + "." + key
}
