// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a flag set bound to the tagged fields of
// params, which must be a pointer to a struct. Panics on invalid
// params: that is a programming error, not user input.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag for each tagged field of params.
//
// Struct tags:
//
//   - flag:"name" or flag:"name,n": long name and optional shorthand.
//     Fields without one are skipped.
//   - desc:"help text"
//   - default:"value", parsed per the field type. For []string the
//     value is comma separated.
//
// Supported field types are string, bool, int and []string. Fields
// promoted from embedded structs are bound too, so commands can share
// a common params block.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	reflected := reflect.ValueOf(params)
	if reflected.Kind() != reflect.Pointer || reflected.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(reflected.Elem(), flagSet)
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	for _, field := range reflect.VisibleFields(structValue.Type()) {
		if field.Anonymous || !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		spec := flagSpec{description: field.Tag.Get("desc"), defaultText: field.Tag.Get("default")}
		spec.name, spec.shorthand, _ = strings.Cut(tag, ",")

		target := structValue.FieldByIndex(field.Index)
		if !target.CanAddr() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}
		if err := spec.bind(flagSet, target.Addr().Interface()); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// flagSpec is one field's flag tags.
type flagSpec struct {
	name        string
	shorthand   string
	description string
	defaultText string
}

func (f flagSpec) bind(flagSet *pflag.FlagSet, pointer any) error {
	switch target := pointer.(type) {
	case *string:
		flagSet.StringVarP(target, f.name, f.shorthand, f.defaultText, f.description)
	case *bool:
		fallback, err := parseDefault(f, strconv.ParseBool)
		if err != nil {
			return err
		}
		flagSet.BoolVarP(target, f.name, f.shorthand, fallback, f.description)
	case *int:
		fallback, err := parseDefault(f, strconv.Atoi)
		if err != nil {
			return err
		}
		flagSet.IntVarP(target, f.name, f.shorthand, fallback, f.description)
	case *[]string:
		var fallback []string
		if f.defaultText != "" {
			fallback = strings.Split(f.defaultText, ",")
		}
		flagSet.StringSliceVarP(target, f.name, f.shorthand, fallback, f.description)
	default:
		return fmt.Errorf("unsupported type %T for flag --%s", pointer, f.name)
	}
	return nil
}

// parseDefault parses the default tag, or returns the zero value when
// there is none.
func parseDefault[T any](f flagSpec, parse func(string) (T, error)) (T, error) {
	var zero T
	if f.defaultText == "" {
		return zero, nil
	}
	parsed, err := parse(f.defaultText)
	if err != nil {
		return zero, fmt.Errorf("default for --%s: %w", f.name, err)
	}
	return parsed, nil
}
