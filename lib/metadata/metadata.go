// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Tables is the serializable form of the codec metadata. It is what
// configuration files and extension files contain, and what [New]
// compiles into a [Metadata].
type Tables struct {
	// DefaultNamespace is declared as xmlns on every encoded root and
	// stripped from element names on decode.
	DefaultNamespace string `yaml:"default_namespace,omitempty" json:"default_namespace,omitempty"`

	// Plurals maps a container tag ("networks") to the tag of its
	// items ("network"). A tag present here decodes as a sequence.
	Plurals map[string]string `yaml:"plurals,omitempty" json:"plurals,omitempty"`

	// Attributes lists, per element tag, the mapping keys rendered as
	// XML attributes instead of child elements.
	Attributes map[string][]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`

	// ExtensionNamespaces maps a short prefix to the namespace URI of
	// a vendor or extension element set.
	ExtensionNamespaces map[string]string `yaml:"extension_namespaces,omitempty" json:"extension_namespaces,omitempty"`
}

// Merge returns a copy of t with the entries of overlay laid over it.
// Map entries in overlay replace entries with the same key; attribute
// lists for the same tag are unioned. A non-empty overlay
// DefaultNamespace replaces t's.
func (t Tables) Merge(overlay Tables) Tables {
	merged := Tables{
		DefaultNamespace:    t.DefaultNamespace,
		Plurals:             maps.Clone(t.Plurals),
		Attributes:          make(map[string][]string, len(t.Attributes)+len(overlay.Attributes)),
		ExtensionNamespaces: maps.Clone(t.ExtensionNamespaces),
	}
	if overlay.DefaultNamespace != "" {
		merged.DefaultNamespace = overlay.DefaultNamespace
	}
	if merged.Plurals == nil {
		merged.Plurals = make(map[string]string, len(overlay.Plurals))
	}
	maps.Copy(merged.Plurals, overlay.Plurals)
	if merged.ExtensionNamespaces == nil {
		merged.ExtensionNamespaces = make(map[string]string, len(overlay.ExtensionNamespaces))
	}
	maps.Copy(merged.ExtensionNamespaces, overlay.ExtensionNamespaces)

	for tag, keys := range t.Attributes {
		merged.Attributes[tag] = slices.Clone(keys)
	}
	for tag, keys := range overlay.Attributes {
		combined := append(merged.Attributes[tag], keys...)
		slices.Sort(combined)
		merged.Attributes[tag] = slices.Compact(combined)
	}
	return merged
}

// Metadata is the compiled, immutable lookup structure shared by the
// XML encoder and decoder.
type Metadata struct {
	defaultNamespace string
	plurals          map[string]string
	attributes       map[string]map[string]struct{}
	namespaces       map[string]string // prefix -> URI
	prefixes         map[string]string // URI -> prefix
}

// New validates tables and compiles them into a Metadata. The tables
// are copied; later changes to them do not affect the result.
//
// Validation rejects empty tags, prefixes that contain a colon, empty
// namespace URIs, and two prefixes bound to the same URI (the decoder
// could not tell which prefix to restore).
func New(tables Tables) (*Metadata, error) {
	var errs []error

	if tables.DefaultNamespace == "" {
		errs = append(errs, errors.New("default namespace is required"))
	}

	plurals := make(map[string]string, len(tables.Plurals))
	for plural, singular := range tables.Plurals {
		if plural == "" || singular == "" {
			errs = append(errs, fmt.Errorf("plural %q: both plural and singular tags are required", plural))
			continue
		}
		plurals[plural] = singular
	}

	attributes := make(map[string]map[string]struct{}, len(tables.Attributes))
	for tag, keys := range tables.Attributes {
		if tag == "" {
			errs = append(errs, errors.New("attributes: empty element tag"))
			continue
		}
		set := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			if key == "" {
				errs = append(errs, fmt.Errorf("attributes for %q: empty key", tag))
				continue
			}
			set[key] = struct{}{}
		}
		attributes[tag] = set
	}

	namespaces := make(map[string]string, len(tables.ExtensionNamespaces))
	prefixes := make(map[string]string, len(tables.ExtensionNamespaces))
	for _, prefix := range slices.Sorted(maps.Keys(tables.ExtensionNamespaces)) {
		uri := tables.ExtensionNamespaces[prefix]
		switch {
		case prefix == "" || strings.Contains(prefix, ":"):
			errs = append(errs, fmt.Errorf("extension namespace prefix %q is not a valid XML prefix", prefix))
			continue
		case uri == "":
			errs = append(errs, fmt.Errorf("extension namespace %q: empty URI", prefix))
			continue
		}
		if existing, ok := prefixes[uri]; ok {
			errs = append(errs, fmt.Errorf("extension namespace %q: URI %s already bound to prefix %q", prefix, uri, existing))
			continue
		}
		namespaces[prefix] = uri
		prefixes[uri] = prefix
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid codec metadata: %w", errors.Join(errs...))
	}

	return &Metadata{
		defaultNamespace: tables.DefaultNamespace,
		plurals:          plurals,
		attributes:       attributes,
		namespaces:       namespaces,
		prefixes:         prefixes,
	}, nil
}

// MustNew is like [New] but panics on invalid tables. Intended for
// package-level defaults and tests.
func MustNew(tables Tables) *Metadata {
	compiled, err := New(tables)
	if err != nil {
		panic(err)
	}
	return compiled
}

// DefaultNamespace returns the URI declared as xmlns on encoded roots.
func (m *Metadata) DefaultNamespace() string {
	return m.defaultNamespace
}

// ResolvePlural returns the item tag registered for a container tag.
func (m *Metadata) ResolvePlural(tag string) (string, bool) {
	singular, ok := m.plurals[tag]
	return singular, ok
}

// Singular returns the item tag for the items of a sequence rendered
// under tag: the registered singular if any, else tag without its
// trailing "s", else "item".
func (m *Metadata) Singular(tag string) string {
	if singular, ok := m.plurals[tag]; ok {
		return singular
	}
	if trimmed, found := strings.CutSuffix(tag, "s"); found && trimmed != "" {
		return trimmed
	}
	return "item"
}

// IsPlural reports whether tag is a registered container tag. The
// decoder turns elements with children under such tags into sequences.
func (m *Metadata) IsPlural(tag string) bool {
	_, ok := m.plurals[tag]
	return ok
}

// IsAttribute reports whether key renders as an XML attribute of an
// element named tag.
func (m *Metadata) IsAttribute(tag, key string) bool {
	_, ok := m.attributes[tag][key]
	return ok
}

// NamespaceForPrefix returns the URI bound to an extension prefix.
func (m *Metadata) NamespaceForPrefix(prefix string) (string, bool) {
	uri, ok := m.namespaces[prefix]
	return uri, ok
}

// PrefixForNamespace returns the extension prefix bound to uri.
func (m *Metadata) PrefixForNamespace(uri string) (string, bool) {
	prefix, ok := m.prefixes[uri]
	return prefix, ok
}

// Tables returns a copy of the tables m was compiled from, with
// attribute lists sorted.
func (m *Metadata) Tables() Tables {
	attributes := make(map[string][]string, len(m.attributes))
	for tag, set := range m.attributes {
		attributes[tag] = slices.Sorted(maps.Keys(set))
	}
	return Tables{
		DefaultNamespace:    m.defaultNamespace,
		Plurals:             maps.Clone(m.plurals),
		Attributes:          attributes,
		ExtensionNamespaces: maps.Clone(m.namespaces),
	}
}
