// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/value"
	"github.com/bureau-foundation/netcodec/lib/xmltree"
)

// EncodeXML builds the XML element tree for v. The returned root
// carries all namespace declarations. Neither v nor md is modified; a
// nil md uses the default tables.
//
// EncodeXML panics if v contains a value of unknown kind or a mapping
// key that is not a valid XML name.
func EncodeXML(v value.Value, md *metadata.Metadata) *xmltree.Node {
	if md == nil {
		md = defaultMetadata()
	}
	e := &xmlEncoder{metadata: md, usedPrefixes: make(map[string]bool)}

	rootTag, content, links := splitRoot(v)
	root := e.node(rootTag, content)
	for _, link := range links {
		root.Append(linkNode(link))
	}
	e.declareNamespaces(root, len(links) > 0)
	return root
}

// CheckXMLNames returns an error wrapping [ErrInvalidName] for the
// first mapping key in v that [EncodeXML] could not write as an
// element or attribute name.
func CheckXMLNames(v value.Value) error {
	rootTag, content, _ := splitRoot(v)
	if !xmltree.ValidName(rootTag) {
		return fmt.Errorf("%w: %q", ErrInvalidName, rootTag)
	}
	return checkNames(rootTag, content)
}

func checkNames(path string, v value.Value) error {
	switch v.Kind() {
	case value.KindSequence:
		for i, item := range v.Items() {
			if err := checkNames(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case value.KindMapping:
		for _, key := range v.Keys() {
			if !xmltree.ValidName(key) {
				return fmt.Errorf("%w: %q under %s", ErrInvalidName, key, path)
			}
			entry, _ := v.Get(key)
			if err := checkNames(path+"/"+key, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitRoot picks the root element for v. A mapping with one key left
// after link extraction names the root; anything else goes under the
// virtual root with its link keys left in place, since the decoder
// drops links there.
func splitRoot(v value.Value) (rootTag string, content value.Value, links []value.Value) {
	if v.Kind() != value.KindMapping {
		return VirtualRoot, v, nil
	}
	content, links = extractLinks(v)
	if content.Len() != 1 {
		content, links = v, nil
	}
	if content.Len() != 1 {
		return VirtualRoot, content, nil
	}
	rootTag = content.Keys()[0]
	content, _ = content.Get(rootTag)
	return rootTag, content, links
}

type xmlEncoder struct {
	metadata *metadata.Metadata

	// usedPrefixes collects the prefixes of every namespaced tag and
	// attribute in this document.
	usedPrefixes map[string]bool
}

// extractLinks removes top-level keys ending in LinksSuffix whose
// value is a non-empty sequence of mappings, returning the remaining
// mapping and the link entries in key order. Keys that merely end in
// the suffix but hold anything else stay in the mapping as ordinary
// data.
func extractLinks(mapping value.Value) (value.Value, []value.Value) {
	var links []value.Value
	remaining := mapping
	for _, key := range mapping.Keys() {
		if !strings.HasSuffix(key, LinksSuffix) {
			continue
		}
		section, _ := mapping.Get(key)
		if !isLinkSection(section) {
			continue
		}
		links = append(links, section.Items()...)
		remaining = remaining.Without(key)
	}
	return remaining, links
}

func isLinkSection(section value.Value) bool {
	if section.Kind() != value.KindSequence || section.Len() == 0 {
		return false
	}
	for _, item := range section.Items() {
		if item.Kind() != value.KindMapping {
			return false
		}
	}
	return true
}

func linkNode(link value.Value) *xmltree.Node {
	node := xmltree.NewNode(linkTag)
	for _, name := range []string{"rel", "href"} {
		if attr, ok := link.Get(name); ok {
			node.SetAttr(name, attr.DisplayString())
		}
	}
	return node
}

func (e *xmlEncoder) node(tag string, v value.Value) *xmltree.Node {
	requireName(tag)
	e.notePrefix(tag)
	node := xmltree.NewNode(tag)

	switch v.Kind() {
	case value.KindNull:
		node.SetAttr(nilAttr, "true")

	case value.KindBool, value.KindInt, value.KindFloat:
		node.SetText(v.DisplayString())
		node.SetAttr(typeAttr, WireTypeOf(v).String())

	case value.KindText:
		text, _ := v.AsText()
		node.SetText(text)

	case value.KindSequence:
		if v.Len() == 0 || !e.metadata.IsPlural(tag) {
			// Without a registered plural the decoder cannot tell a
			// list from a mapping, so the element says which it is.
			node.SetAttr(typeAttr, WireList.String())
		}
		singular := e.metadata.Singular(tag)
		for _, item := range v.Items() {
			node.Append(e.node(singular, item))
		}

	case value.KindMapping:
		for _, key := range v.Keys() {
			entry, _ := v.Get(key)
			if e.metadata.IsAttribute(tag, key) {
				requireName(key)
				e.notePrefix(key)
				node.SetAttr(key, entry.DisplayString())
				continue
			}
			node.Append(e.node(key, entry))
		}
		if len(node.Children) == 0 || e.metadata.IsPlural(tag) {
			// Empty, every key became an attribute, or the tag would
			// otherwise decode as a list.
			node.SetAttr(typeAttr, WireDict.String())
		}

	default:
		panic(fmt.Sprintf("codec: cannot encode value of kind %s", v.Kind()))
	}
	return node
}

func requireName(name string) {
	if !xmltree.ValidName(name) {
		panic(fmt.Sprintf("codec: mapping key %q is not a valid XML name", name))
	}
}

func (e *xmlEncoder) notePrefix(name string) {
	if prefix, _, found := strings.Cut(name, ":"); found {
		e.usedPrefixes[prefix] = true
	}
}

// declareNamespaces prepends the namespace declarations to the root's
// attributes: default namespace, type alias, xsi, atom when links were
// written, then every used extension prefix in sorted order.
func (e *xmlEncoder) declareNamespaces(root *xmltree.Node, hasLinks bool) {
	declarations := []xmltree.Attr{
		{Name: "xmlns", Value: e.metadata.DefaultNamespace()},
		{Name: "xmlns:" + typePrefix, Value: TypeNamespace},
		{Name: "xmlns:" + xsiPrefix, Value: XSINamespace},
	}
	if hasLinks {
		declarations = append(declarations, xmltree.Attr{Name: "xmlns:" + atomPrefix, Value: AtomNamespace})
	}

	prefixes := make([]string, 0, len(e.usedPrefixes))
	for prefix := range e.usedPrefixes {
		switch prefix {
		case typePrefix, xsiPrefix, atomPrefix:
			continue
		}
		prefixes = append(prefixes, prefix)
	}
	slices.Sort(prefixes)
	for _, prefix := range prefixes {
		if uri, ok := e.metadata.NamespaceForPrefix(prefix); ok {
			declarations = append(declarations, xmltree.Attr{Name: "xmlns:" + prefix, Value: uri})
		}
	}

	root.Attrs = append(declarations, root.Attrs...)
}
