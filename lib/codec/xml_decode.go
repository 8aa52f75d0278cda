// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/value"
	"github.com/bureau-foundation/netcodec/lib/xmltree"
)

// DecodeXML parses an XML document and decodes it into a Value.
//
// A document rooted at [VirtualRoot] decodes to the value of its root
// element. Any other root decodes to a one-key mapping from the root's
// canonical name to its value, plus a "<root>_links" entry when the
// root carried atom:link children.
//
// Errors are [*DecodeError] values matching [ErrMalformedInput] when
// data is not well-formed and [ErrAmbiguousStructure] when it cannot
// be mapped to a single value. A nil md uses the default tables.
func DecodeXML(data []byte, md *metadata.Metadata) (value.Value, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return value.Null(), malformed(FormatXML, err)
	}
	return DecodeXMLNode(root, md)
}

// DecodeXMLNode decodes an already parsed element tree, with names in
// Clark notation as produced by [xmltree.Parse]. The tree is not
// modified.
func DecodeXMLNode(root *xmltree.Node, md *metadata.Metadata) (value.Value, error) {
	if md == nil {
		md = defaultMetadata()
	}
	d := &xmlDecoder{metadata: md}

	rootName := d.canonicalName(root.Tag)

	stripped := *root
	stripped.Children = nil
	var links []value.Value
	for _, child := range root.Children {
		if isLinkElement(child.Tag) {
			links = append(links, decodeLink(child))
			continue
		}
		stripped.Children = append(stripped.Children, child)
	}

	decoded, err := d.decode(&stripped, rootName, rootName)
	if err != nil {
		return value.Null(), err
	}

	if rootName == VirtualRoot {
		return decoded, nil
	}
	result := map[string]value.Value{rootName: decoded}
	if len(links) > 0 {
		result[rootName+LinksSuffix] = value.Sequence(links...)
	}
	return value.Mapping(result), nil
}

type xmlDecoder struct {
	metadata *metadata.Metadata
}

// canonicalName converts a Clark name to the key it decodes as:
// elements in the default namespace lose their namespace, elements in
// a registered extension namespace get its prefix, and anything else
// is returned unchanged.
func (d *xmlDecoder) canonicalName(name string) string {
	namespace, local, ok := xmltree.SplitClark(name)
	if !ok {
		return name
	}
	if namespace == d.metadata.DefaultNamespace() {
		return local
	}
	if prefix, ok := d.metadata.PrefixForNamespace(namespace); ok {
		return prefix + ":" + local
	}
	if !strings.Contains(namespace, ":") {
		// encoding/xml leaves an undeclared prefix in the namespace
		// slot. No URI is a bare word, so restore the prefixed name.
		return namespace + ":" + local
	}
	return name
}

func isLinkElement(tag string) bool {
	return tag == xmltree.Clark(AtomNamespace, "link") || tag == xmltree.Clark(atomPrefix, "link")
}

// decodeLink builds the {rel, href} mapping of one atom:link element.
// Missing attributes are left out of the mapping.
func decodeLink(node *xmltree.Node) value.Value {
	entries := make(map[string]value.Value, 2)
	for _, name := range []string{"rel", "href"} {
		if attr, ok := node.Attr(name); ok {
			entries[name] = value.Text(attr)
		}
	}
	return value.Mapping(entries)
}

// controlAttr looks up one of the reserved attributes, accepting both
// the declared namespace and an undeclared prefix.
func controlAttr(node *xmltree.Node, namespace, prefix, local string) (string, bool) {
	if attr, ok := node.Attr(xmltree.Clark(namespace, local)); ok {
		return attr, true
	}
	return node.Attr(xmltree.Clark(prefix, local))
}

func isControlAttr(name string) bool {
	if xmltree.IsNamespaceDeclaration(name) {
		return true
	}
	namespace, local, ok := xmltree.SplitClark(name)
	if !ok {
		return false
	}
	switch {
	case local == "nil" && (namespace == XSINamespace || namespace == xsiPrefix):
		return true
	case local == "type" && (namespace == TypeNamespace || namespace == typePrefix):
		return true
	}
	return false
}

func (d *xmlDecoder) wireType(node *xmltree.Node) WireType {
	attr, ok := controlAttr(node, TypeNamespace, typePrefix, "type")
	if !ok {
		return WireNone
	}
	wireType, _ := ParseWireType(attr)
	return wireType
}

// decode applies the node rules to one element. name is the element's
// canonical name; path locates it for error messages.
func (d *xmlDecoder) decode(node *xmltree.Node, name, path string) (value.Value, error) {
	if isNil, ok := controlAttr(node, XSINamespace, xsiPrefix, "nil"); ok && strings.EqualFold(isNil, "true") {
		return value.Null(), nil
	}

	wireType := d.wireType(node)

	if len(node.Children) == 0 {
		switch wireType {
		case WireDict:
			// An empty mapping, or one whose keys are all attributes.
			return d.attributeMapping(node), nil
		case WireList:
			return value.Sequence(), nil
		}
		if !node.HasText() {
			return value.Text(""), nil
		}
		return d.scalar(node.TextValue(), wireType, path)
	}

	if wireType != WireDict && (wireType == WireList || d.metadata.IsPlural(name)) {
		items := make([]value.Value, 0, len(node.Children))
		for i, child := range node.Children {
			childName := d.canonicalName(child.Tag)
			item, err := d.decode(child, childName, fmt.Sprintf("%s/%s[%d]", path, childName, i))
			if err != nil {
				return value.Null(), err
			}
			items = append(items, item)
		}
		return value.Sequence(items...), nil
	}

	entries := d.attributeEntries(node)
	for _, child := range node.Children {
		key := d.canonicalName(child.Tag)
		childPath := path + "/" + key
		if _, exists := entries[key]; exists {
			return value.Null(), ambiguous(childPath, fmt.Sprintf("repeated element %q under %q, which is not a registered list", key, name))
		}
		decoded, err := d.decode(child, key, childPath)
		if err != nil {
			return value.Null(), err
		}
		entries[key] = decoded
	}
	return value.Mapping(entries), nil
}

func (d *xmlDecoder) attributeMapping(node *xmltree.Node) value.Value {
	return value.Mapping(d.attributeEntries(node))
}

// attributeEntries returns the non-reserved attributes of node as text
// entries keyed by canonical name.
func (d *xmlDecoder) attributeEntries(node *xmltree.Node) map[string]value.Value {
	entries := make(map[string]value.Value, len(node.Attrs)+len(node.Children))
	for _, attr := range node.Attrs {
		if isControlAttr(attr.Name) {
			continue
		}
		entries[d.canonicalName(attr.Name)] = value.Text(attr.Value)
	}
	return entries
}

// scalar converts the text of a leaf element according to its type
// attribute. Elements without a type, or with a type this dialect does
// not define, are strings.
func (d *xmlDecoder) scalar(text string, wireType WireType, path string) (value.Value, error) {
	switch wireType {
	case WireBool:
		return value.Bool(strings.EqualFold(text, "true")), nil

	case WireInt, WireLong:
		parsed, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return value.Null(), numericError(path, text, wireType, err)
		}
		if wireType == WireLong {
			return value.Long(parsed), nil
		}
		return value.Int(parsed), nil

	case WireFloat:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return value.Null(), numericError(path, text, wireType, err)
		}
		return value.Float(parsed), nil

	default:
		return value.Text(text), nil
	}
}

func numericError(path, text string, wireType WireType, err error) *DecodeError {
	decodeError := ambiguous(path, fmt.Sprintf("text %q is not a valid %s", text, wireType))
	decodeError.Err = err
	return decodeError
}
