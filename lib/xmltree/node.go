// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xmltree

import "strings"

// Attr is a single attribute. Name is either a wire name
// ("xsi:nil"), a Clark name ("{uri}nil"), or a namespace declaration
// ("xmlns", "xmlns:atom").
type Attr struct {
	Name  string
	Value string
}

// Node is one element.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node

	// Text is the character data directly inside the element, or nil
	// when the element has none. Text between child elements is
	// concatenated.
	Text *string
}

// NewNode returns an element with the given tag and no content.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing an existing one with the same
// name in place or appending a new one.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// SetText sets the element's character data.
func (n *Node) SetText(text string) {
	n.Text = &text
}

// HasText reports whether the element has non-empty character data.
func (n *Node) HasText() bool {
	return n.Text != nil && *n.Text != ""
}

// TextValue returns the character data, or "" when there is none.
func (n *Node) TextValue() string {
	if n.Text == nil {
		return ""
	}
	return *n.Text
}

// Append adds child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// RemoveChildren drops every child for which match returns true and
// returns the removed children in document order.
func (n *Node) RemoveChildren(match func(*Node) bool) []*Node {
	var removed []*Node
	kept := n.Children[:0]
	for _, child := range n.Children {
		if match(child) {
			removed = append(removed, child)
			continue
		}
		kept = append(kept, child)
	}
	n.Children = kept
	return removed
}

// Clark returns the Clark-notation spelling of a namespaced name,
// "{namespace}local", or just local when namespace is empty.
func Clark(namespace, local string) string {
	if namespace == "" {
		return local
	}
	return "{" + namespace + "}" + local
}

// SplitClark splits a Clark-notation name into its namespace and
// local part. ok is false when name has no namespace wrapper, in which
// case local is name unchanged.
func SplitClark(name string) (namespace, local string, ok bool) {
	if !strings.HasPrefix(name, "{") {
		return "", name, false
	}
	namespace, local, found := strings.Cut(name[1:], "}")
	if !found {
		return "", name, false
	}
	return namespace, local, true
}

// IsNamespaceDeclaration reports whether an attribute name declares a
// namespace ("xmlns" or "xmlns:prefix").
func IsNamespaceDeclaration(name string) bool {
	return name == "xmlns" || strings.HasPrefix(name, "xmlns:")
}

// ValidName reports whether name can be written as an element or
// attribute name: an XML NCName, optionally preceded by one "prefix:".
func ValidName(name string) bool {
	prefix, local, found := strings.Cut(name, ":")
	if !found {
		return isNCName(name)
	}
	return isNCName(prefix) && isNCName(local)
}

func isNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
		} else if !isNameChar(r) {
			return false
		}
	}
	return true
}

// isNameStart follows the XML 1.0 NameStartChar production, less ':'.
func isNameStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= 0xC0 && r <= 0xD6, r >= 0xD8 && r <= 0xF6, r >= 0xF8 && r <= 0x2FF,
		r >= 0x370 && r <= 0x37D, r >= 0x37F && r <= 0x1FFF, r >= 0x200C && r <= 0x200D,
		r >= 0x2070 && r <= 0x218F, r >= 0x2C00 && r <= 0x2FEF, r >= 0x3001 && r <= 0xD7FF,
		r >= 0xF900 && r <= 0xFDCF, r >= 0xFDF0 && r <= 0xFFFD, r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	switch {
	case isNameStart(r), r >= '0' && r <= '9', r == '-', r == '.', r == 0xB7,
		r >= 0x300 && r <= 0x36F, r >= 0x203F && r <= 0x2040:
		return true
	}
	return false
}
