// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xmltree

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Declaration is the XML declaration written before the root element.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Marshal writes root as a complete document: the declaration, a
// newline, then the element tree on one line. Names are written as
// stored, so the tree must use wire names, not Clark notation.
// Elements with neither children nor text are written self-closing.
func Marshal(root *Node) []byte {
	return MarshalIndent(root, "")
}

// MarshalIndent is like [Marshal] but places each child element on
// its own line, indented by one copy of indent per level. Whitespace
// is only inserted between child elements, never inside elements that
// carry text, so a decoder that ignores text of elements with children
// reads the same values back.
func MarshalIndent(root *Node, indent string) []byte {
	var buffer bytes.Buffer
	buffer.WriteString(Declaration)
	buffer.WriteByte('\n')
	writeNode(&buffer, root, indent, 0)
	if indent != "" {
		buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func writeNode(buffer *bytes.Buffer, node *Node, indent string, depth int) {
	buffer.WriteByte('<')
	buffer.WriteString(node.Tag)
	for _, attr := range node.Attrs {
		buffer.WriteByte(' ')
		buffer.WriteString(attr.Name)
		buffer.WriteString(`="`)
		escape(buffer, attr.Value)
		buffer.WriteByte('"')
	}

	if len(node.Children) == 0 && !node.HasText() {
		buffer.WriteString("/>")
		return
	}
	buffer.WriteByte('>')

	if node.HasText() {
		escape(buffer, *node.Text)
	}

	pretty := indent != "" && !node.HasText()
	for _, child := range node.Children {
		if pretty {
			buffer.WriteByte('\n')
			buffer.WriteString(strings.Repeat(indent, depth+1))
		}
		writeNode(buffer, child, indent, depth+1)
	}
	if pretty && len(node.Children) > 0 {
		buffer.WriteByte('\n')
		buffer.WriteString(strings.Repeat(indent, depth))
	}

	buffer.WriteString("</")
	buffer.WriteString(node.Tag)
	buffer.WriteByte('>')
}

// escape writes s with XML special characters replaced. Newlines,
// carriage returns and tabs are written as character references so
// that attribute values survive attribute-value normalization.
func escape(buffer *bytes.Buffer, s string) {
	// xml.EscapeText only fails when the writer fails; bytes.Buffer
	// never does.
	_ = xml.EscapeText(buffer, []byte(s))
}
