// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// SyntaxError reports a document that is not well-formed XML. Every
// parse failure is returned as a SyntaxError, whether it came from the
// tokenizer, an unbalanced tag, or content outside the root element.
type SyntaxError struct {
	// Line is the 1-based line where the problem was detected, or 0
	// when unknown.
	Line int

	// Err describes the problem.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("XML syntax error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("XML syntax error: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

var (
	errNoRoot           = errors.New("document has no root element")
	errAfterRoot        = errors.New("element after document end")
	errTextOutsideRoot  = errors.New("character data outside root element")
	errUnclosedElements = errors.New("unexpected end of document inside element")
)

// Parse builds a tree from a complete XML document. Element and
// attribute names in the result use Clark notation for namespaced
// names; namespace declarations are kept as "xmlns" and "xmlns:prefix"
// attributes. Comments, processing instructions and directives are
// dropped.
func Parse(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var stack []*Node
	var root *Node
	rootClosed := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, syntaxError(decoder, err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, syntaxError(decoder, errAfterRoot)
			}
			element := &Node{
				Tag:   Clark(typed.Name.Space, typed.Name.Local),
				Attrs: convertAttrs(typed.Attr),
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(element)
			} else {
				root = element
			}
			stack = append(stack, element)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(typed) {
					return nil, syntaxError(decoder, errTextOutsideRoot)
				}
				continue
			}
			current := stack[len(stack)-1]
			current.SetText(current.TextValue() + string(typed))
		}
	}

	if root == nil {
		return nil, &SyntaxError{Err: errNoRoot}
	}
	if len(stack) > 0 {
		return nil, syntaxError(decoder, errUnclosedElements)
	}
	return root, nil
}

// syntaxError wraps err in a SyntaxError carrying the best line number
// available: the tokenizer's own when it reports one, otherwise the
// decoder's current position.
func syntaxError(decoder *xml.Decoder, err error) *SyntaxError {
	var tokenizerError *xml.SyntaxError
	if errors.As(err, &tokenizerError) {
		return &SyntaxError{Line: tokenizerError.Line, Err: errors.New(tokenizerError.Msg)}
	}
	line, _ := decoder.InputPos()
	return &SyntaxError{Line: line, Err: err}
}

func isIgnorableOutsideRoot(data []byte) bool {
	for _, r := range string(data) {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// convertAttrs renames encoding/xml attributes into tree spelling.
// encoding/xml reports "xmlns:p" as {Space: "xmlns", Local: "p"} and a
// default declaration as {Space: "", Local: "xmlns"}.
func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	if len(xmlAttrs) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, attr := range xmlAttrs {
		var name string
		switch {
		case attr.Name.Space == "xmlns":
			name = "xmlns:" + attr.Name.Local
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			name = "xmlns"
		default:
			name = Clark(attr.Name.Space, attr.Name.Local)
		}
		attrs = append(attrs, Attr{Name: name, Value: attr.Value})
	}
	return attrs
}
