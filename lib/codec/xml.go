// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/value"
	"github.com/bureau-foundation/netcodec/lib/xmltree"
)

const (
	// VirtualRoot is the root element used when the encoded value is
	// not a mapping with exactly one key.
	VirtualRoot = "_v_root"

	// LinksSuffix marks top-level keys holding hypermedia links.
	LinksSuffix = "_links"

	// TypeNamespace is the namespace of the type attribute, declared
	// on every root as xmlns:quantum.
	TypeNamespace = metadata.DefaultNamespace

	// XSINamespace is the XML Schema instance namespace, declared on
	// every root as xmlns:xsi for the nil marker.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// AtomNamespace is declared as xmlns:atom when links are present.
	AtomNamespace = "http://www.w3.org/2005/Atom"
)

// Wire spellings of the reserved prefixes and attributes.
const (
	typePrefix = "quantum"
	xsiPrefix  = "xsi"
	atomPrefix = "atom"

	typeAttr = typePrefix + ":type"
	nilAttr  = xsiPrefix + ":nil"
	linkTag  = atomPrefix + ":link"
)

// WireType is the value of the quantum:type attribute.
type WireType uint8

const (
	// WireNone means no type attribute: the element holds a string.
	WireNone WireType = iota
	WireBool
	WireInt
	WireLong
	WireFloat
	WireList
	WireDict
)

var wireTypeNames = [...]string{
	WireNone:  "",
	WireBool:  "bool",
	WireInt:   "int",
	WireLong:  "long",
	WireFloat: "float",
	WireList:  "list",
	WireDict:  "dict",
}

// String returns the attribute spelling, or "" for WireNone.
func (w WireType) String() string {
	if int(w) < len(wireTypeNames) {
		return wireTypeNames[w]
	}
	return ""
}

// ParseWireType returns the WireType for an attribute value. Unknown
// spellings return WireNone and false; the decoder then treats the
// element as a string.
func ParseWireType(name string) (WireType, bool) {
	for i, candidate := range wireTypeNames {
		if i != int(WireNone) && candidate == name {
			return WireType(i), true
		}
	}
	return WireNone, false
}

// WireTypeOf returns the type attribute the encoder attaches to a
// scalar value. Containers return WireList or WireDict, though the
// encoder only writes those for empty containers and unregistered
// list tags.
func WireTypeOf(v value.Value) WireType {
	switch v.Kind() {
	case value.KindBool:
		return WireBool
	case value.KindInt:
		if v.IsLong() {
			return WireLong
		}
		return WireInt
	case value.KindFloat:
		return WireFloat
	case value.KindSequence:
		return WireList
	case value.KindMapping:
		return WireDict
	default:
		return WireNone
	}
}

// MarshalXML encodes v and writes the document with the XML
// declaration, on a single line.
func MarshalXML(v value.Value, md *metadata.Metadata) []byte {
	return xmltree.Marshal(EncodeXML(v, md))
}

// MarshalXMLIndent is MarshalXML with one child element per line.
func MarshalXMLIndent(v value.Value, md *metadata.Metadata, indent string) []byte {
	return xmltree.MarshalIndent(EncodeXML(v, md), indent)
}
