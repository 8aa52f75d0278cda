// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/testutil"
	"github.com/bureau-foundation/netcodec/lib/value"
	"github.com/bureau-foundation/netcodec/lib/xmltree"
)

const rootDeclarations = `xmlns="http://openstack.org/quantum/api/v2.0" ` +
	`xmlns:quantum="http://openstack.org/quantum/api/v2.0" ` +
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`

func testMetadata(t *testing.T) *metadata.Metadata {
	t.Helper()
	tables := metadata.Defaults().Merge(metadata.Tables{
		Attributes: map[string][]string{"network": {"id"}},
		ExtensionNamespaces: map[string]string{
			"provider": "http://docs.openstack.org/ext/provider/api/v1.0",
		},
	})
	md, err := metadata.New(tables)
	if err != nil {
		t.Fatalf("metadata.New: %v", err)
	}
	return md
}

func TestMarshalXMLDocument(t *testing.T) {
	v := value.Object("network", value.Object(
		"admin_state_up", value.Bool(true),
		"gateway", value.Null(),
		"name", value.Text("net1"),
		"mtu", value.Int(1500),
	))

	want := xmltree.Declaration + "\n" +
		`<network ` + rootDeclarations + `>` +
		`<admin_state_up quantum:type="bool">true</admin_state_up>` +
		`<gateway xsi:nil="true"/>` +
		`<mtu quantum:type="int">1500</mtu>` +
		`<name>net1</name>` +
		`</network>`

	if got := string(MarshalXML(v, nil)); got != want {
		t.Errorf("MarshalXML =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeXMLRootTag(t *testing.T) {
	tests := []struct {
		name  string
		value value.Value
		want  string
	}{
		{"single key", value.Object("network", value.Object("name", value.Text("x"))), "network"},
		{"two keys", value.Object("a", value.Int(1), "b", value.Int(2)), VirtualRoot},
		{"empty mapping", value.Mapping(nil), VirtualRoot},
		{"text", value.Text("x"), VirtualRoot},
		{"sequence", value.Sequence(value.Int(1)), VirtualRoot},
		{"null", value.Null(), VirtualRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeXML(tt.value, nil).Tag; got != tt.want {
				t.Errorf("root tag = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeXMLNamespaceDeclarations(t *testing.T) {
	root := EncodeXML(value.Object("network", value.Object("name", value.Text("x"))), nil)
	var names []string
	for _, attr := range root.Attrs {
		names = append(names, attr.Name)
	}
	if got := strings.Join(names, " "); got != "xmlns xmlns:quantum xmlns:xsi" {
		t.Errorf("root attributes = %q", got)
	}
}

func TestEncodeXMLPluralization(t *testing.T) {
	v := value.Object("networks", value.Sequence(
		value.Object("id", value.Text("a")),
		value.Object("id", value.Text("b")),
	))
	root := EncodeXML(v, nil)

	if _, ok := root.Attr(typeAttr); ok {
		t.Error("registered plural carries a type attribute")
	}
	if len(root.Children) != 2 {
		t.Fatalf("networks has %d children, want 2", len(root.Children))
	}
	for _, child := range root.Children {
		if child.Tag != "network" {
			t.Errorf("child tag = %q, want network", child.Tag)
		}
	}

	decoded, err := DecodeXML(xmltree.Marshal(root), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, v, "decoding pluralized list")
}

func TestEncodeXMLSingularFallback(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"ports", "port"},
		{"policies", "policie"},
		{"firewall_policies", "firewall_policy"},
		{"bits", "bit"},
		{"data", "item"},
		{"s", "item"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			root := EncodeXML(value.Object(tt.tag, value.Sequence(value.Int(1))), nil)
			if got := root.Children[0].Tag; got != tt.want {
				t.Errorf("item tag = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeXMLUnregisteredListIsTyped(t *testing.T) {
	root := EncodeXML(value.Object("tags", value.Sequence(value.Text("a"))), nil)
	if wireType, _ := root.Attr(typeAttr); wireType != "list" {
		t.Errorf("type attribute = %q, want list", wireType)
	}
}

func TestEncodeXMLMappingUnderPluralIsTyped(t *testing.T) {
	root := EncodeXML(value.Object("quotas", value.Object("network", value.Int(10))), nil)
	if wireType, _ := root.Attr(typeAttr); wireType != "dict" {
		t.Errorf("type attribute = %q, want dict", wireType)
	}

	unregistered := EncodeXML(value.Object("quota", value.Object("network", value.Int(10))), nil)
	if _, ok := unregistered.Attr(typeAttr); ok {
		t.Error("mapping with children under an unregistered tag carries a type attribute")
	}
}

func TestEncodeXMLInvalidNamePanics(t *testing.T) {
	tests := []struct {
		name  string
		value value.Value
	}{
		{"root key with space", value.Object("1 bad", value.Text("x"))},
		{"empty nested key", value.Object("network", value.Object("", value.Text("x")))},
		{"nested key with space", value.Object("network", value.Object("a b", value.Int(1)))},
		{"key under virtual root", value.Object("ok", value.Int(1), "not ok", value.Int(2))},
		{"key inside list item", value.Object("networks", value.Sequence(value.Object("<id>", value.Text("a"))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					t.Fatal("EncodeXML did not panic")
				}
				if message := fmt.Sprint(recovered); !strings.Contains(message, "not a valid XML name") {
					t.Errorf("panic message = %q", message)
				}
			}()
			EncodeXML(tt.value, nil)
		})
	}
}

func TestEncodeXMLInvalidAttributeNamePanics(t *testing.T) {
	tables := metadata.Defaults().Merge(metadata.Tables{
		Attributes: map[string][]string{"network": {"bad id"}},
	})
	md, err := metadata.New(tables)
	if err != nil {
		t.Fatalf("metadata.New: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("EncodeXML did not panic for an invalid attribute name")
		}
	}()
	EncodeXML(value.Object("network", value.Object("bad id", value.Text("x"))), md)
}

func TestCheckXMLNames(t *testing.T) {
	tests := []struct {
		name    string
		value   value.Value
		wantErr string
	}{
		{"valid document", value.Object("network", value.Object(
			"name", value.Text("n"),
			"provider:network_type", value.Text("vlan"),
		)), ""},
		{"scalar", value.Text("x"), ""},
		{"link mapping keys are not written", value.Object(
			"network", value.Object("id", value.Text("x")),
			"network_links", value.Sequence(value.Object("rel", value.Text("self"), "href", value.Text("h"), "odd key", value.Int(1))),
		), ""},
		{"root key", value.Object("1 bad", value.Text("x")), `"1 bad"`},
		{"nested key", value.Object("network", value.Object("a b", value.Int(1))), `"a b" under network`},
		{"inside list", value.Object("networks", value.Sequence(value.Object("", value.Int(1)))), `"" under networks[0]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckXMLNames(tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckXMLNames: %v", err)
				}
				EncodeXML(tt.value, nil)
				return
			}
			testutil.RequireErrorIs(t, err, ErrInvalidName, tt.name)
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeXMLEmptyContainers(t *testing.T) {
	v := value.Object("network", value.Object(
		"list", value.Sequence(),
		"dict", value.Mapping(nil),
		"text", value.Text(""),
	))
	output := string(MarshalXML(v, nil))
	for _, fragment := range []string{
		`<dict quantum:type="dict"/>`,
		`<list quantum:type="list"/>`,
		`<text/>`,
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output lacks %s:\n%s", fragment, output)
		}
	}

	decoded, err := DecodeXML([]byte(output), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	network, _ := decoded.Get("network")
	for key, kind := range map[string]value.Kind{
		"list": value.KindSequence,
		"dict": value.KindMapping,
		"text": value.KindText,
	} {
		entry, _ := network.Get(key)
		if entry.Kind() != kind {
			t.Errorf("%s decoded as %s, want %s", key, entry.Kind(), kind)
		}
	}
}

func TestEncodeXMLLinks(t *testing.T) {
	v := value.Object(
		"networks", value.Sequence(value.Object("id", value.Text("a"))),
		"networks_links", value.Sequence(value.Object("rel", value.Text("next"), "href", value.Text("http://x/y"))),
	)
	root := EncodeXML(v, nil)

	if root.Tag != "networks" {
		t.Fatalf("root tag = %q, want networks", root.Tag)
	}
	if uri, ok := root.Attr("xmlns:atom"); !ok || uri != AtomNamespace {
		t.Errorf("xmlns:atom = %q, %v", uri, ok)
	}
	last := root.Children[len(root.Children)-1]
	if last.Tag != "atom:link" {
		t.Fatalf("last child = %q, want atom:link", last.Tag)
	}
	rel, _ := last.Attr("rel")
	href, _ := last.Attr("href")
	if rel != "next" || href != "http://x/y" {
		t.Errorf("link rel=%q href=%q", rel, href)
	}

	decoded, err := DecodeXML(xmltree.Marshal(root), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, v, "decoding links")
}

func TestEncodeXMLLinksUnderVirtualRootStayData(t *testing.T) {
	v := value.Object(
		"a", value.Int(1),
		"b", value.Int(2),
		"a_links", value.Sequence(value.Object("rel", value.Text("self"), "href", value.Text("http://x/a"))),
	)
	root := EncodeXML(v, nil)
	if root.Tag != VirtualRoot {
		t.Fatalf("root tag = %q, want %s", root.Tag, VirtualRoot)
	}
	if _, ok := root.Attr("xmlns:atom"); ok {
		t.Error("atom namespace declared under the virtual root")
	}
	for _, child := range root.Children {
		if child.Tag == "atom:link" {
			t.Error("link written as atom:link under the virtual root")
		}
	}
}

func TestEncodeXMLLinksKeyThatIsNotLinks(t *testing.T) {
	v := value.Object("external_links", value.Text("none"))
	root := EncodeXML(v, nil)
	if root.Tag != "external_links" {
		t.Errorf("root tag = %q, want external_links", root.Tag)
	}
	if _, ok := root.Attr("xmlns:atom"); ok {
		t.Error("atom namespace declared without links")
	}
}

func TestEncodeXMLAttributes(t *testing.T) {
	md := testMetadata(t)

	v := value.Object("network", value.Object("id", value.Text("abc"), "name", value.Text("n")))
	want := xmltree.Declaration + "\n" +
		`<network ` + rootDeclarations + ` id="abc"><name>n</name></network>`
	if got := string(MarshalXML(v, md)); got != want {
		t.Errorf("MarshalXML =\n%s\nwant\n%s", got, want)
	}

	onlyAttributes := value.Object("network", value.Object("id", value.Text("abc")))
	decoded, err := DecodeXML(MarshalXML(onlyAttributes, md), md)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, onlyAttributes, "mapping with only attribute keys")
}

func TestEncodeXMLExtensionPrefixes(t *testing.T) {
	md := testMetadata(t)
	v := value.Object("network", value.Object(
		"name", value.Text("n"),
		"provider:network_type", value.Text("vlan"),
		"vendor:flag", value.Bool(true),
	))

	root := EncodeXML(v, md)
	if uri, ok := root.Attr("xmlns:provider"); !ok || uri != "http://docs.openstack.org/ext/provider/api/v1.0" {
		t.Errorf("xmlns:provider = %q, %v", uri, ok)
	}
	if _, ok := root.Attr("xmlns:vendor"); ok {
		t.Error("declared a prefix with no registered namespace")
	}

	decoded, err := DecodeXML(xmltree.Marshal(root), md)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, v, "decoding extension elements")
}

func TestEncodeXMLUnusedExtensionNotDeclared(t *testing.T) {
	md := testMetadata(t)
	root := EncodeXML(value.Object("network", value.Object("name", value.Text("n"))), md)
	if _, ok := root.Attr("xmlns:provider"); ok {
		t.Error("unused extension prefix declared")
	}
}

func TestEncodeXMLDoesNotModifyInput(t *testing.T) {
	v := value.Object(
		"networks", value.Sequence(value.Object("id", value.Text("a"))),
		"networks_links", value.Sequence(value.Object("rel", value.Text("self"), "href", value.Text("h"))),
	)
	before := v.String()
	EncodeXML(v, nil)
	if after := v.String(); after != before {
		t.Errorf("input changed:\nbefore %s\nafter  %s", before, after)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	md := testMetadata(t)
	tests := []struct {
		name  string
		value value.Value
	}{
		{"scalars", value.Object("network", value.Object(
			"name", value.Text("net1"),
			"admin_state_up", value.Bool(true),
			"shared", value.Bool(false),
			"mtu", value.Int(1500),
			"offset", value.Int(-42),
			"size", value.Long(1<<40),
			"ratio", value.Float(0.5),
			"whole", value.Float(3),
			"tiny", value.Float(1e-300),
			"gateway", value.Null(),
			"description", value.Text(""),
		))},
		{"special text", value.Object("port", value.Object(
			"name", value.Text("<a & 'b'> \"c\""),
			"multiline", value.Text("line one\r\nline two\ttab"),
			"padded", value.Text("  spaced  "),
		))},
		{"non-finite floats", value.Object("stats", value.Object(
			"nan", value.Float(math.NaN()),
			"up", value.Float(math.Inf(1)),
			"down", value.Float(math.Inf(-1)),
		))},
		{"registered plurals", value.Object("ports", value.Sequence(
			value.Object("fixed_ips", value.Sequence(
				value.Object("ip_address", value.Text("10.0.0.2"), "subnet_id", value.Text("s1")),
			)),
		))},
		{"nested unregistered lists", value.Object("network", value.Object(
			"deep", value.Sequence(value.Sequence(value.Int(1), value.Int(2)), value.Mapping(nil), value.Sequence()),
		))},
		{"single item list", value.Object("tags", value.Sequence(value.Text("only")))},
		{"virtual root mapping", value.Object("a", value.Int(1), "b", value.Text("x"))},
		{"top-level sequence", value.Sequence(value.Int(1), value.Text("x"), value.Null())},
		{"top-level text", value.Text("hello")},
		{"top-level empty text", value.Text("")},
		{"top-level null", value.Null()},
		{"top-level empty sequence", value.Sequence()},
		{"top-level empty mapping", value.Mapping(nil)},
		{"root holding null", value.Object("network", value.Null())},
		{"attribute and extension keys", value.Object("network", value.Object(
			"id", value.Text("abc"),
			"provider:segmentation_id", value.Int(101),
			"subnets", value.Sequence(value.Text("s1"), value.Text("s2")),
		))},
		{"mapping under registered plural", value.Object("quotas", value.Object(
			"network", value.Int(10),
			"port", value.Int(50),
		))},
		{"nested mapping under registered plural", value.Object("router", value.Object(
			"pools", value.Object("a", value.Text("x")),
		))},
		{"links key under virtual root", value.Object(
			"a", value.Int(1),
			"b", value.Int(2),
			"a_links", value.Sequence(value.Object("rel", value.Text("self"), "href", value.Text("http://x/a"))),
		)},
		{"only links keys", value.Object(
			"a_links", value.Sequence(value.Object("rel", value.Text("self"), "href", value.Text("http://x/a"))),
			"b_links", value.Sequence(value.Object("rel", value.Text("next"), "href", value.Text("http://x/b"))),
		)},
		{"links with virtual-root-free root", value.Object(
			"network", value.Object("id", value.Text("x")),
			"network_links", value.Sequence(
				value.Object("rel", value.Text("self"), "href", value.Text("http://x/self")),
				value.Object("rel", value.Text("bookmark"), "href", value.Text("http://x/book")),
			),
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, indent := range []string{"", "  "} {
				document := MarshalXMLIndent(tt.value, md, indent)
				decoded, err := DecodeXML(document, md)
				if err != nil {
					t.Fatalf("DecodeXML(indent %q): %v\n%s", indent, err, document)
				}
				testutil.RequireValueEqual(t, decoded, tt.value, "round trip with indent %q:\n%s", indent, document)
			}
		})
	}
}

func TestXMLRoundTripKeepsWireTypes(t *testing.T) {
	v := value.Object("quota", value.Object(
		"flag", value.Bool(true),
		"count", value.Int(3),
		"bytes", value.Long(3),
		"ratio", value.Float(3.5),
	))
	decoded, err := DecodeXML(MarshalXML(v, nil), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	quota, _ := decoded.Get("quota")

	flag, _ := quota.Get("flag")
	if b, ok := flag.AsBool(); !ok || !b {
		t.Errorf("flag = %s", flag)
	}
	count, _ := quota.Get("count")
	if i, ok := count.AsInt(); !ok || i != 3 || count.IsLong() {
		t.Errorf("count = %s", count)
	}
	bytes, _ := quota.Get("bytes")
	if i, ok := bytes.AsInt(); !ok || i != 3 || !bytes.IsLong() {
		t.Errorf("bytes = %s", bytes)
	}
	ratio, _ := quota.Get("ratio")
	if f, ok := ratio.AsFloat(); !ok || f != 3.5 {
		t.Errorf("ratio = %s", ratio)
	}
}

func TestDecodeXMLServerDocument(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8"?>
<networks xmlns="http://openstack.org/quantum/api/v2.0"
          xmlns:quantum="http://openstack.org/quantum/api/v2.0"
          xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
          xmlns:atom="http://www.w3.org/2005/Atom">
  <network>
    <status>ACTIVE</status>
    <subnets quantum:type="list"/>
    <admin_state_up quantum:type="bool">True</admin_state_up>
    <router:external quantum:type="bool" xmlns:router="urn:router">false</router:external>
  </network>
  <atom:link rel="next" href="http://x/networks?marker=1"/>
</networks>`

	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	want := value.Object(
		"networks", value.Sequence(value.Object(
			"status", value.Text("ACTIVE"),
			"subnets", value.Sequence(),
			"admin_state_up", value.Bool(true),
			"{urn:router}external", value.Bool(false),
		)),
		"networks_links", value.Sequence(
			value.Object("rel", value.Text("next"), "href", value.Text("http://x/networks?marker=1")),
		),
	)
	testutil.RequireValueEqual(t, decoded, want, "server document")
}

func TestDecodeXMLCanonicalNames(t *testing.T) {
	md := testMetadata(t)
	tests := []struct {
		name     string
		document string
		wantKey  string
	}{
		{"no namespace", `<network><name>x</name></network>`, "name"},
		{"default namespace", `<network xmlns="http://openstack.org/quantum/api/v2.0"><name>x</name></network>`, "name"},
		{"extension namespace", `<network xmlns:p="http://docs.openstack.org/ext/provider/api/v1.0"><p:name>x</p:name></network>`, "provider:name"},
		{"undeclared prefix", `<network><vendor:name>x</vendor:name></network>`, "vendor:name"},
		{"unknown namespace", `<network xmlns:o="http://other/ns"><o:name>x</o:name></network>`, "{http://other/ns}name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeXML([]byte(tt.document), md)
			if err != nil {
				t.Fatalf("DecodeXML: %v", err)
			}
			network, ok := decoded.Get("network")
			if !ok {
				t.Fatalf("decoded %s has no network key", decoded)
			}
			if _, ok := network.Get(tt.wantKey); !ok {
				t.Errorf("network keys = %v, want %q", network.Keys(), tt.wantKey)
			}
		})
	}
}

func TestDecodeXMLUnknownRootNamespace(t *testing.T) {
	decoded, err := DecodeXML([]byte(`<network xmlns="http://other/ns"><name>x</name></network>`), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	if _, ok := decoded.Get("{http://other/ns}network"); !ok {
		t.Errorf("decoded keys = %v", decoded.Keys())
	}
}

func TestDecodeXMLBoolIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"false", false},
		{"yes", false},
		{"1", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			document := `<flag xmlns:quantum="http://openstack.org/quantum/api/v2.0" quantum:type="bool">` + tt.text + `</flag>`
			decoded, err := DecodeXML([]byte(document), nil)
			if err != nil {
				t.Fatalf("DecodeXML: %v", err)
			}
			testutil.RequireValueEqual(t, decoded, value.Object("flag", value.Bool(tt.want)), tt.text)
		})
	}
}

func TestDecodeXMLUnknownTypeIsText(t *testing.T) {
	document := `<v xmlns:quantum="http://openstack.org/quantum/api/v2.0" quantum:type="decimal">1.5</v>`
	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, value.Object("v", value.Text("1.5")), "unknown type attribute")
}

func TestDecodeXMLLinkWithoutHref(t *testing.T) {
	document := `<network xmlns:atom="http://www.w3.org/2005/Atom"><name>n</name><atom:link rel="self"/></network>`
	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	links, _ := decoded.Get("network_links")
	testutil.RequireValueEqual(t, links, value.Sequence(value.Object("rel", value.Text("self"))), "link without href")
}

func TestDecodeXMLNodeDoesNotModifyTree(t *testing.T) {
	root, err := xmltree.Parse([]byte(`<network xmlns:atom="http://www.w3.org/2005/Atom"><name>n</name><atom:link rel="self" href="h"/></network>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := DecodeXMLNode(root, nil); err != nil {
		t.Fatalf("DecodeXMLNode: %v", err)
	}
	if len(root.Children) != 2 {
		t.Errorf("tree has %d children after decoding, want 2", len(root.Children))
	}
}

func TestDecodeXMLMalformed(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty", ""},
		{"truncated", `<networks><network><name>a</name>`},
		{"mismatched", `<a><b></a></b>`},
		{"json", `{"network": {}}`},
		{"two roots", `<a/><b/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeXML([]byte(tt.document), nil)
			testutil.RequireErrorIs(t, err, ErrMalformedInput, tt.name)
			var decodeError *DecodeError
			if !errors.As(err, &decodeError) {
				t.Fatalf("error %T is not *DecodeError", err)
			}
			if decodeError.Format != FormatXML {
				t.Errorf("Format = %s, want xml", decodeError.Format)
			}
			var syntaxError *xmltree.SyntaxError
			if !errors.As(err, &syntaxError) {
				t.Errorf("underlying error %v is not *xmltree.SyntaxError", err)
			}
		})
	}
}

func TestDecodeXMLRepeatedChildIsAmbiguous(t *testing.T) {
	document := `<network><name>a</name><name>b</name></network>`
	_, err := DecodeXML([]byte(document), nil)
	testutil.RequireErrorIs(t, err, ErrAmbiguousStructure, "repeated child")

	var decodeError *DecodeError
	if !errors.As(err, &decodeError) {
		t.Fatalf("error %T is not *DecodeError", err)
	}
	if decodeError.Path != "network/name" {
		t.Errorf("Path = %q, want network/name", decodeError.Path)
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Error("ambiguous structure also matches ErrMalformedInput")
	}
}

func TestDecodeXMLRepeatedChildUnderPluralIsList(t *testing.T) {
	document := `<subnets><subnet>a</subnet><subnet>b</subnet></subnets>`
	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, value.Object("subnets", value.Sequence(value.Text("a"), value.Text("b"))), "plural")
}

func TestDecodeXMLDictMarkerOverridesPlural(t *testing.T) {
	document := `<quotas xmlns:quantum="` + TypeNamespace + `" quantum:type="dict">` +
		`<network quantum:type="int">10</network><port quantum:type="int">50</port></quotas>`
	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	want := value.Object("quotas", value.Object("network", value.Int(10), "port", value.Int(50)))
	testutil.RequireValueEqual(t, decoded, want, "dict marker on a plural tag")
}

func TestDecodeXMLBadNumber(t *testing.T) {
	tests := []struct {
		name     string
		wireType string
		text     string
	}{
		{"int word", "int", "abc"},
		{"int fraction", "int", "1.5"},
		{"long overflow", "long", "99999999999999999999"},
		{"float word", "float", "fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := `<network xmlns:quantum="http://openstack.org/quantum/api/v2.0"><ports><port><mtu quantum:type="` +
				tt.wireType + `">` + tt.text + `</mtu></port></ports></network>`
			_, err := DecodeXML([]byte(document), nil)
			testutil.RequireErrorIs(t, err, ErrAmbiguousStructure, tt.name)

			var decodeError *DecodeError
			if !errors.As(err, &decodeError) {
				t.Fatalf("error %T is not *DecodeError", err)
			}
			if decodeError.Path != "network/ports/port[0]/mtu" {
				t.Errorf("Path = %q", decodeError.Path)
			}
			var numError *strconv.NumError
			if !errors.As(err, &numError) {
				t.Errorf("error does not wrap *strconv.NumError: %v", err)
			}
		})
	}
}

func TestDecodeXMLNumberWhitespace(t *testing.T) {
	document := `<n xmlns:quantum="http://openstack.org/quantum/api/v2.0" quantum:type="int"> 42 </n>`
	decoded, err := DecodeXML([]byte(document), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, value.Object("n", value.Int(42)), "padded integer")
}

func TestWireType(t *testing.T) {
	for wireType := WireBool; wireType <= WireDict; wireType++ {
		parsed, ok := ParseWireType(wireType.String())
		if !ok || parsed != wireType {
			t.Errorf("ParseWireType(%q) = %v, %v", wireType.String(), parsed, ok)
		}
	}
	if _, ok := ParseWireType(""); ok {
		t.Error("empty string parsed as a wire type")
	}
	if _, ok := ParseWireType("string"); ok {
		t.Error("string parsed as a wire type")
	}
}
