// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/bureau-foundation/netcodec/lib/testutil"
	"github.com/bureau-foundation/netcodec/lib/value"
)

func sampleNetwork() value.Value {
	return value.Object("network", value.Object(
		"name", value.Text("net1"),
		"admin_state_up", value.Bool(true),
		"mtu", value.Int(1500),
		"bytes", value.Long(-3),
		"ratio", value.Float(0.5),
		"whole", value.Float(2),
		"gateway", value.Null(),
		"subnets", value.Sequence(value.Text("a"), value.Sequence()),
		"opts", value.Mapping(nil),
	))
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleNetwork()
	data, err := MarshalSnapshot(original)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	decoded, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, original, "snapshot round trip")

	network, _ := decoded.Get("network")
	long, _ := network.Get("bytes")
	if !long.IsLong() {
		t.Errorf("bytes = %s, want long", long)
	}
	mtu, _ := network.Get("mtu")
	if mtu.IsLong() {
		t.Errorf("mtu = %s, want int", mtu)
	}
	whole, _ := network.Get("whole")
	if whole.Kind() != value.KindFloat {
		t.Errorf("whole = %s, want float", whole)
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	first, err := MarshalSnapshot(sampleNetwork())
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	for range 20 {
		again, err := MarshalSnapshot(sampleNetwork())
		if err != nil {
			t.Fatalf("MarshalSnapshot: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("snapshot not deterministic:\n%x\n%x", first, again)
		}
	}
}

func TestSnapshotNonFiniteFloats(t *testing.T) {
	original := value.Sequence(value.Float(math.NaN()), value.Float(math.Inf(1)))
	data, err := MarshalSnapshot(original)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	decoded, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	testutil.RequireValueEqual(t, decoded, original, "non-finite floats")
}

func TestUnmarshalSnapshotRejectsForeignData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", []byte{0xa1}},
		{"byte string", []byte{0x41, 0x00}},
		{"unknown tag", []byte{0xc1, 0x01}},
		{"integer key", []byte{0xa1, 0x01, 0x02}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalSnapshot(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDiagnoseShowsLongTag(t *testing.T) {
	data, err := MarshalSnapshot(value.Object("count", value.Long(5)))
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, "1668182380(5)") {
		t.Errorf("Diagnose = %s", diagnostic)
	}
}

func TestFingerprint(t *testing.T) {
	first, err := FingerprintOf(sampleNetwork())
	if err != nil {
		t.Fatalf("FingerprintOf: %v", err)
	}
	second, err := FingerprintOf(sampleNetwork())
	if err != nil {
		t.Fatalf("FingerprintOf: %v", err)
	}
	if first != second {
		t.Errorf("equal values have different fingerprints: %s %s", first, second)
	}
	if len(first.String()) != 64 || len(first.Short()) != 12 {
		t.Errorf("String = %q, Short = %q", first.String(), first.Short())
	}

	differentWidth, _ := FingerprintOf(value.Object("n", value.Long(1)))
	narrow, _ := FingerprintOf(value.Object("n", value.Int(1)))
	if differentWidth == narrow {
		t.Error("int and long share a fingerprint")
	}

	floatOne, _ := FingerprintOf(value.Float(1))
	intOne, _ := FingerprintOf(value.Int(1))
	if floatOne == intOne {
		t.Error("float and int share a fingerprint")
	}
}

func TestFingerprintSurvivesXMLRoundTrip(t *testing.T) {
	original := sampleNetwork()
	decoded, err := DecodeXML(MarshalXML(original, nil), nil)
	if err != nil {
		t.Fatalf("DecodeXML: %v", err)
	}
	before, _ := FingerprintOf(original)
	after, _ := FingerprintOf(decoded)
	if before != after {
		t.Errorf("fingerprint changed across XML round trip: %s -> %s", before.Short(), after.Short())
	}
}
