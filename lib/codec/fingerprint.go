// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/netcodec/lib/value"
)

// Fingerprint is a 32-byte BLAKE3 digest of a value's snapshot.
type Fingerprint [32]byte

// fingerprintDomainKey is the ASCII domain name zero-padded to 32
// bytes. Changing it changes every fingerprint.
var fingerprintDomainKey = [32]byte{
	'n', 'e', 't', 'c', 'o', 'd', 'e', 'c', '.', 'v', 'a', 'l', 'u', 'e', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0, 0,
}

// FingerprintOf hashes the deterministic snapshot of v. Equal values
// with the same integer widths have the same fingerprint.
func FingerprintOf(v value.Value) (Fingerprint, error) {
	snapshot, err := MarshalSnapshot(v)
	if err != nil {
		return Fingerprint{}, err
	}
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("codec: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(snapshot)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint, nil
}

// String returns the lowercase hex encoding.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters, for display.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}
