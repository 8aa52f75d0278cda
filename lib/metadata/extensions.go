// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/lib/value"
)

// ExtensionNamespacesFrom builds a prefix -> namespace table from a
// decoded "list extensions" response. The server describes each
// extension with an alias and the namespace URI of its XML elements:
//
//	{"extensions": [{"alias": "quotas", "namespace": "http://..."}]}
//
// The response may also be wrapped in the {"body": ...} envelope the
// codec's Deserialize returns. Entries without both a text alias and a
// text namespace are skipped; extensions predating XML support omit
// the namespace.
func ExtensionNamespacesFrom(response value.Value) (map[string]string, error) {
	if body, ok := response.Get("body"); ok {
		response = body
	}
	list, ok := response.Get("extensions")
	if !ok {
		return nil, fmt.Errorf("extension list: missing \"extensions\" key in %s response", response.Kind())
	}
	if list.Kind() != value.KindSequence {
		return nil, fmt.Errorf("extension list: \"extensions\" is %s, want sequence", list.Kind())
	}

	namespaces := make(map[string]string, list.Len())
	for _, extension := range list.Items() {
		aliasValue, _ := extension.Get("alias")
		namespaceValue, _ := extension.Get("namespace")
		alias, aliasOK := aliasValue.AsText()
		namespace, namespaceOK := namespaceValue.AsText()
		if !aliasOK || !namespaceOK || alias == "" || namespace == "" {
			continue
		}
		namespaces[alias] = namespace
	}
	return namespaces, nil
}
