// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"fmt"

	"github.com/hashicorp/planscape/internal/addrs"
	"github.com/hashicorp/planscape/internal/planjson"
)

// BuildNodes constructs the initial graph from a plan's resource changes:
// every managed resource instance becomes a node with an empty successor
// list and a flattened attribute object. Data resources never become
// nodes. Node order follows first appearance in the change list, with
// duplicate keys collapsed to their first occurrence.
func BuildNodes(changes []planjson.ResourceChange) (*Graph, error) {
	g := NewGraph()

	for i := range changes {
		rc := &changes[i]
		if rc.Mode != "managed" {
			continue
		}

		key, err := nodeKey(rc)
		if err != nil {
			return nil, err
		}
		g.AddNode(key, flattenAttributes(rc))
	}

	return g, nil
}

// nodeKey derives the graph key for a resource change. Instanced
// resources get a per-instance suffix: for_each keys in brackets, count
// indices as a 1-based ordinal behind a tilde. The tilde form survives a
// later split when edge resolution needs the bare address back, which is
// why count instances do not reuse the bracket form.
func nodeKey(rc *planjson.ResourceChange) (string, error) {
	key, err := rc.InstanceKey()
	if err != nil {
		return "", err
	}
	switch k := key.(type) {
	case addrs.IntKey:
		return fmt.Sprintf("%s~%d", rc.Address, int(k)+1), nil
	case addrs.StringKey:
		return fmt.Sprintf("%s[%s]", rc.Address, string(k)), nil
	default:
		return rc.Address, nil
	}
}

// flattenAttributes merges the change's attribute layers into one object.
// Later layers win: a value that is unknown at plan time surfaces as its
// placeholder rather than a stale known value, and sensitivity markers
// override both.
func flattenAttributes(rc *planjson.ResourceChange) map[string]interface{} {
	merged := make(map[string]interface{})
	for _, layer := range []map[string]interface{}{
		rc.Change.After,
		rc.Change.AfterUnknown,
		rc.Change.AfterSensitive,
	} {
		for k, v := range layer {
			merged[k] = v
		}
	}

	if rc.ModuleAddress != "" {
		merged["module"] = addrs.ModulePath(rc.ModuleAddress)
	}

	return merged
}
