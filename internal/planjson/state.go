// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package planjson

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/planscape/internal/addrs"
)

// stateV4 is the subset of a raw state snapshot (version 4) that we can
// turn into resource changes. Raw snapshots predate the plan export format
// and carry no addresses, so those are synthesized here.
type stateV4 struct {
	Version          uint64            `json:"version"`
	TerraformVersion string            `json:"terraform_version,omitempty"`
	Resources        []resourceStateV4 `json:"resources"`
}

type resourceStateV4 struct {
	Module    string                  `json:"module,omitempty"`
	Mode      string                  `json:"mode"`
	Type      string                  `json:"type"`
	Name      string                  `json:"name"`
	Instances []instanceObjectStateV4 `json:"instances"`
}

type instanceObjectStateV4 struct {
	IndexKey   interface{}     `json:"index_key,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// ReadState decodes a raw state snapshot and synthesizes a Plan whose
// resource changes describe the recorded instances as-is: every change
// carries the no-op action and the instance attributes as its after
// object, with nothing unknown and nothing sensitive.
func ReadState(src []byte) (*Plan, error) {
	var state stateV4
	if err := json.Unmarshal(src, &state); err != nil {
		return nil, &MalformedPlanError{Problem: "invalid state snapshot", Cause: err}
	}
	if state.Version != 4 {
		return nil, &MalformedPlanError{
			Problem: fmt.Sprintf("unsupported state snapshot version %d; only version 4 is supported", state.Version),
		}
	}

	plan := &Plan{
		TerraformVersion: state.TerraformVersion,
	}

	for _, rs := range state.Resources {
		// Instances recorded without a mode are managed resources.
		rsMode := rs.Mode
		if rsMode == "" {
			rsMode = "managed"
		}
		mode := addrs.ManagedResourceMode
		if rsMode == "data" {
			mode = addrs.DataResourceMode
		}
		addr := addrs.AbsResource{
			Module: rs.Module,
			Resource: addrs.Resource{
				Mode: mode,
				Type: rs.Type,
				Name: rs.Name,
			},
		}

		for _, inst := range rs.Instances {
			attrs, err := attributeObject(inst.Attributes)
			if err != nil {
				return nil, &MalformedPlanError{
					Problem: fmt.Sprintf("invalid attributes for %s", addr.String()),
					Cause:   err,
				}
			}

			var index json.RawMessage
			if inst.IndexKey != nil {
				index, err = json.Marshal(inst.IndexKey)
				if err != nil {
					return nil, &MalformedPlanError{
						Problem: fmt.Sprintf("invalid index_key for %s", addr.String()),
						Cause:   err,
					}
				}
			}

			plan.ResourceChanges = append(plan.ResourceChanges, ResourceChange{
				Address:       addr.String(),
				ModuleAddress: rs.Module,
				Mode:          rsMode,
				Type:          rs.Type,
				Name:          rs.Name,
				Index:         index,
				Change: Change{
					Actions: []string{"no-op"},
					After:   attrs,
				},
			})
		}
	}

	return plan, nil
}
