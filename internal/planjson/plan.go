// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package planjson reads the JSON documents that describe a Terraform run:
// the plan export produced by "terraform show -json" and, as a fallback for
// workflows that keep no plan files, the raw state snapshot format. Both
// are reduced to the same flat list of resource changes so that the graph
// builder has a single input shape.
package planjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	version "github.com/hashicorp/go-version"

	"github.com/hashicorp/planscape/internal/addrs"
)

// PlanFormatVersionConstraints describes the format_version values this
// reader accepts. The plan exporter increments the major version for
// breaking changes, so anything below 2.0 decodes with the fields we use.
const PlanFormatVersionConstraints = ">= 0.1, < 2.0"

// PlanFormatVersionCurrent is the newest format_version this reader was
// written against. Newer minor versions still decode.
const PlanFormatVersionCurrent = "1.2"

// Plan is the decoded form of a plan export document, reduced to the
// fields that graph construction consumes.
type Plan struct {
	FormatVersion    string           `json:"format_version,omitempty"`
	TerraformVersion string           `json:"terraform_version,omitempty"`
	ResourceChanges  []ResourceChange `json:"resource_changes,omitempty"`
}

// ResourceChange is a single entry of the plan's resource_changes list.
type ResourceChange struct {
	Address       string          `json:"address,omitempty"`
	ModuleAddress string          `json:"module_address,omitempty"`
	Mode          string          `json:"mode,omitempty"`
	Type          string          `json:"type,omitempty"`
	Name          string          `json:"name,omitempty"`
	Index         json.RawMessage `json:"index,omitempty"`
	ProviderName  string          `json:"provider_name,omitempty"`
	Change        Change          `json:"change"`
}

// InstanceKey returns the decoded index of this change: a StringKey for
// for_each instances, an IntKey for count instances, or NoKey when the
// resource has a single instance.
func (rc *ResourceChange) InstanceKey() (addrs.InstanceKey, error) {
	if len(rc.Index) == 0 {
		return addrs.NoKey, nil
	}
	var raw interface{}
	if err := json.Unmarshal(rc.Index, &raw); err != nil {
		return addrs.NoKey, fmt.Errorf("invalid index for %s: %w", rc.Address, err)
	}
	key, err := addrs.InstanceKeyFromJSON(raw)
	if err != nil {
		return addrs.NoKey, fmt.Errorf("invalid index for %s: %w", rc.Address, err)
	}
	return key, nil
}

// Change describes the planned change for one resource instance. Only the
// post-apply attribute layers are retained; graph construction does not
// consult the prior state.
type Change struct {
	Actions        []string
	After          map[string]interface{}
	AfterUnknown   map[string]interface{}
	AfterSensitive map[string]interface{}
}

func (c *Change) UnmarshalJSON(data []byte) error {
	var raw struct {
		Actions        []string        `json:"actions"`
		After          json.RawMessage `json:"after"`
		AfterUnknown   json.RawMessage `json:"after_unknown"`
		AfterSensitive json.RawMessage `json:"after_sensitive"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	c.Actions = raw.Actions
	if c.After, err = attributeObject(raw.After); err != nil {
		return fmt.Errorf("after: %w", err)
	}
	if c.AfterUnknown, err = attributeObject(raw.AfterUnknown); err != nil {
		return fmt.Errorf("after_unknown: %w", err)
	}
	if c.AfterSensitive, err = attributeObject(raw.AfterSensitive); err != nil {
		return fmt.Errorf("after_sensitive: %w", err)
	}
	return nil
}

// attributeObject decodes one attribute layer. The exporter writes null
// for absent objects and a bare boolean for wholly-sensitive or
// wholly-unknown ones; both decode as an empty layer here.
func attributeObject(raw json.RawMessage) (map[string]interface{}, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return nil, nil
	case bytes.Equal(raw, []byte("null")),
		bytes.Equal(raw, []byte("true")),
		bytes.Equal(raw, []byte("false")):
		return nil, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadPlan decodes a plan export document.
func ReadPlan(src []byte) (*Plan, error) {
	var probe struct {
		FormatVersion   string          `json:"format_version"`
		ResourceChanges json.RawMessage `json:"resource_changes"`
	}
	if err := json.Unmarshal(src, &probe); err != nil {
		return nil, &MalformedPlanError{Problem: "invalid JSON syntax", Cause: err}
	}

	if probe.FormatVersion != "" {
		if err := checkFormatVersion(probe.FormatVersion); err != nil {
			return nil, err
		}
	}

	if len(probe.ResourceChanges) == 0 || bytes.Equal(bytes.TrimSpace(probe.ResourceChanges), []byte("null")) {
		return nil, &MalformedPlanError{
			Problem: "document has no resource_changes list",
		}
	}

	var plan Plan
	if err := json.Unmarshal(src, &plan); err != nil {
		return nil, &MalformedPlanError{Problem: "invalid plan export", Cause: err}
	}
	return &plan, nil
}

// newerThanCurrent reports whether fv parses and postdates
// PlanFormatVersionCurrent.
func newerThanCurrent(fv string) bool {
	v, err := version.NewVersion(fv)
	if err != nil {
		return false
	}
	return v.GreaterThan(version.Must(version.NewVersion(PlanFormatVersionCurrent)))
}

func checkFormatVersion(fv string) error {
	v, err := version.NewVersion(fv)
	if err != nil {
		return &MalformedPlanError{
			Problem: fmt.Sprintf("unparseable format_version %q", fv),
			Cause:   err,
		}
	}
	constraints, err := version.NewConstraint(PlanFormatVersionConstraints)
	if err != nil {
		// Should never happen: the constraint string is a constant.
		return err
	}
	if !constraints.Check(v) {
		return fmt.Errorf("unsupported plan format version %q; this version of planscape supports %q", fv, PlanFormatVersionConstraints)
	}
	return nil
}

// MalformedPlanError indicates that an input document could not be
// understood in any of the accepted plan or state forms.
type MalformedPlanError struct {
	Problem string
	Cause   error
}

func (e *MalformedPlanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed plan: %s: %s", e.Problem, e.Cause)
	}
	return fmt.Sprintf("malformed plan: %s", e.Problem)
}

func (e *MalformedPlanError) Unwrap() error {
	return e.Cause
}
