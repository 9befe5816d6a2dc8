// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package addrs

import (
	"encoding/json"
	"fmt"
)

// InstanceKey represents the key of an instance within an object that
// contains multiple instances due to using "count" or "for_each" arguments
// in configuration.
//
// IntKey and StringKey are the two implementations of this type. No other
// implementations are allowed. The single instance of an object that _isn't_
// using "count" or "for_each" is represented by NoKey, which is a nil
// InstanceKey.
type InstanceKey interface {
	instanceKeySigil()
	String() string
}

// NoKey represents the absence of an InstanceKey, for the single instance
// of a configuration object that does not use "count" or "for_each" at all.
var NoKey InstanceKey

// IntKey is the InstanceKey representation representing integer indices, as
// used when the "count" argument is used to create multiple instances.
type IntKey int

func (k IntKey) instanceKeySigil() {
}

func (k IntKey) String() string {
	return fmt.Sprintf("[%d]", int(k))
}

// StringKey is the InstanceKey representation representing string indices,
// as used when the "for_each" argument is used to create multiple instances.
type StringKey string

func (k StringKey) instanceKeySigil() {
}

func (k StringKey) String() string {
	return fmt.Sprintf("[%q]", string(k))
}

// InstanceKeyFromJSON maps an index value as decoded from a JSON plan or
// state document to an InstanceKey. JSON numbers arrive as float64 or
// json.Number depending on decoder configuration; strings map to StringKey
// and an absent (nil) value maps to NoKey.
func InstanceKeyFromJSON(raw interface{}) (InstanceKey, error) {
	switch tv := raw.(type) {
	case nil:
		return NoKey, nil
	case string:
		return StringKey(tv), nil
	case float64:
		return IntKey(int(tv)), nil
	case json.Number:
		n, err := tv.Int64()
		if err != nil {
			return NoKey, fmt.Errorf("instance key %q is not an integer", tv)
		}
		return IntKey(int(n)), nil
	default:
		return NoKey, fmt.Errorf("invalid instance key of type %T", raw)
	}
}
