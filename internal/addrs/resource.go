// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package addrs

import (
	"fmt"
	"strings"
)

// Resource is an address for a resource block within configuration, which
// contains potentially-multiple resource instances if that configuration
// block uses "count" or "for_each".
type Resource struct {
	Mode ResourceMode
	Type string
	Name string
}

func (r Resource) String() string {
	switch r.Mode {
	case ManagedResourceMode:
		return fmt.Sprintf("%s.%s", r.Type, r.Name)
	case DataResourceMode:
		return fmt.Sprintf("data.%s.%s", r.Type, r.Name)
	default:
		// Should never happen, but we'll return a string here rather than
		// crashing just in case it does.
		return fmt.Sprintf("<invalid>.%s.%s", r.Type, r.Name)
	}
}

// ResourceMode defines which lifecycle applies to a given resource. Each
// resource lifecycle has a slightly different address format.
type ResourceMode rune

const (
	// InvalidResourceMode is the zero value of ResourceMode and is not
	// a valid resource mode.
	InvalidResourceMode ResourceMode = 0

	// ManagedResourceMode indicates a managed resource, as defined by
	// "resource" blocks in configuration.
	ManagedResourceMode ResourceMode = 'M'

	// DataResourceMode indicates a data resource, as defined by
	// "data" blocks in configuration.
	DataResourceMode ResourceMode = 'D'
)

// AbsResource is an absolute address for a resource under a given module
// path. The module path is retained in its compact string form, e.g.
// "module.network.module.private", because callers in this codebase treat
// it as an opaque qualifier rather than walking its steps.
type AbsResource struct {
	Module   string
	Resource Resource
}

func (r AbsResource) String() string {
	if r.Module == "" {
		return r.Resource.String()
	}
	return r.Module + "." + r.Resource.String()
}

// ParseAbsResourceStr parses a dotted resource address such as
// "aws_vpc.main", "data.aws_ami.latest" or
// "module.network.aws_subnet.private". Instance keys are not part of this
// address form and cause an error if present on the final segment.
func ParseAbsResourceStr(str string) (AbsResource, error) {
	var ret AbsResource
	if str == "" {
		return ret, fmt.Errorf("empty resource address")
	}

	remain := str

	// Consume leading "module.<name>" pairs into the module path. Module
	// names may carry instance keys of their own ("module.net[0]"), which
	// we retain verbatim.
	for strings.HasPrefix(remain, "module.") {
		rest := remain[len("module."):]
		dot := strings.IndexByte(rest, '.')
		if dot < 0 {
			return ret, fmt.Errorf("address %q has a module path but no resource", str)
		}
		step := "module." + rest[:dot]
		if ret.Module == "" {
			ret.Module = step
		} else {
			ret.Module += "." + step
		}
		remain = rest[dot+1:]
	}

	mode := ManagedResourceMode
	if strings.HasPrefix(remain, "data.") {
		mode = DataResourceMode
		remain = remain[len("data."):]
	}

	dot := strings.IndexByte(remain, '.')
	if dot < 0 {
		return ret, fmt.Errorf("address %q must include a resource type and name", str)
	}
	resType, name := remain[:dot], remain[dot+1:]
	if resType == "" || name == "" {
		return ret, fmt.Errorf("address %q must include a resource type and name", str)
	}
	if strings.ContainsAny(name, ".") {
		return ret, fmt.Errorf("resource name in %q must not contain dots", str)
	}
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		return ret, fmt.Errorf("address %q must not include an instance key", str)
	}

	ret.Resource = Resource{
		Mode: mode,
		Type: resType,
		Name: name,
	}
	return ret, nil
}

// ModulePath returns the path portion of a module address with the leading
// "module." keyword removed, matching how plan readers expose the module a
// resource belongs to: "module.net" yields "net" and "module.net.module.app"
// yields "net.module.app". The root module (empty address) yields "".
func ModulePath(moduleAddr string) string {
	if rest, ok := strings.CutPrefix(moduleAddr, "module."); ok {
		return rest
	}
	return moduleAddr
}
