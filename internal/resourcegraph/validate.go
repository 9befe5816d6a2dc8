// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"fmt"
	"strings"

	"github.com/hashicorp/planscape/internal/cloudconfig"
)

// EmptyDomainError means the graph holds nothing from any supported
// provider, so downstream consumers would produce an empty result. The
// usual causes are a plan for an unsupported cloud or a plan that only
// touches data sources and local resources.
type EmptyDomainError struct {
	Prefixes []string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf(
		"plan contains no resources from a supported provider (expected resource types prefixed with one of: %s)",
		strings.Join(e.Prefixes, ", "),
	)
}

// Validate checks that at least one node belongs to a supported
// provider, returning an EmptyDomainError otherwise. It runs after the
// other stages so that the caller fails before presenting a graph with
// nothing in it.
func Validate(g *Graph, cfg *cloudconfig.Config) error {
	for _, node := range g.Nodes {
		if cfg.SupportedType(ResourceType(node)) {
			return nil
		}
	}
	return &EmptyDomainError{Prefixes: cfg.ProviderPrefixes}
}
