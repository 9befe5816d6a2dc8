// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"net"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/planscape/internal/cloudconfig"
)

// InferImplied adds containment edges that the dependency graph cannot
// see. Some pairs of resource types are related by address space rather
// than by reference: a subnet belongs to whichever network its range
// falls inside, even when neither configuration mentions the other. For
// each containment rule, every container node whose address attribute
// overlaps a member node's gains an edge to that member.
//
// Inference only ever adds edges. Existing edges, including explicit
// ones between the same pair, are left alone.
func InferImplied(g *Graph, cfg *cloudconfig.Config, logger hclog.Logger) *Graph {
	ret := g.Copy()

	for _, rule := range cfg.ContainmentRules {
		for _, container := range ret.Nodes {
			if ResourceType(container) != rule.ContainerType {
				continue
			}
			containerNets := nodeNetworks(ret, container, rule.ContainerAttr, logger)
			if len(containerNets) == 0 {
				continue
			}
			for _, member := range ret.Nodes {
				if ResourceType(member) != rule.MemberType {
					continue
				}
				memberNets := nodeNetworks(ret, member, rule.MemberAttr, logger)
				if networksOverlap(containerNets, memberNets) {
					ret.AddEdge(container, member)
				}
			}
		}
	}

	return ret
}

// nodeNetworks reads a node's address-range attribute and parses it into
// networks. The attribute may hold a single CIDR string or a list of
// them; anything else, and any string that does not parse, is skipped
// with a debug note. Planned-but-unknown ranges surface here as
// non-string placeholders, which is expected and not an error.
func nodeNetworks(g *Graph, key, attr string, logger hclog.Logger) []*net.IPNet {
	raw, ok := g.Metadata[key][attr]
	if !ok {
		return nil
	}

	var candidates []string
	switch v := raw.(type) {
	case string:
		candidates = []string{v}
	case []interface{}:
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				logger.Debug("address range element is not a string, skipping",
					"node", key,
					"attribute", attr,
				)
				continue
			}
			candidates = append(candidates, s)
		}
	default:
		logger.Debug("address range attribute is not a string or list, skipping",
			"node", key,
			"attribute", attr,
		)
		return nil
	}

	var nets []*net.IPNet
	for _, s := range candidates {
		_, network, err := net.ParseCIDR(s)
		if err != nil {
			logger.Debug("unparsable address range, skipping",
				"node", key,
				"attribute", attr,
				"value", s,
			)
			continue
		}
		nets = append(nets, network)
	}
	return nets
}

// networksOverlap reports whether any pair of networks drawn from the
// two sets overlaps, where overlap means either network contains the
// first address of the other.
func networksOverlap(a, b []*net.IPNet) bool {
	for _, an := range a {
		aFirst, _ := cidr.AddressRange(an)
		for _, bn := range b {
			bFirst, _ := cidr.AddressRange(bn)
			if an.Contains(bFirst) || bn.Contains(aFirst) {
				return true
			}
		}
	}
	return false
}
