// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/planscape/internal/cloudconfig"
	"github.com/hashicorp/planscape/internal/tfgraph"
)

// LabelResolutionError reports a node whose base label could not be
// located in the low-level graph, even after normalization. It means the
// plan and the graph disagree about resource identity, so edge resolution
// cannot continue.
type LabelResolutionError struct {
	NodeKey string
}

func (e *LabelResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q in the low-level dependency graph", e.NodeKey)
}

// ResolveEdges maps the low-level dependency edges onto the semantic node
// set, returning a new graph with the recovered edges. The low-level
// graph names resources by unqualified labels and integer ids, so each
// node key is first located in the label table (directly, then through
// normalization), and each edge's tail label is mapped back to a node key
// through an index of the keys' base forms.
//
// An edge whose tail cannot be attributed to exactly one node is dropped:
// over-connecting the graph misleads a reader more than under-connecting
// it. Drops are reported on the debug log.
func ResolveEdges(g *Graph, low *tfgraph.Graph, cfg *cloudconfig.Config, logger hclog.Logger) (*Graph, error) {
	ret := g.Copy()
	if low.Empty() {
		// No low-level graph was captured for this run: every node stays,
		// and relationship discovery is left to inference.
		return ret, nil
	}

	table := low.LabelTable()
	index := buildKeyIndex(ret.Nodes)

	for _, node := range ret.Nodes {
		base := strings.SplitN(node, "~", 2)[0]
		id, ok := table.ID(base)
		if !ok {
			id, ok = table.NormalizedID(base)
		}
		if !ok {
			return nil, &LabelResolutionError{NodeKey: node}
		}

		for _, edge := range low.Edges {
			if edge.Head != id {
				continue
			}
			tailLabel, ok := table.Label(edge.Tail)
			if !ok {
				continue
			}

			target := tailLabel
			if !ret.HasNode(target) {
				matches := index[tailLabel]
				switch len(matches) {
				case 1:
					target = matches[0]
				case 0:
					logger.Debug("edge source is not a known resource, skipping",
						"node", node,
						"label", tailLabel,
					)
					continue
				default:
					logger.Debug("ambiguous edge source, skipping",
						"node", node,
						"label", tailLabel,
						"candidates", len(matches),
					)
					continue
				}
			}

			// The low-level arrow points from the dependent resource to
			// its requirement. For most types the drawn edge keeps that
			// orientation; routing and association types read better
			// contained-by, so their arrows flip.
			if cfg.ReversedType(ResourceType(target)) {
				ret.AddEdge(target, node)
			} else {
				ret.AddEdge(node, target)
			}
		}
	}

	return ret, nil
}

// buildKeyIndex maps every base form of every node key to the keys that
// share it. A count instance "aws_subnet.a[0]~1" registers itself, its
// bare address "aws_subnet.a[0]" and the undecorated "aws_subnet.a"; a
// label equal to any of those forms resolves to the instance as long as
// no other instance claims the same form.
func buildKeyIndex(keys []string) map[string][]string {
	index := make(map[string][]string, len(keys))
	for _, key := range keys {
		for _, form := range baseForms(key) {
			index[form] = append(index[form], key)
		}
	}
	return index
}

func baseForms(key string) []string {
	forms := []string{key}

	base := strings.SplitN(key, "~", 2)[0]
	forms = appendForm(forms, base)

	// Peel trailing bracket groups one at a time: first the builder's
	// for_each suffix, then the exporter's own index decoration.
	trimmed := base
	for strings.HasSuffix(trimmed, "]") {
		idx := strings.LastIndexByte(trimmed, '[')
		if idx <= 0 {
			break
		}
		trimmed = trimmed[:idx]
		forms = appendForm(forms, trimmed)
	}

	return forms
}

func appendForm(forms []string, form string) []string {
	for _, existing := range forms {
		if existing == form {
			return forms
		}
	}
	return append(forms, form)
}
