// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/planscape/internal/cloudconfig"
	"github.com/hashicorp/planscape/internal/planjson"
	"github.com/hashicorp/planscape/internal/tfgraph"
)

// Build runs the whole pipeline: nodes from the plan's resource changes,
// dependency edges recovered from the low-level graph when one was
// captured, implied containment edges, and a final check that the result
// covers a supported provider.
//
// A nil or empty low-level graph is not an error. Edge resolution is
// skipped and the graph's relationships come from inference alone.
func Build(changes []planjson.ResourceChange, low *tfgraph.Graph, cfg *cloudconfig.Config, logger hclog.Logger) (*Graph, error) {
	g, err := BuildNodes(changes)
	if err != nil {
		return nil, err
	}
	logger.Debug("built resource nodes", "count", len(g.Nodes))

	if !low.Empty() {
		g, err = ResolveEdges(g, low, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Debug("resolved dependency edges", "count", g.EdgeCount())
	} else {
		logger.Debug("no low-level graph given, skipping edge resolution")
	}

	g = InferImplied(g, cfg, logger)
	logger.Debug("inferred implied relations", "edges", g.EdgeCount())

	if err := Validate(g, cfg); err != nil {
		return nil, err
	}
	return g, nil
}
