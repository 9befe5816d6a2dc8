// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"encoding/json"

	"github.com/hashicorp/planscape/internal/addrs"
)

// FormatVersion is the version of the JSON document produced by Marshal.
// Consumers should reject documents with a greater major version.
const FormatVersion = "1.0"

type document struct {
	FormatVersion string                            `json:"format_version"`
	Title         string                            `json:"title,omitempty"`
	Nodes         []documentNode                    `json:"nodes"`
	Edges         map[string][]string               `json:"edges"`
	Metadata      map[string]map[string]interface{} `json:"metadata"`
}

type documentNode struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	Mode   string `json:"mode"`
	Module string `json:"module,omitempty"`
}

// Marshal renders the graph as an indented JSON document. Nodes keep
// their first-seen order; map keys are emitted sorted, so the same graph
// always marshals to the same bytes.
func Marshal(g *Graph) ([]byte, error) {
	doc := buildDocument(g)
	return json.MarshalIndent(&doc, "", "  ")
}

// MarshalCompact is Marshal without indentation, for piping into other
// tools.
func MarshalCompact(g *Graph) ([]byte, error) {
	doc := buildDocument(g)
	return json.Marshal(&doc)
}

func buildDocument(g *Graph) document {
	doc := document{
		FormatVersion: FormatVersion,
		Title:         g.Title,
		Nodes:         make([]documentNode, 0, len(g.Nodes)),
		Edges:         g.Edges,
		Metadata:      g.Metadata,
	}
	for _, key := range g.Nodes {
		node := documentNode{Key: key}
		if res, err := nodeResource(key); err == nil {
			node.Type = res.Resource.Type
			if res.Resource.Mode == addrs.DataResourceMode {
				node.Mode = "data"
			} else {
				node.Mode = "managed"
			}
		}
		if mod, ok := g.Metadata[key]["module"].(string); ok {
			node.Module = mod
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	return doc
}
