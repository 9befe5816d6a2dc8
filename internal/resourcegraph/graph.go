// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package resourcegraph turns the flat list of resource changes from a
// plan into a semantic dependency graph suitable for rendering: one node
// per managed resource instance, edges recovered from the low-level
// dependency graph, and containment edges inferred from network ranges.
//
// The stages run strictly in sequence and each returns a fresh Graph
// value. Nothing here keeps state between runs, so a caller can hold on
// to any intermediate stage's output for inspection.
package resourcegraph

import (
	"strings"

	"github.com/hashicorp/planscape/internal/addrs"
)

// Graph is a semantic resource graph. Nodes holds the node keys in
// first-seen order; Edges is the adjacency mapping, which always carries
// every node key (possibly with an empty successor list); Metadata maps
// each node key to its flattened attribute object. Title is an optional
// display name carried into the emitted document.
type Graph struct {
	Title    string
	Nodes    []string
	Edges    map[string][]string
	Metadata map[string]map[string]interface{}
}

// NewGraph returns an empty graph ready to accept nodes.
func NewGraph() *Graph {
	return &Graph{
		Edges:    make(map[string][]string),
		Metadata: make(map[string]map[string]interface{}),
	}
}

// HasNode returns true if the given key is a node of this graph.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.Edges[key]
	return ok
}

// AddNode inserts a node with an empty successor list. A key that is
// already present keeps its first-seen position, successors and metadata.
func (g *Graph) AddNode(key string, meta map[string]interface{}) {
	if g.HasNode(key) {
		return
	}
	g.Nodes = append(g.Nodes, key)
	g.Edges[key] = []string{}
	if meta != nil {
		g.Metadata[key] = meta
	}
}

// AddEdge appends an edge from one existing node to another. Self-edges
// and exact duplicates are dropped; endpoints that are not already nodes
// are never created here.
func (g *Graph) AddEdge(from, to string) {
	if from == to {
		return
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return
	}
	for _, existing := range g.Edges[from] {
		if existing == to {
			return
		}
	}
	g.Edges[from] = append(g.Edges[from], to)
}

// RemoveEdge drops the edge between the two nodes, if present.
func (g *Graph) RemoveEdge(from, to string) {
	succs, ok := g.Edges[from]
	if !ok {
		return
	}
	for i, existing := range succs {
		if existing == to {
			g.Edges[from] = append(succs[:i], succs[i+1:]...)
			return
		}
	}
}

// RemoveNode drops a node along with its metadata, its adjacency row and
// every edge pointing at it.
func (g *Graph) RemoveNode(key string) {
	if !g.HasNode(key) {
		return
	}
	for i, existing := range g.Nodes {
		if existing == key {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			break
		}
	}
	delete(g.Edges, key)
	delete(g.Metadata, key)
	for from := range g.Edges {
		g.RemoveEdge(from, key)
	}
}

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, succs := range g.Edges {
		n += len(succs)
	}
	return n
}

// Copy returns a deep copy of the graph, so that a stage can extend the
// result without mutating its input.
func (g *Graph) Copy() *Graph {
	ret := &Graph{
		Title:    g.Title,
		Nodes:    make([]string, len(g.Nodes)),
		Edges:    make(map[string][]string, len(g.Edges)),
		Metadata: make(map[string]map[string]interface{}, len(g.Metadata)),
	}
	copy(ret.Nodes, g.Nodes)
	for key, succs := range g.Edges {
		ret.Edges[key] = append([]string{}, succs...)
	}
	for key, meta := range g.Metadata {
		m := make(map[string]interface{}, len(meta))
		for k, v := range meta {
			m[k] = v
		}
		ret.Metadata[key] = m
	}
	return ret
}

// ResourceType returns the resource type a node key refers to, looking
// through module qualifiers and both instance suffix styles. Keys that do
// not parse as resource addresses yield "".
func ResourceType(key string) string {
	res, err := nodeResource(key)
	if err != nil {
		return ""
	}
	return res.Resource.Type
}

// nodeResource parses the resource address a node key was built from.
func nodeResource(key string) (addrs.AbsResource, error) {
	base := strings.SplitN(key, "~", 2)[0]
	// A builder-applied for_each suffix sits after the exporter's own
	// decoration; both are bracketed, so trim bracket groups from the end.
	for {
		if idx := strings.LastIndexByte(base, '['); idx > 0 && strings.HasSuffix(base, "]") {
			base = base[:idx]
			continue
		}
		break
	}
	return addrs.ParseAbsResourceStr(base)
}
