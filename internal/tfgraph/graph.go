// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package tfgraph reads the low-level resource dependency graph that
// Terraform exports via "terraform graph", after conversion to graphviz's
// JSON form with "dot -Txdot_json".
//
// The document is a flat list of objects (nodes) carrying integer ids and
// display labels, plus a list of edges referring to those ids. Labels are
// unqualified resource addresses such as "aws_subnet.private[0]".
package tfgraph

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Graph is the decoded form of a dot -Txdot_json document. Only the fields
// relevant to dependency analysis are retained.
type Graph struct {
	Objects []Object `json:"objects"`
	Edges   []Edge   `json:"edges"`
}

// Object is a single graph node. GVID is the integer id that edges refer
// to; Label is the resource address the node was drawn with.
type Object struct {
	GVID  int    `json:"_gvid"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Edge is a directed edge between two object ids. Tail depends on Head in
// Terraform's orientation: the edge points from the dependent resource to
// the resource it requires.
type Edge struct {
	GVID int `json:"_gvid"`
	Tail int `json:"tail"`
	Head int `json:"head"`
}

// Parse decodes an xdot_json document.
func Parse(src []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(src, &g); err != nil {
		return nil, fmt.Errorf("invalid graph document: %w", err)
	}
	return &g, nil
}

// Empty returns true if the graph carries no objects and no edges, which
// is the canonical "no low-level graph available" placeholder.
func (g *Graph) Empty() bool {
	return g == nil || (len(g.Objects) == 0 && len(g.Edges) == 0)
}

// LabelTable builds an index over the graph's objects for label lookups
// during edge resolution.
func (g *Graph) LabelTable() *LabelTable {
	t := &LabelTable{
		objects: g.Objects,
		labels:  make(map[int]string, len(g.Objects)),
		ids:     make(map[string]int, len(g.Objects)),
	}
	for _, obj := range g.Objects {
		t.labels[obj.GVID] = obj.Label
		if _, exists := t.ids[obj.Label]; !exists {
			t.ids[obj.Label] = obj.GVID
		}
	}
	return t
}

// LabelTable indexes object labels by graphviz id and vice versa. When two
// objects share a label the earliest one wins.
type LabelTable struct {
	objects []Object
	labels  map[int]string
	ids     map[string]int
}

// Label returns the label recorded for the given object id.
func (t *LabelTable) Label(id int) (string, bool) {
	l, ok := t.labels[id]
	return l, ok
}

// ID returns the object id whose label exactly equals the given string.
func (t *LabelTable) ID(label string) (int, bool) {
	id, ok := t.ids[label]
	return id, ok
}

// NormalizedID returns the first object id whose normalized label equals
// the normalized form of the given string. This is the fallback for node
// keys that differ from their drawn label only by index decoration, e.g.
// "aws_subnet.private[0]" against a label of "aws_subnet.private".
func (t *LabelTable) NormalizedID(label string) (int, bool) {
	want := Normalize(label)
	for _, obj := range t.objects {
		if Normalize(obj.Label) == want {
			return obj.GVID, true
		}
	}
	return 0, false
}

var indexDecoration = regexp.MustCompile(`\[.*?\]|\d+`)

// Normalize strips bracketed index expressions and all digits from a label
// so that differently-indexed instances of the same resource compare equal.
func Normalize(label string) string {
	return indexDecoration.ReplaceAllString(label, "")
}
