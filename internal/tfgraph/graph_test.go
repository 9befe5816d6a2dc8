// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package tfgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testGraphJSON = `
{
  "name": "G",
  "directed": true,
  "objects": [
    {"_gvid": 0, "name": "aws_vpc.main", "label": "aws_vpc.main"},
    {"_gvid": 1, "name": "aws_subnet.private", "label": "aws_subnet.private"},
    {"_gvid": 2, "name": "aws_instance.web", "label": "aws_instance.web"}
  ],
  "edges": [
    {"_gvid": 0, "tail": 1, "head": 0},
    {"_gvid": 1, "tail": 2, "head": 1}
  ]
}
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(testGraphJSON))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := &Graph{
		Objects: []Object{
			{GVID: 0, Name: "aws_vpc.main", Label: "aws_vpc.main"},
			{GVID: 1, Name: "aws_subnet.private", Label: "aws_subnet.private"},
			{GVID: 2, Name: "aws_instance.web", Label: "aws_instance.web"},
		},
		Edges: []Edge{
			{GVID: 0, Tail: 1, Head: 0},
			{GVID: 1, Tail: 2, Head: 1},
		},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("wrong result\n%s", diff)
	}
	if g.Empty() {
		t.Error("graph reported empty; want non-empty")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"objects": "nope"}`)); err == nil {
		t.Error("succeeded; want error")
	}
}

func TestEmpty(t *testing.T) {
	var nilGraph *Graph
	if !nilGraph.Empty() {
		t.Error("nil graph reported non-empty")
	}
	if !(&Graph{}).Empty() {
		t.Error("zero graph reported non-empty")
	}
}

func TestLabelTable(t *testing.T) {
	g, err := Parse([]byte(testGraphJSON))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	table := g.LabelTable()

	if id, ok := table.ID("aws_subnet.private"); !ok || id != 1 {
		t.Errorf("ID(aws_subnet.private) = %d, %v; want 1, true", id, ok)
	}
	if _, ok := table.ID("aws_subnet.private[0]"); ok {
		t.Error("exact lookup matched a decorated key; want miss")
	}
	if id, ok := table.NormalizedID("aws_subnet.private[0]"); !ok || id != 1 {
		t.Errorf("NormalizedID(aws_subnet.private[0]) = %d, %v; want 1, true", id, ok)
	}
	if _, ok := table.NormalizedID("aws_eip.nat"); ok {
		t.Error("normalized lookup matched an absent resource; want miss")
	}
	if label, ok := table.Label(2); !ok || label != "aws_instance.web" {
		t.Errorf("Label(2) = %q, %v; want aws_instance.web, true", label, ok)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"aws_vpc.main":                "aws_vpc.main",
		"aws_subnet.private[0]":       "aws_subnet.private",
		`aws_subnet.private["a"]`:     "aws_subnet.private",
		"aws_instance.web3":           "aws_instance.web",
		"module.net[0].aws_vpc.main":  "module.net.aws_vpc.main",
		`aws_route53_record.www["x"]`: "aws_route_record.www",
	}

	for input, want := range tests {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q; want %q", input, got, want)
		}
	}
}
