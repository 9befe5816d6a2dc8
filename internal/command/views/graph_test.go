// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/resourcegraph"
	"github.com/hashicorp/planscape/internal/terminal"
	"github.com/hashicorp/planscape/internal/tfdiags"
)

func testResourceGraph() *resourcegraph.Graph {
	g := resourcegraph.NewGraph()
	g.AddNode("aws_vpc.main", nil)
	g.AddNode("aws_subnet.public", nil)
	g.AddNode("module.net.aws_subnet.inner", map[string]interface{}{"module": "net"})
	g.AddEdge("aws_vpc.main", "aws_subnet.public")
	return g
}

func TestGraphHuman(t *testing.T) {
	streams, done := terminal.StreamsForTesting(t)
	view := NewView(streams)
	view.Configure(&arguments.View{NoColor: true})
	v := NewGraph(arguments.ViewHuman, view)

	g := testResourceGraph()
	g.Title = "test fixture"

	code := v.Display(g, nil)
	if code != 0 {
		t.Errorf("expected 0 return code, got %d", code)
	}

	got := done(t).Stdout()
	for _, want := range []string{
		"test fixture",
		"aws_vpc.main\n  - aws_subnet.public\n",
		"root module: 2 resources",
		"module.net: 1 resource",
		"Dependency edges: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in output:\n%s", want, got)
		}
	}
}

func TestGraphHumanSaved(t *testing.T) {
	streams, done := terminal.StreamsForTesting(t)
	view := NewView(streams)
	view.Configure(&arguments.View{NoColor: true})
	v := NewGraph(arguments.ViewHuman, view)

	code := v.Saved(testResourceGraph(), "graph.json")
	if code != 0 {
		t.Errorf("expected 0 return code, got %d", code)
	}

	got := done(t).Stdout()
	if !strings.Contains(got, "Saved the graph to: graph.json") {
		t.Errorf("missing saved message in output:\n%s", got)
	}
}

func TestGraphJSON(t *testing.T) {
	streams, done := terminal.StreamsForTesting(t)
	view := NewView(streams)
	v := NewGraph(arguments.ViewJSON, view)

	g := testResourceGraph()
	document, err := resourcegraph.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}

	code := v.Display(g, document)
	if code != 0 {
		t.Errorf("expected 0 return code, got %d", code)
	}

	got := done(t).Stdout()
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %s\n%s", err, got)
	}
	if doc["format_version"] != "1.0" {
		t.Errorf("wrong format_version: %v", doc["format_version"])
	}
}

func TestGraphJSONSaved(t *testing.T) {
	streams, done := terminal.StreamsForTesting(t)
	view := NewView(streams)
	v := NewGraph(arguments.ViewJSON, view)

	code := v.Saved(testResourceGraph(), "graph.json")
	if code != 0 {
		t.Errorf("expected 0 return code, got %d", code)
	}

	if got := done(t).All(); got != "" {
		t.Errorf("expected no output, got:\n%s", got)
	}
}

func TestGraphDiagnostics(t *testing.T) {
	streams, done := terminal.StreamsForTesting(t)
	view := NewView(streams)
	view.Configure(&arguments.View{NoColor: true})
	v := NewGraph(arguments.ViewHuman, view)

	var diags tfdiags.Diagnostics
	diags = diags.Append(tfdiags.Sourceless(
		tfdiags.Error,
		"Something went wrong",
		"A longer explanation.",
	))
	v.Diagnostics(diags)

	got := done(t).Stderr()
	want := "Error: Something went wrong\n\nA longer explanation.\n\n"
	if got != want {
		t.Errorf("unexpected output\ngot: %q\nwant: %q", got, want)
	}
}
