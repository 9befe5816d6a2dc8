// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	"fmt"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/resourcegraph"
	"github.com/hashicorp/planscape/internal/tfdiags"
)

// Graph renders outputs from the graph command.
type Graph interface {
	// Display renders the resource graph. The document is the marshaled
	// form of the graph, for view types that emit it directly.
	Display(graph *resourcegraph.Graph, document []byte) int

	// Saved notes that the graph document was written to the given path
	// instead of being rendered.
	Saved(graph *resourcegraph.Graph, path string) int

	// Diagnostics renders early diagnostics, resulting from argument parsing.
	Diagnostics(diags tfdiags.Diagnostics)
}

func NewGraph(vt arguments.ViewType, view *View) Graph {
	switch vt {
	case arguments.ViewJSON:
		return &GraphJSON{view: view}
	case arguments.ViewHuman:
		return &GraphHuman{view: view}
	default:
		panic(fmt.Sprintf("unknown view type %v", vt))
	}
}

type GraphHuman struct {
	view *View
}

var _ Graph = (*GraphHuman)(nil)

func (v *GraphHuman) Display(graph *resourcegraph.Graph, document []byte) int {
	v.summary(graph)
	return 0
}

func (v *GraphHuman) Saved(graph *resourcegraph.Graph, path string) int {
	v.summary(graph)
	v.view.streams.Println(v.view.colorize.Color(fmt.Sprintf("\n[bold][green]Saved the graph to: %s[reset]", path)))
	return 0
}

// summary lists each resource with the resources that depend on it, then
// a per-module resource count.
func (v *GraphHuman) summary(graph *resourcegraph.Graph) {
	cs := v.view.colorize

	if graph.Title != "" {
		v.view.streams.Println(cs.Color(fmt.Sprintf("[bold]%s[reset]", graph.Title)))
		v.view.streams.Println()
	}

	for _, key := range graph.Nodes {
		v.view.streams.Println(cs.Color(fmt.Sprintf("[green]%s[reset]", key)))
		for _, dep := range graph.Edges[key] {
			v.view.streams.Printf("  - %s\n", dep)
		}
	}

	counts := map[string]int{}
	var order []string
	for _, key := range graph.Nodes {
		mod := "root module"
		if meta := graph.Metadata[key]; meta != nil {
			if name, ok := meta["module"].(string); ok && name != "" {
				mod = "module." + name
			}
		}
		if _, seen := counts[mod]; !seen {
			order = append(order, mod)
		}
		counts[mod]++
	}

	v.view.streams.Println()
	for _, mod := range order {
		v.view.streams.Println(cs.Color(fmt.Sprintf("[bold]%s[reset]: %s", mod, resourceCountLabel(counts[mod]))))
	}
	v.view.streams.Printf("Dependency edges: %d\n", graph.EdgeCount())
}

func (v *GraphHuman) Diagnostics(diags tfdiags.Diagnostics) {
	v.view.Diagnostics(diags)
}

type GraphJSON struct {
	view *View
}

var _ Graph = (*GraphJSON)(nil)

func (v *GraphJSON) Display(graph *resourcegraph.Graph, document []byte) int {
	v.view.streams.Println(string(document))
	return 0
}

func (v *GraphJSON) Saved(graph *resourcegraph.Graph, path string) int {
	return 0
}

func (v *GraphJSON) Diagnostics(diags tfdiags.Diagnostics) {
	v.view.Diagnostics(diags)
}

func resourceCountLabel(n int) string {
	if n == 1 {
		return "1 resource"
	}
	return fmt.Sprintf("%d resources", n)
}
