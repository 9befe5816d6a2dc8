// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arguments

import (
	"github.com/hashicorp/planscape/internal/tfdiags"
)

// Graph represents the command-line arguments for the graph command.
type Graph struct {
	// PlanPath is the path to a plan export in JSON format. Exactly one of
	// PlanPath and StatePath must be set.
	PlanPath string

	// StatePath is the path to a raw state snapshot, for when no plan
	// export is available.
	StatePath string

	// GraphPath is an optional path to a low-level dependency graph in
	// xdot JSON format, used to resolve dependency edges.
	GraphPath string

	// AnnotationsPath is an optional path to an annotations file applied
	// to the graph after it is built.
	AnnotationsPath string

	// OutPath is an optional path to write the graph document to, instead
	// of rendering it through the view.
	OutPath string

	// Compact requests the document without indentation.
	Compact bool

	// ViewType specifies which output format to use: human or JSON.
	ViewType ViewType
}

// ParseGraph processes CLI arguments, returning a Graph value and errors.
// If errors are encountered, a Graph value is still returned representing
// the best effort interpretation of the arguments.
func ParseGraph(args []string) (*Graph, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics
	graph := &Graph{}

	cmdFlags := defaultFlagSet("graph")
	cmdFlags.StringVar(&graph.PlanPath, "plan", "", "plan")
	cmdFlags.StringVar(&graph.StatePath, "state", "", "state")
	cmdFlags.StringVar(&graph.GraphPath, "graph", "", "graph")
	cmdFlags.StringVar(&graph.AnnotationsPath, "annotations", "", "annotations")
	cmdFlags.StringVar(&graph.OutPath, "out", "", "out")
	cmdFlags.BoolVar(&graph.Compact, "compact", false, "compact")

	var json bool
	cmdFlags.BoolVar(&json, "json", false, "json")

	if err := cmdFlags.Parse(args); err != nil {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Failed to parse command-line flags",
			err.Error(),
		))
	}

	args = cmdFlags.Args()
	if len(args) > 0 {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Too many command line arguments",
			"The graph command expects no positional arguments.",
		))
	}

	switch {
	case graph.PlanPath == "" && graph.StatePath == "":
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Required argument missing",
			"Exactly one of -plan or -state must be given.",
		))
	case graph.PlanPath != "" && graph.StatePath != "":
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Invalid arguments",
			"The -plan and -state arguments are mutually exclusive.",
		))
	}

	switch {
	case json:
		graph.ViewType = ViewJSON
	default:
		graph.ViewType = ViewHuman
	}

	return graph, diags
}
