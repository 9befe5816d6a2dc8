// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/planscape/internal/annotations"
	"github.com/hashicorp/planscape/internal/cloudconfig"
	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/command/views"
	"github.com/hashicorp/planscape/internal/logging"
	"github.com/hashicorp/planscape/internal/planjson"
	"github.com/hashicorp/planscape/internal/resourcegraph"
	"github.com/hashicorp/planscape/internal/tfdiags"
	"github.com/hashicorp/planscape/internal/tfgraph"
)

// GraphCommand is a Command implementation that builds the semantic
// resource graph for a plan and renders it or writes it to a file.
type GraphCommand struct {
	Meta
}

func (c *GraphCommand) Run(rawArgs []string) int {
	// Parse and apply global view arguments
	common, rawArgs := arguments.ParseView(rawArgs)
	c.View.Configure(common)

	// Parse and validate flags
	args, diags := arguments.ParseGraph(rawArgs)
	if diags.HasErrors() {
		c.View.Diagnostics(diags)
		c.View.HelpPrompt("graph")
		return 1
	}

	// Set up view
	view := views.NewGraph(args.ViewType, c.View)

	graph, moreDiags := c.buildGraph(args)
	diags = diags.Append(moreDiags)
	if moreDiags.HasErrors() {
		view.Diagnostics(diags)
		return 1
	}

	var document []byte
	var err error
	if args.Compact {
		document, err = resourcegraph.MarshalCompact(graph)
	} else {
		document, err = resourcegraph.Marshal(graph)
	}
	if err != nil {
		diags = diags.Append(err)
		view.Diagnostics(diags)
		return 1
	}

	if args.OutPath != "" {
		if err := os.WriteFile(args.OutPath, document, 0644); err != nil {
			diags = diags.Append(fmt.Errorf("cannot write the graph document: %w", err))
			view.Diagnostics(diags)
			return 1
		}
		view.Diagnostics(diags)
		return view.Saved(graph, args.OutPath)
	}

	view.Diagnostics(diags)
	return view.Display(graph, document)
}

// buildGraph runs the pipeline for the given arguments: load the plan,
// optionally load the low-level dependency graph, build the resource
// graph and apply annotations.
func (c *GraphCommand) buildGraph(args *arguments.Graph) (*resourcegraph.Graph, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics
	logger := logging.NewLogger("graph")

	path := args.PlanPath
	if path == "" {
		path = args.StatePath
	}

	loader := planjson.NewLoader()
	plan, err := loader.LoadChanges(path)
	if err != nil {
		diags = diags.Append(err)
		return nil, diags
	}

	var low *tfgraph.Graph
	if args.GraphPath != "" {
		low, err = loader.LoadGraph(args.GraphPath)
		if err != nil {
			diags = diags.Append(err)
			return nil, diags
		}
	}

	graph, err := resourcegraph.Build(plan.ResourceChanges, low, cloudconfig.Default(), logger)
	if err != nil {
		diags = diags.Append(err)
		return nil, diags
	}

	if args.AnnotationsPath != "" {
		file, moreDiags := annotations.Load(args.AnnotationsPath)
		diags = diags.Append(moreDiags)
		if moreDiags.HasErrors() {
			return nil, diags
		}
		graph = annotations.Apply(graph, file, logger)
	}

	return graph, diags
}

func (c *GraphCommand) Help() string {
	helpText := `
Usage: planscape [global options] graph [options]

  Builds the semantic resource graph for a Terraform plan: one node per
  resource, dependency edges recovered from the low-level graph when one
  is given, and containment edges inferred from overlapping address
  ranges. The graph is rendered as a summary or, with -json, as a JSON
  document.

Options:

  -plan=FILE          Path to a plan export in JSON format, as produced
                      by "terraform show -json PLANFILE". Exactly one of
                      -plan and -state is required.

  -state=FILE         Path to a raw state snapshot, for workflows that
                      keep no plan files.

  -graph=FILE         Path to the low-level dependency graph in xdot JSON
                      format, as produced by "terraform graph | dot
                      -Txdot_json".

  -annotations=FILE   Path to an annotations file with adjustments to
                      apply to the graph.

  -out=FILE           Write the JSON document to FILE instead of
                      rendering it.

  -compact            Produce the JSON document without indentation.

  -json               If specified, output the graph document in a
                      machine-readable form.

  -no-color           If specified, output won't contain any color.

`
	return strings.TrimSpace(helpText)
}

func (c *GraphCommand) Synopsis() string {
	return "Build the resource graph for a plan"
}
