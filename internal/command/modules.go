// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"strings"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/command/views"
	"github.com/hashicorp/planscape/internal/planjson"
)

// ModulesCommand is a Command implementation that lists the modules
// observed in a plan together with the resources they declare.
type ModulesCommand struct {
	Meta
}

func (c *ModulesCommand) Run(rawArgs []string) int {
	// Parse and apply global view arguments
	common, rawArgs := arguments.ParseView(rawArgs)
	c.View.Configure(common)

	// Parse and validate flags
	args, diags := arguments.ParseModules(rawArgs)
	if diags.HasErrors() {
		c.View.Diagnostics(diags)
		c.View.HelpPrompt("modules")
		return 1
	}

	// Set up view
	view := views.NewModules(args.ViewType, c.View)

	plan, err := planjson.NewLoader().LoadChanges(args.PlanPath)
	if err != nil {
		diags = diags.Append(err)
		view.Diagnostics(diags)
		return 1
	}

	return view.Display(moduleRecords(plan))
}

// moduleRecords groups the plan's resource changes by module address, in
// first-seen order. Resource addresses are relative to their module.
func moduleRecords(plan *planjson.Plan) []views.ModuleRecord {
	index := map[string]int{}
	var records []views.ModuleRecord
	for _, rc := range plan.ResourceChanges {
		i, ok := index[rc.ModuleAddress]
		if !ok {
			i = len(records)
			index[rc.ModuleAddress] = i
			records = append(records, views.ModuleRecord{Address: rc.ModuleAddress})
		}
		addr := rc.Address
		if rc.ModuleAddress != "" {
			addr = strings.TrimPrefix(addr, rc.ModuleAddress+".")
		}
		records[i].Resources = append(records[i].Resources, addr)
	}
	return records
}

func (c *ModulesCommand) Help() string {
	helpText := `
Usage: planscape [global options] modules [options]

  Lists the module tree observed in a plan, with the resources each
  module declares.

Options:

  -plan=FILE          Path to a plan export in JSON format, or to a raw
                      state snapshot. Required.

  -json               If specified, output the module list in a
                      machine-readable form.

  -no-color           If specified, output won't contain any color.

`
	return strings.TrimSpace(helpText)
}

func (c *ModulesCommand) Synopsis() string {
	return "List the modules observed in a plan"
}
