// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arguments

import (
	"github.com/hashicorp/planscape/internal/tfdiags"
)

// Modules represents the command-line arguments for the modules command.
type Modules struct {
	// PlanPath is the path to the plan export or state snapshot to list
	// modules from.
	PlanPath string

	// ViewType specifies which output format to use: human or JSON.
	ViewType ViewType
}

// ParseModules processes CLI arguments, returning a Modules value and
// errors. If errors are encountered, a Modules value is still returned
// representing the best effort interpretation of the arguments.
func ParseModules(args []string) (*Modules, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics
	modules := &Modules{}

	cmdFlags := defaultFlagSet("modules")
	cmdFlags.StringVar(&modules.PlanPath, "plan", "", "plan")

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
			"The modules command expects no positional arguments.",
		))
	}

	if modules.PlanPath == "" {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Required argument missing",
			"The -plan argument is required.",
		))
	}

	switch {
	case json:
		modules.ViewType = ViewJSON
	default:
		modules.ViewType = ViewHuman
	}

	return modules, diags
}
