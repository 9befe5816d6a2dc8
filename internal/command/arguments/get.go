// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arguments

import (
	"github.com/hashicorp/planscape/internal/tfdiags"
)

// Get represents the command-line arguments for the get command.
type Get struct {
	// Source is the address of the source package to fetch, in any of the
	// go-getter supported forms.
	Source string

	// Dir is the directory to place the fetched package in. Defaults to
	// the current directory.
	Dir string
}

// ParseGet processes CLI arguments, returning a Get value and errors.
// If errors are encountered, a Get value is still returned representing
// the best effort interpretation of the arguments.
func ParseGet(args []string) (*Get, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics
	get := &Get{
		Dir: ".",
	}

	cmdFlags := defaultFlagSet("get")

	if err := cmdFlags.Parse(args); err != nil {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Failed to parse command-line flags",
			err.Error(),
		))
	}

	args = cmdFlags.Args()
	switch len(args) {
	case 1:
		get.Source = args[0]
	case 2:
		get.Source = args[0]
		get.Dir = args[1]
	default:
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Invalid arguments",
			"Expected one or two arguments: SOURCE [DIR]",
		))
	}

	return get, diags
}
