// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/getsource"
)

// GetCommand is a Command implementation that fetches a source package
// into a local directory, so that a plan can be produced from it.
type GetCommand struct {
	Meta
}

func (c *GetCommand) Run(rawArgs []string) int {
	// Parse and apply global view arguments
	common, rawArgs := arguments.ParseView(rawArgs)
	c.View.Configure(common)

	// Parse and validate flags
	args, diags := arguments.ParseGet(rawArgs)
	if diags.HasErrors() {
		c.View.Diagnostics(diags)
		c.View.HelpPrompt("get")
		return 1
	}

	if err := getsource.Fetch(context.Background(), args.Source, args.Dir); err != nil {
		diags = diags.Append(err)
		c.View.Diagnostics(diags)
		return 1
	}

	c.Ui.Output(fmt.Sprintf("Fetched %q into %q", args.Source, args.Dir))
	return 0
}

func (c *GetCommand) Help() string {
	helpText := `
Usage: planscape [global options] get SOURCE [DIR]

  Fetches a source package into DIR, or into the current directory when
  DIR is not given. SOURCE can be a local path, a git repository, an
  HTTP or cloud storage address, or any other form go-getter supports,
  with an optional //subdirectory suffix.

  planscape does not run terraform in the fetched directory; produce the
  plan export there yourself with "terraform plan" and "terraform show
  -json".

Options:

  -no-color           If specified, output won't contain any color.

`
	return strings.TrimSpace(helpText)
}

func (c *GetCommand) Synopsis() string {
	return "Fetch a source package into a directory"
}
