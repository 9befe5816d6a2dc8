// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/terminal"
	"github.com/hashicorp/planscape/internal/tfdiags"
	"github.com/mitchellh/colorstring"
)

// View is the base layer for command views, encapsulating a set of I/O
// streams, a colorize implementation, and implementing a human friendly view
// for diagnostics.
type View struct {
	streams  *terminal.Streams
	colorize *colorstring.Colorize
}

// NewView returns an initialized View with no other options set.
func NewView(streams *terminal.Streams) *View {
	return &View{
		streams: streams,
		colorize: &colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !streams.Stdout.IsTerminal(),
			Reset:   true,
		},
	}
}

// Configure applies the global view configuration flags.
func (v *View) Configure(view *arguments.View) {
	if view.NoColor {
		v.colorize.Disable = true
	}
}

// Diagnostics renders a set of warnings and errors in human-readable form.
// Warnings are printed to stdout, and errors to stderr.
func (v *View) Diagnostics(diags tfdiags.Diagnostics) {
	if len(diags) == 0 {
		return
	}

	for _, diag := range diags {
		desc := diag.Description()

		var buf bytes.Buffer
		switch diag.Severity() {
		case tfdiags.Error:
			buf.WriteString(v.colorize.Color("[bold][red]Error: [reset]"))
		case tfdiags.Warning:
			buf.WriteString(v.colorize.Color("[bold][yellow]Warning: [reset]"))
		}
		buf.WriteString(v.colorize.Color(fmt.Sprintf("[bold]%s[reset]\n", desc.Summary)))
		if desc.Detail != "" {
			buf.WriteString(fmt.Sprintf("\n%s\n", desc.Detail))
		}
		buf.WriteString("\n")

		if diag.Severity() == tfdiags.Error {
			v.streams.Eprint(buf.String())
		} else {
			v.streams.Print(buf.String())
		}
	}
}

// HelpPrompt is intended to be called from commands which fail to parse all
// of their CLI arguments successfully. It renders the command's help prompt
// to the user's stderr.
func (v *View) HelpPrompt(command string) {
	v.streams.Eprintf(helpPrompt, command)
}

const helpPrompt = `
For more help on using this command, run:
  planscape %s -help
`
