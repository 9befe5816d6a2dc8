// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"github.com/hashicorp/cli"

	"github.com/hashicorp/planscape/internal/command/views"
	"github.com/hashicorp/planscape/internal/terminal"
)

// Meta contains the process-wide dependencies shared by all commands.
type Meta struct {
	// Ui is used for simple line-oriented output outside the view layer.
	Ui cli.Ui

	// Streams tracks the raw standard streams of the process, including
	// whether each is connected to a terminal.
	Streams *terminal.Streams

	// View is the base layer for the command's views.
	View *views.View
}
