// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"runtime"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/planscape/internal/command"
	"github.com/hashicorp/planscape/internal/command/views"
	"github.com/hashicorp/planscape/internal/terminal"
	"github.com/hashicorp/planscape/version"
)

// Commands is the mapping of all the available planscape commands.
var Commands map[string]cli.CommandFactory

// PrimaryCommands is an ordered sequence of the top-level commands that we
// emphasize at the top of our help output. This is ordered so that we can
// show them in the typical workflow order, rather than in alphabetical
// order. Anything not in this list appears under "all other commands".
var PrimaryCommands []string

func initCommands(streams *terminal.Streams) {
	meta := command.Meta{
		Ui:      Ui,
		Streams: streams,
		View:    views.NewView(streams),
	}

	Commands = map[string]cli.CommandFactory{
		"graph": func() (cli.Command, error) {
			return &command.GraphCommand{
				Meta: meta,
			}, nil
		},

		"modules": func() (cli.Command, error) {
			return &command.ModulesCommand{
				Meta: meta,
			}, nil
		},

		"get": func() (cli.Command, error) {
			return &command.GetCommand{
				Meta: meta,
			}, nil
		},

		"version": func() (cli.Command, error) {
			return &command.VersionCommand{
				Meta:              meta,
				Version:           version.Version,
				VersionPrerelease: version.Prerelease,
				Platform:          runtime.GOOS + "_" + runtime.GOARCH,
			}, nil
		},
	}

	PrimaryCommands = []string{
		"graph",
		"modules",
	}
}
