// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
)

// VersionCommand is a Command implementation that prints the version.
type VersionCommand struct {
	Meta

	Version           string
	VersionPrerelease string
	Platform          string
}

// VersionOutput is the structure of the machine-readable version report.
type VersionOutput struct {
	Version  string `json:"planscape_version"`
	Platform string `json:"platform"`
}

func (c *VersionCommand) Run(args []string) int {
	var jsonOutput bool
	cmdFlags := flag.NewFlagSet("version", flag.ContinueOnError)
	cmdFlags.SetOutput(io.Discard)
	cmdFlags.BoolVar(&jsonOutput, "json", false, "json")
	// Enable but ignore the global version flags. In main.go, if any of the
	// arguments are -v, -version, or --version, this command will be called
	// with the rest of the arguments, so we need to be able to cope with
	// those.
	cmdFlags.BoolVar(new(bool), "v", true, "version")
	cmdFlags.BoolVar(new(bool), "version", true, "version")
	cmdFlags.Usage = func() { c.Ui.Error(c.Help()) }
	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	var versionString bytes.Buffer
	fmt.Fprintf(&versionString, "planscape v%s", c.Version)
	if c.VersionPrerelease != "" {
		fmt.Fprintf(&versionString, "-%s", c.VersionPrerelease)
	}

	if jsonOutput {
		versionOutput := c.Version
		if c.VersionPrerelease != "" {
			versionOutput = c.Version + "-" + c.VersionPrerelease
		}

		output := VersionOutput{
			Version:  versionOutput,
			Platform: c.Platform,
		}

		jsonOutput, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			c.Ui.Error(fmt.Sprintf("\nError marshalling JSON: %s", err))
			return 1
		}
		c.Ui.Output(string(jsonOutput))
		return 0
	}

	c.Ui.Output(versionString.String())
	c.Ui.Output(fmt.Sprintf("on %s", c.Platform))
	return 0
}

func (c *VersionCommand) Help() string {
	helpText := `
Usage: planscape [global options] version [options]

  Displays the version of planscape and the platform it's running on.

Options:

  -json       Output the version information as a JSON object.

`
	return strings.TrimSpace(helpText)
}

func (c *VersionCommand) Synopsis() string {
	return "Show the current planscape version"
}
