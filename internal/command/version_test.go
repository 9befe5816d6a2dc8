// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/cli"
)

func TestVersion(t *testing.T) {
	ui := new(cli.MockUi)
	c := &VersionCommand{
		Meta: Meta{
			Ui: ui,
		},
		Version:           "0.9.0",
		VersionPrerelease: "dev",
		Platform:          "linux_amd64",
	}

	if code := c.Run(nil); code != 0 {
		t.Fatalf("bad: \n%s", ui.ErrorWriter.String())
	}

	got := ui.OutputWriter.String()
	if !strings.Contains(got, "planscape v0.9.0-dev") {
		t.Errorf("unexpected output:\n%s", got)
	}
	if !strings.Contains(got, "on linux_amd64") {
		t.Errorf("missing platform in output:\n%s", got)
	}
}

func TestVersion_json(t *testing.T) {
	ui := new(cli.MockUi)
	c := &VersionCommand{
		Meta: Meta{
			Ui: ui,
		},
		Version:  "0.9.0",
		Platform: "linux_amd64",
	}

	if code := c.Run([]string{"-json"}); code != 0 {
		t.Fatalf("bad: \n%s", ui.ErrorWriter.String())
	}

	var got VersionOutput
	if err := json.Unmarshal(ui.OutputWriter.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %s\n%s", err, ui.OutputWriter.String())
	}
	want := VersionOutput{
		Version:  "0.9.0",
		Platform: "linux_amd64",
	}
	if got != want {
		t.Errorf("unexpected output\n got: %#v\nwant: %#v", got, want)
	}
}
