// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/planscape/internal/command/views"
	"github.com/hashicorp/planscape/internal/terminal"
)

// testView returns a views.View which writes to memory, and a function
// for returning the accumulated output as a TestOutput. The returned
// function may only be called once per view.
func testView(t *testing.T) (*views.View, func(*testing.T) *terminal.TestOutput) {
	streams, done := terminal.StreamsForTesting(t)
	return views.NewView(streams), done
}

// testTempFile writes contents to a file named name inside a fresh
// temporary directory, returning the file's path.
func testTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
