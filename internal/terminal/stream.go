// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputStream is an output stream of the process together with knowledge
// of whether it is connected to a terminal.
type OutputStream struct {
	File *os.File

	isTerminal bool
}

// IsTerminal returns true if the stream seems to be connected to an
// interactive terminal rather than a pipe or file.
func (s *OutputStream) IsTerminal() bool {
	return s.isTerminal
}

// InputStream is an input stream of the process together with knowledge
// of whether it is connected to a terminal.
type InputStream struct {
	File *os.File

	isTerminal bool
}

// IsTerminal returns true if the stream seems to be connected to an
// interactive terminal rather than a pipe or file.
func (s *InputStream) IsTerminal() bool {
	return s.isTerminal
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
