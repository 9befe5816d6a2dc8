// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package terminal encapsulates knowledge about the process's attached
// terminals, so that other packages can adapt their output to either a
// human at a terminal or a pipe without probing file descriptors
// themselves.
package terminal

import (
	"fmt"
	"os"
)

// Streams represents the standard streams of the current process.
type Streams struct {
	Stdout *OutputStream
	Stderr *OutputStream
	Stdin  *InputStream
}

// Init inspects the process's standard streams and returns an object
// describing them. The error result is reserved for platforms where
// stream setup can fail; on unix it is always nil.
func Init() (*Streams, error) {
	return &Streams{
		Stdout: &OutputStream{
			File:       os.Stdout,
			isTerminal: isTerminal(os.Stdout),
		},
		Stderr: &OutputStream{
			File:       os.Stderr,
			isTerminal: isTerminal(os.Stderr),
		},
		Stdin: &InputStream{
			File:       os.Stdin,
			isTerminal: isTerminal(os.Stdin),
		},
	}, nil
}

// Print is a helper for conveniently calling fmt.Fprint on the Stdout stream.
func (s *Streams) Print(a ...interface{}) (n int, err error) {
	return fmt.Fprint(s.Stdout.File, a...)
}

// Printf is a helper for conveniently calling fmt.Fprintf on the Stdout
// stream.
func (s *Streams) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(s.Stdout.File, format, a...)
}

// Println is a helper for conveniently calling fmt.Fprintln on the Stdout
// stream.
func (s *Streams) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.Stdout.File, a...)
}

// Eprint is a helper for conveniently calling fmt.Fprint on the Stderr
// stream.
func (s *Streams) Eprint(a ...interface{}) (n int, err error) {
	return fmt.Fprint(s.Stderr.File, a...)
}

// Eprintf is a helper for conveniently calling fmt.Fprintf on the Stderr
// stream.
func (s *Streams) Eprintf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(s.Stderr.File, format, a...)
}

// Eprintln is a helper for conveniently calling fmt.Fprintln on the Stderr
// stream.
func (s *Streams) Eprintln(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.Stderr.File, a...)
}
