// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package terminal

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// StreamsForTesting returns a Streams connected to in-process pipes
// instead of the real process streams, for use in unit tests of code that
// writes through a Streams.
//
// The second result must be called once the code under test has finished,
// and returns everything that was written. Failing to call it leaks the
// pipe file descriptors.
func StreamsForTesting(t *testing.T) (*Streams, func(*testing.T) *TestOutput) {
	t.Helper()

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdin pipe: %s", err)
	}
	// Nothing ever arrives on the testing stdin.
	stdinW.Close()

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %s", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stderr pipe: %s", err)
	}

	streams := &Streams{
		Stdout: &OutputStream{File: stdoutW},
		Stderr: &OutputStream{File: stderrW},
		Stdin:  &InputStream{File: stdinR},
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		io.Copy(&stdoutBuf, stdoutR)
	}()
	go func() {
		defer wg.Done()
		io.Copy(&stderrBuf, stderrR)
	}()

	done := func(t *testing.T) *TestOutput {
		t.Helper()
		stdoutW.Close()
		stderrW.Close()
		wg.Wait()
		stdinR.Close()
		return &TestOutput{
			stdout: stdoutBuf.String(),
			stderr: stderrBuf.String(),
		}
	}
	return streams, done
}

// TestOutput holds the output of a test run captured by
// StreamsForTesting.
type TestOutput struct {
	stdout string
	stderr string
}

// Stdout returns everything written to the testing stdout.
func (o *TestOutput) Stdout() string {
	return o.stdout
}

// Stderr returns everything written to the testing stderr.
func (o *TestOutput) Stderr() string {
	return o.stderr
}

// All returns the captured output of both streams, stdout first.
func (o *TestOutput) All() string {
	return o.stdout + o.stderr
}
