// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package planjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp/planscape/internal/logging"
	"github.com/hashicorp/planscape/internal/tfgraph"
)

// Loader reads run documents from disk. The filesystem is abstracted so
// that tests can feed in-memory files.
type Loader struct {
	fs     afero.Afero
	logger hclog.Logger
}

// NewLoader returns a Loader reading from the host filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(afero.NewOsFs())
}

// NewLoaderWithFS returns a Loader reading from the given filesystem.
func NewLoaderWithFS(fs afero.Fs) *Loader {
	return &Loader{
		fs:     afero.Afero{Fs: fs},
		logger: logging.NewLogger("planjson"),
	}
}

// LoadChanges reads the file at the given path as either a plan export or
// a raw state snapshot, whichever it turns out to be.
func (l *Loader) LoadChanges(path string) (*Plan, error) {
	src, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	switch sniffDocument(src) {
	case planDocument:
		l.logger.Debug("loading plan export", "path", path)
		plan, err := ReadPlan(src)
		if err == nil && newerThanCurrent(plan.FormatVersion) {
			l.logger.Debug("plan format_version postdates this build",
				"format_version", plan.FormatVersion,
				"current", PlanFormatVersionCurrent,
			)
		}
		return plan, err
	case stateDocument:
		l.logger.Debug("loading state snapshot", "path", path)
		return ReadState(src)
	case binaryPlanDocument:
		return nil, &MalformedPlanError{
			Problem: fmt.Sprintf("%s looks like a saved binary plan; export it with 'terraform show -json %s' first", path, path),
		}
	default:
		return nil, &MalformedPlanError{
			Problem: fmt.Sprintf("%s is neither a plan export (terraform show -json) nor a version 4 state snapshot", path),
		}
	}
}

// LoadGraph reads a low-level dependency graph captured with
// "terraform graph | dot -Txdot_json".
func (l *Loader) LoadGraph(path string) (*tfgraph.Graph, error) {
	src, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	g, err := tfgraph.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	l.logger.Debug("loaded low-level graph",
		"path", path,
		"objects", len(g.Objects),
		"edges", len(g.Edges),
	)
	return g, nil
}

type documentKind int

const (
	unknownDocument documentKind = iota
	planDocument
	stateDocument
	binaryPlanDocument
)

func sniffDocument(src []byte) documentKind {
	// Saved binary plans are zip archives; catch them early so the error
	// can point at "terraform show -json" instead of a JSON syntax error.
	if bytes.HasPrefix(src, []byte("PK")) {
		return binaryPlanDocument
	}

	var probe struct {
		FormatVersion   string          `json:"format_version"`
		ResourceChanges json.RawMessage `json:"resource_changes"`
		Version         *uint64         `json:"version"`
	}
	if err := json.Unmarshal(src, &probe); err != nil {
		return unknownDocument
	}

	switch {
	case probe.FormatVersion != "" || len(probe.ResourceChanges) > 0:
		return planDocument
	case probe.Version != nil:
		// Raw snapshots carry a numeric schema version; ReadState rejects
		// anything other than 4 with a precise message.
		return stateDocument
	default:
		return unknownDocument
	}
}
