// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package tfdiags

type Diagnostic interface {
	Severity() Severity
	Description() Description
	Source() Source
}

type Severity rune

// This is not a very graceful way to list constants, but this expresses
// "Severity" in a way that is much more convenient to use in other packages.
const (
	Error   Severity = 'E'
	Warning Severity = 'W'
)

type Description struct {
	Summary string
	Detail  string
}

type Source struct {
	Subject *SourceRange
	Context *SourceRange
}
