// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package tfdiags

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
)

func TestDiagnosticsAppend(t *testing.T) {
	tests := map[string]struct {
		Append    []interface{}
		WantDescs []Description
		WantErr   bool
	}{
		"nil": {
			nil,
			nil,
			false,
		},
		"native error": {
			[]interface{}{errors.New("oh no bad")},
			[]Description{
				{Summary: "oh no bad"},
			},
			true,
		},
		"sourceless warning": {
			[]interface{}{Sourceless(Warning, "oh no bad", "badness")},
			[]Description{
				{Summary: "oh no bad", Detail: "badness"},
			},
			false,
		},
		"hcl diagnostic": {
			[]interface{}{&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Something bake",
				Detail:   "in the file",
			}},
			[]Description{
				{Summary: "Something bake", Detail: "in the file"},
			},
			true,
		},
		"multierror": {
			[]interface{}{multierror.Append(nil, errors.New("bad thing A"), errors.New("bad thing B"))},
			[]Description{
				{Summary: "bad thing A"},
				{Summary: "bad thing B"},
			},
			true,
		},
		"concat": {
			[]interface{}{
				Diagnostics(nil).Append(errors.New("bad thing A")),
				errors.New("bad thing B"),
			},
			[]Description{
				{Summary: "bad thing A"},
				{Summary: "bad thing B"},
			},
			true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var diags Diagnostics
			diags = diags.Append(test.Append...)

			var gotDescs []Description
			for _, diag := range diags {
				gotDescs = append(gotDescs, diag.Description())
			}
			if diff := cmp.Diff(test.WantDescs, gotDescs); diff != "" {
				t.Errorf("wrong descriptions\n%s", diff)
			}
			if got, want := diags.HasErrors(), test.WantErr; got != want {
				t.Errorf("wrong HasErrors %#v; want %#v", got, want)
			}
		})
	}
}

func TestDiagnosticsErr(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var diags Diagnostics
		if err := diags.Err(); err != nil {
			t.Errorf("got %#v; want nil", err)
		}
	})

	t.Run("warning only", func(t *testing.T) {
		var diags Diagnostics
		diags = diags.Append(Sourceless(Warning, "bad smell", ""))
		if err := diags.Err(); err != nil {
			t.Errorf("got %#v; want nil", err)
		}
	})

	t.Run("one error", func(t *testing.T) {
		var diags Diagnostics
		diags = diags.Append(errors.New("didn't work"))
		err := diags.Err()
		if err == nil {
			t.Fatal("got nil; want error")
		}
		if got, want := err.Error(), "didn't work"; got != want {
			t.Errorf("wrong message %q; want %q", got, want)
		}
	})

	t.Run("two errors", func(t *testing.T) {
		var diags Diagnostics
		diags = diags.Append(errors.New("didn't work"))
		diags = diags.Append(Sourceless(Error, "forbidden zone", "no entry"))
		err := diags.Err()
		if err == nil {
			t.Fatal("got nil; want error")
		}
		want := "2 problems:\n\n- didn't work\n- forbidden zone: no entry"
		if got := err.Error(); got != want {
			t.Errorf("wrong message\ngot:  %q\nwant: %q", got, want)
		}
	})
}

func TestDiagnosticsNonFatalErr(t *testing.T) {
	var diags Diagnostics
	diags = diags.Append(Sourceless(Warning, "only a warning", ""))
	err := diags.NonFatalErr()
	if err == nil {
		t.Fatal("got nil; want NonFatalError")
	}
	if _, ok := err.(NonFatalError); !ok {
		t.Fatalf("got %T; want NonFatalError", err)
	}

	// Appending the wrapper must flatten it back out, not nest it.
	var again Diagnostics
	again = again.Append(err.(NonFatalError))
	if got, want := len(again), 1; got != want {
		t.Fatalf("wrong length %d; want %d", got, want)
	}
	if got, want := again[0].Description().Summary, "only a warning"; got != want {
		t.Errorf("wrong summary %q; want %q", got, want)
	}
}

func TestSourceRangeFromHCL(t *testing.T) {
	rng := hcl.Range{
		Filename: "overrides.pshcl",
		Start:    hcl.Pos{Line: 2, Column: 1, Byte: 20},
		End:      hcl.Pos{Line: 2, Column: 5, Byte: 24},
	}
	got := SourceRangeFromHCL(rng)
	want := SourceRange{
		Filename: "overrides.pshcl",
		Start:    SourcePos{Line: 2, Column: 1, Byte: 20},
		End:      SourcePos{Line: 2, Column: 5, Byte: 24},
	}
	if got != want {
		t.Errorf("wrong result\ngot:  %#v\nwant: %#v", got, want)
	}

	var diags Diagnostics
	diags = diags.Append(&hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported block type",
		Subject:  &rng,
	})
	src := diags[0].Source()
	if src.Subject == nil {
		t.Fatal("no subject range on wrapped hcl diagnostic")
	}
	if got, want := src.Subject.StartString(), fmt.Sprintf("%s:2,1", "overrides.pshcl"); got != want {
		// StartString relativizes against the working directory; a bare
		// filename passes through unchanged.
		t.Errorf("wrong StartString %q; want %q", got, want)
	}
}
