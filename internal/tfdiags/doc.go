// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package tfdiags is a utility package for representing errors and
// warnings in a manner that allows us to produce good messages for the
// user.
//
// "tf" in the name is an abbreviation of Terraform, because this package
// follows the diagnostics conventions used across the Terraform family of
// tools: multiple errors and warnings accumulated in a single Diagnostics
// list, rendered together at the UI layer rather than aborting on the
// first problem.
package tfdiags
