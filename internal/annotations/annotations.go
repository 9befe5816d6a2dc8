// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package annotations reads user-supplied override files that patch a
// generated resource graph: extra nodes the plan cannot see, corrected or
// severed relationships, and metadata touch-ups. Overrides are HCL, in
// the spirit of:
//
//	title = "Production VPC"
//
//	add "aws_cloudwatch_dashboard.ops" {
//	  region = "eu-west-1"
//	}
//
//	connect "aws_vpc.main" {
//	  to = ["aws_subnet.a"]
//	}
//
//	disconnect "aws_vpc.main" {
//	  from = ["aws_instance.legacy"]
//	}
//
//	remove "aws_instance.legacy" {}
//
//	update "aws_subnet.a" {
//	  tier = "public"
//	}
package annotations

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/hashicorp/planscape/internal/resourcegraph"
	"github.com/hashicorp/planscape/internal/tfdiags"
)

// File is a parsed annotations document. The zero value applies cleanly
// and changes nothing.
type File struct {
	Title string

	Adds        []Add
	Connects    []Connect
	Disconnects []Disconnect
	Removes     []string
	Updates     []Update
}

// Add introduces a node that the plan itself does not contain.
type Add struct {
	Key        string
	Attributes map[string]interface{}
}

// Connect records extra edges from a node to the listed targets.
type Connect struct {
	From string
	To   []string
}

// Disconnect severs the relationship between a node and each listed
// neighbor, in whichever direction the edge points.
type Disconnect struct {
	Node string
	From []string
}

// Update merges attribute values into a node's metadata.
type Update struct {
	Key        string
	Attributes map[string]interface{}
}

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "add", LabelNames: []string{"key"}},
		{Type: "connect", LabelNames: []string{"key"}},
		{Type: "disconnect", LabelNames: []string{"key"}},
		{Type: "remove", LabelNames: []string{"key"}},
		{Type: "update", LabelNames: []string{"key"}},
	},
}

// Load reads and parses the annotations file at the given path.
func Load(path string) (*File, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics
	src, err := os.ReadFile(path)
	if err != nil {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Failed to read annotations file",
			fmt.Sprintf("Cannot read %s: %s.", path, err),
		))
		return nil, diags
	}
	return Parse(src, path)
}

// Parse decodes an annotations document from source bytes. The filename
// is used only for diagnostic positions.
func Parse(src []byte, filename string) (*File, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics

	f, hclDiags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	diags = diags.Append(hclDiags)
	if hclDiags.HasErrors() {
		return nil, diags
	}

	content, hclDiags := f.Body.Content(fileSchema)
	diags = diags.Append(hclDiags)
	if hclDiags.HasErrors() {
		return nil, diags
	}

	file := &File{}

	if attr, ok := content.Attributes["title"]; ok {
		val, hclDiags := attr.Expr.Value(nil)
		diags = diags.Append(hclDiags)
		if !hclDiags.HasErrors() {
			if val.Type() != cty.String {
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid title",
					Detail:   "The title argument must be a string.",
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else {
				file.Title = val.AsString()
			}
		}
	}

	for _, block := range content.Blocks {
		key := block.Labels[0]
		switch block.Type {
		case "add":
			attrs, moreDiags := decodeAttributes(block.Body)
			diags = diags.Append(moreDiags)
			file.Adds = append(file.Adds, Add{Key: key, Attributes: attrs})
		case "connect":
			var b struct {
				To []string `hcl:"to"`
			}
			diags = diags.Append(gohcl.DecodeBody(block.Body, nil, &b))
			file.Connects = append(file.Connects, Connect{From: key, To: b.To})
		case "disconnect":
			var b struct {
				From []string `hcl:"from"`
			}
			diags = diags.Append(gohcl.DecodeBody(block.Body, nil, &b))
			file.Disconnects = append(file.Disconnects, Disconnect{Node: key, From: b.From})
		case "remove":
			diags = diags.Append(gohcl.DecodeBody(block.Body, nil, &struct{}{}))
			file.Removes = append(file.Removes, key)
		case "update":
			attrs, moreDiags := decodeAttributes(block.Body)
			diags = diags.Append(moreDiags)
			file.Updates = append(file.Updates, Update{Key: key, Attributes: attrs})
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return file, diags
}

// decodeAttributes reads every attribute of a body into native Go values,
// for bodies whose attribute names are the user's to choose.
func decodeAttributes(body hcl.Body) (map[string]interface{}, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics

	attrs, hclDiags := body.JustAttributes()
	diags = diags.Append(hclDiags)
	if hclDiags.HasErrors() {
		return nil, diags
	}
	if len(attrs) == 0 {
		return nil, diags
	}

	ret := make(map[string]interface{}, len(attrs))
	for name, attr := range attrs {
		val, hclDiags := attr.Expr.Value(nil)
		diags = diags.Append(hclDiags)
		if hclDiags.HasErrors() {
			continue
		}
		native, err := ctyToNative(val)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsuitable attribute value",
				Detail:   fmt.Sprintf("The value of %q cannot be used as metadata: %s.", name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		ret[name] = native
	}
	return ret, diags
}

// ctyToNative converts a cty value to the plain Go representation used in
// graph metadata, going through JSON so that annotation values and plan
// attribute values compare equal.
func ctyToNative(val cty.Value) (interface{}, error) {
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var native interface{}
	if err := json.Unmarshal(raw, &native); err != nil {
		return nil, err
	}
	return native, nil
}

// Apply patches a graph with the file's overrides and returns the result
// as a new graph. Overrides apply in a fixed order: added nodes first so
// that later sections can refer to them, then new connections, then
// severed ones, then removals, then metadata updates. Connections naming
// unknown nodes are skipped with a debug note rather than invented.
func Apply(g *resourcegraph.Graph, f *File, logger hclog.Logger) *resourcegraph.Graph {
	ret := g.Copy()
	if f == nil {
		return ret
	}

	if f.Title != "" {
		ret.Title = f.Title
	}

	for _, add := range f.Adds {
		ret.AddNode(add.Key, add.Attributes)
	}

	for _, c := range f.Connects {
		if !ret.HasNode(c.From) {
			logger.Debug("connect names an unknown resource, skipping",
				"node", c.From,
			)
			continue
		}
		for _, to := range c.To {
			if !ret.HasNode(to) {
				logger.Debug("connect target is not a known resource, skipping",
					"node", c.From,
					"target", to,
				)
				continue
			}
			ret.AddEdge(c.From, to)
		}
	}

	for _, d := range f.Disconnects {
		for _, other := range d.From {
			ret.RemoveEdge(d.Node, other)
			ret.RemoveEdge(other, d.Node)
		}
	}

	for _, key := range f.Removes {
		ret.RemoveNode(key)
	}

	for _, u := range f.Updates {
		if !ret.HasNode(u.Key) {
			logger.Debug("update names an unknown resource, skipping",
				"node", u.Key,
			)
			continue
		}
		meta := ret.Metadata[u.Key]
		if meta == nil {
			meta = make(map[string]interface{}, len(u.Attributes))
			ret.Metadata[u.Key] = meta
		}
		for k, v := range u.Attributes {
			meta[k] = v
		}
	}

	return ret
}
