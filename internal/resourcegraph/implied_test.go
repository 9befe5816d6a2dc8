// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/planscape/internal/cloudconfig"
)

func TestInferImplied(t *testing.T) {
	tests := map[string]struct {
		container map[string]interface{}
		member    map[string]interface{}
		wantEdge  bool
	}{
		"member inside container": {
			container: map[string]interface{}{"cidr_block": "10.0.0.0/16"},
			member:    map[string]interface{}{"cidr_block": "10.0.1.0/24"},
			wantEdge:  true,
		},
		"disjoint ranges": {
			container: map[string]interface{}{"cidr_block": "10.0.0.0/16"},
			member:    map[string]interface{}{"cidr_block": "192.168.0.0/24"},
			wantEdge:  false,
		},
		"container inside member": {
			container: map[string]interface{}{"cidr_block": "10.0.1.0/24"},
			member:    map[string]interface{}{"cidr_block": "10.0.0.0/16"},
			wantEdge:  true,
		},
		"unknown placeholder": {
			container: map[string]interface{}{"cidr_block": true},
			member:    map[string]interface{}{"cidr_block": "10.0.1.0/24"},
			wantEdge:  false,
		},
		"unparsable range": {
			container: map[string]interface{}{"cidr_block": "10.0.0.0/16"},
			member:    map[string]interface{}{"cidr_block": "10.0.1.0/33"},
			wantEdge:  false,
		},
		"missing attribute": {
			container: map[string]interface{}{},
			member:    map[string]interface{}{"cidr_block": "10.0.1.0/24"},
			wantEdge:  false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGraph()
			g.AddNode("aws_vpc.main", test.container)
			g.AddNode("aws_subnet.a", test.member)

			got := InferImplied(g, cloudconfig.Default(), hclog.NewNullLogger())

			want := map[string][]string{
				"aws_vpc.main": {},
				"aws_subnet.a": {},
			}
			if test.wantEdge {
				want["aws_vpc.main"] = []string{"aws_subnet.a"}
			}
			if diff := cmp.Diff(want, got.Edges); diff != "" {
				t.Errorf("wrong edges\n%s", diff)
			}

			if g.EdgeCount() != 0 {
				t.Errorf("input graph was mutated: %d edges", g.EdgeCount())
			}
		})
	}
}

func TestInferImpliedListAttributes(t *testing.T) {
	g := NewGraph()
	g.AddNode("azurerm_virtual_network.core", map[string]interface{}{
		"address_space": []interface{}{"10.1.0.0/16"},
	})
	g.AddNode("azurerm_subnet.apps", map[string]interface{}{
		"address_prefixes": []interface{}{"10.1.2.0/24"},
	})
	g.AddNode("azurerm_subnet.other", map[string]interface{}{
		"address_prefixes": []interface{}{"10.9.2.0/24"},
	})

	got := InferImplied(g, cloudconfig.Default(), hclog.NewNullLogger())

	want := map[string][]string{
		"azurerm_virtual_network.core": {"azurerm_subnet.apps"},
		"azurerm_subnet.apps":          {},
		"azurerm_subnet.other":         {},
	}
	if diff := cmp.Diff(want, got.Edges); diff != "" {
		t.Errorf("wrong edges\n%s", diff)
	}
}

func TestInferImpliedCustomRule(t *testing.T) {
	cfg := &cloudconfig.Config{
		ContainmentRules: []cloudconfig.ContainmentRule{
			{
				ContainerType: "example_network",
				MemberType:    "example_segment",
				ContainerAttr: "range",
				MemberAttr:    "range",
			},
		},
	}

	g := NewGraph()
	g.AddNode("example_network.net", map[string]interface{}{"range": "10.0.0.0/8"})
	g.AddNode("example_segment.seg", map[string]interface{}{"range": "10.2.0.0/16"})

	got := InferImplied(g, cfg, hclog.NewNullLogger())

	want := map[string][]string{
		"example_network.net": {"example_segment.seg"},
		"example_segment.seg": {},
	}
	if diff := cmp.Diff(want, got.Edges); diff != "" {
		t.Errorf("wrong edges\n%s", diff)
	}
}

func TestInferImpliedExistingEdgeKept(t *testing.T) {
	g := NewGraph()
	g.AddNode("aws_vpc.main", map[string]interface{}{"cidr_block": "10.0.0.0/16"})
	g.AddNode("aws_subnet.a", map[string]interface{}{"cidr_block": "10.0.1.0/24"})
	g.AddEdge("aws_vpc.main", "aws_subnet.a")

	got := InferImplied(g, cloudconfig.Default(), hclog.NewNullLogger())

	want := map[string][]string{
		"aws_vpc.main": {"aws_subnet.a"},
		"aws_subnet.a": {},
	}
	if diff := cmp.Diff(want, got.Edges); diff != "" {
		t.Errorf("wrong edges\n%s", diff)
	}
}

func TestInferImpliedLogsSkippedRanges(t *testing.T) {
	var logOutput strings.Builder
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Debug,
		Output: &logOutput,
	})

	g := NewGraph()
	g.AddNode("aws_vpc.main", map[string]interface{}{"cidr_block": "nonsense"})
	g.AddNode("aws_subnet.a", map[string]interface{}{"cidr_block": "10.0.1.0/24"})

	got := InferImplied(g, cloudconfig.Default(), logger)

	if n := got.EdgeCount(); n != 0 {
		t.Errorf("wrong edge count %d; want 0", n)
	}
	if !strings.Contains(logOutput.String(), "unparsable address range") {
		t.Errorf("missing debug line for the skipped range; log output:\n%s", logOutput.String())
	}
}
