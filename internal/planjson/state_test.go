// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package planjson

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hashicorp/planscape/internal/addrs"
)

const testStateJSON = `
{
  "version": 4,
  "terraform_version": "1.8.3",
  "serial": 11,
  "lineage": "d7a6880b-0b17-46a4-812d-2a38ba68612b",
  "resources": [
    {
      "mode": "managed",
      "type": "aws_vpc",
      "name": "main",
      "provider": "provider[\"registry.terraform.io/hashicorp/aws\"]",
      "instances": [
        {"schema_version": 1, "attributes": {"id": "vpc-123", "cidr_block": "10.0.0.0/16"}}
      ]
    },
    {
      "module": "module.net",
      "mode": "managed",
      "type": "aws_subnet",
      "name": "private",
      "instances": [
        {"index_key": 0, "attributes": {"id": "subnet-0", "cidr_block": "10.0.1.0/24"}},
        {"index_key": 1, "attributes": {"id": "subnet-1", "cidr_block": "10.0.2.0/24"}}
      ]
    },
    {
      "mode": "managed",
      "type": "aws_route53_record",
      "name": "www",
      "instances": [
        {"index_key": "blue", "attributes": {"ttl": 300}}
      ]
    },
    {
      "mode": "data",
      "type": "aws_ami",
      "name": "latest",
      "instances": [
        {"attributes": {"id": "ami-456"}}
      ]
    }
  ]
}
`

func TestReadState(t *testing.T) {
	plan, err := ReadState([]byte(testStateJSON))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got, want := plan.TerraformVersion, "1.8.3"; got != want {
		t.Errorf("wrong terraform version %q; want %q", got, want)
	}

	var gotAddrs []string
	for _, rc := range plan.ResourceChanges {
		gotAddrs = append(gotAddrs, rc.Address)
	}
	wantAddrs := []string{
		"aws_vpc.main",
		"module.net.aws_subnet.private",
		"module.net.aws_subnet.private",
		"aws_route53_record.www",
		"data.aws_ami.latest",
	}
	if diff := cmp.Diff(wantAddrs, gotAddrs); diff != "" {
		t.Fatalf("wrong addresses\n%s", diff)
	}

	for i, rc := range plan.ResourceChanges {
		if got, want := rc.Change.Actions, []string{"no-op"}; !cmp.Equal(want, got) {
			t.Errorf("change %d: wrong actions %#v; want %#v", i, got, want)
		}
		if rc.Change.AfterUnknown != nil || rc.Change.AfterSensitive != nil {
			t.Errorf("change %d: synthesized unknown/sensitive layers; want none", i)
		}
	}

	subnet0 := plan.ResourceChanges[1]
	if got, want := subnet0.ModuleAddress, "module.net"; got != want {
		t.Errorf("wrong module address %q; want %q", got, want)
	}
	if key, err := subnet0.InstanceKey(); err != nil || key != addrs.IntKey(0) {
		t.Errorf("wrong instance key %#v, %v; want IntKey(0), nil", key, err)
	}
	if got, want := subnet0.Change.After["cidr_block"], "10.0.1.0/24"; got != want {
		t.Errorf("wrong cidr_block %#v; want %#v", got, want)
	}

	record := plan.ResourceChanges[3]
	if key, err := record.InstanceKey(); err != nil || key != addrs.StringKey("blue") {
		t.Errorf("wrong instance key %#v, %v; want StringKey(blue), nil", key, err)
	}

	ami := plan.ResourceChanges[4]
	if got, want := ami.Mode, "data"; got != want {
		t.Errorf("wrong mode %q; want %q", got, want)
	}
	if key, err := ami.InstanceKey(); err != nil || key != addrs.NoKey {
		t.Errorf("wrong instance key %#v, %v; want NoKey, nil", key, err)
	}
}

func TestReadStateDefaultMode(t *testing.T) {
	plan, err := ReadState([]byte(`{
		"version": 4,
		"resources": [
			{"type": "aws_vpc", "name": "main", "instances": [{"attributes": {}}]}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, want := plan.ResourceChanges[0].Mode, "managed"; got != want {
		t.Errorf("wrong mode %q; want %q", got, want)
	}
}

func TestReadStateUnsupportedVersion(t *testing.T) {
	_, err := ReadState([]byte(`{"version": 3, "resources": []}`))
	if err == nil {
		t.Fatal("succeeded; want error")
	}
	if !strings.Contains(err.Error(), "unsupported state snapshot version 3") {
		t.Errorf("wrong error: %s", err)
	}
}
