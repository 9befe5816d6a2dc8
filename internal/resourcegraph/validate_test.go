// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package resourcegraph

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/planscape/internal/cloudconfig"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		keys    []string
		wantErr bool
	}{
		"aws resources": {
			keys: []string{"aws_vpc.main", "aws_subnet.a"},
		},
		"azure resources": {
			keys: []string{"azurerm_virtual_network.core"},
		},
		"google resources": {
			keys: []string{"google_compute_instance.vm"},
		},
		"mixed providers": {
			keys: []string{"random_pet.name", "aws_vpc.main"},
		},
		"unsupported provider only": {
			keys:    []string{"random_pet.name", "tls_private_key.ssh"},
			wantErr: true,
		},
		"empty graph": {
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(testGraph(test.keys...), cloudconfig.Default())
			if !test.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				return
			}

			var ede *EmptyDomainError
			if !errors.As(err, &ede) {
				t.Fatalf("wrong error %#v; want EmptyDomainError", err)
			}
			for _, prefix := range cloudconfig.Default().ProviderPrefixes {
				if !strings.Contains(err.Error(), prefix) {
					t.Errorf("error message %q does not name prefix %q", err, prefix)
				}
			}
		})
	}
}
