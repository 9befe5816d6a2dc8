// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package cloudconfig holds the provider-specific tables that shape graph
// construction. The tables are data rather than behavior so that support
// for additional resource types is a table edit, not a code change in the
// graph builder.
package cloudconfig

import "strings"

// Config carries the tables consulted while building a resource graph.
// The zero value disables all provider-aware behavior; most callers want
// Default.
type Config struct {
	// ProviderPrefixes lists the resource type prefixes of the cloud
	// providers this build understands. A graph must contain at least one
	// resource matching one of these prefixes to be considered drawable.
	ProviderPrefixes []string

	// ReverseEdgeTypes lists resource types whose low-level dependency
	// edges oppose the semantic direction a reader expects: routing and
	// association resources "belong to" the resource they reference, so
	// their edges are recorded contained-by rather than depends-on.
	ReverseEdgeTypes []string

	// ContainmentRules describes type pairs where membership is implied
	// by network address containment rather than by an explicit reference
	// in configuration.
	ContainmentRules []ContainmentRule
}

// ContainmentRule names a container/member resource type pair and the
// attributes on each that hold their network ranges. A member whose range
// overlaps a container's range is drawn inside it.
type ContainmentRule struct {
	ContainerType string
	MemberType    string
	ContainerAttr string
	MemberAttr    string
}

// Default returns the built-in tables covering the AWS, Azure and Google
// providers.
func Default() *Config {
	return &Config{
		ProviderPrefixes: []string{
			"aws_",
			"azurerm_",
			"google_",
		},
		ReverseEdgeTypes: []string{
			"aws_route",
			"aws_route_table_association",
			"aws_main_route_table_association",
			"aws_iam_role_policy_attachment",
			"aws_lb_target_group_attachment",
			"aws_volume_attachment",
			"azurerm_subnet_route_table_association",
			"azurerm_subnet_network_security_group_association",
		},
		ContainmentRules: []ContainmentRule{
			{
				ContainerType: "aws_vpc",
				MemberType:    "aws_subnet",
				ContainerAttr: "cidr_block",
				MemberAttr:    "cidr_block",
			},
			{
				ContainerType: "azurerm_virtual_network",
				MemberType:    "azurerm_subnet",
				ContainerAttr: "address_space",
				MemberAttr:    "address_prefixes",
			},
		},
	}
}

// SupportedType returns true if the given resource type belongs to one of
// the configured providers.
func (c *Config) SupportedType(resType string) bool {
	for _, prefix := range c.ProviderPrefixes {
		if strings.HasPrefix(resType, prefix) {
			return true
		}
	}
	return false
}

// ReversedType returns true if edges sourced from the given resource type
// should be recorded in the contained-by direction.
func (c *Config) ReversedType(resType string) bool {
	for _, t := range c.ReverseEdgeTypes {
		if resType == t {
			return true
		}
	}
	return false
}
