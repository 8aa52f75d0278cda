// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

// DefaultNamespace is the namespace of the networking API's v2.0
// XML dialect.
const DefaultNamespace = "http://openstack.org/quantum/api/v2.0"

// corePlurals covers the resources and nested lists of the core API.
var corePlurals = map[string]string{
	"networks":         "network",
	"ports":            "port",
	"subnets":          "subnet",
	"dns_nameservers":  "dns_nameserver",
	"host_routes":      "host_route",
	"allocation_pools": "allocation_pool",
	"fixed_ips":        "fixed_ip",
	"extensions":       "extension",
}

// extensionPlurals covers resources added by API extensions. Several of
// these are not regular English plurals ("policies", "floatingips"),
// which is why the table exists at all.
var extensionPlurals = map[string]string{
	"routers":                "router",
	"floatingips":            "floatingip",
	"service_types":          "service_type",
	"service_definitions":    "service_definition",
	"security_groups":        "security_group",
	"security_group_rules":   "security_group_rule",
	"ipsecpolicies":          "ipsecpolicy",
	"ikepolicies":            "ikepolicy",
	"ipsec_site_connections": "ipsec_site_connection",
	"vpnservices":            "vpnservice",
	"vips":                   "vip",
	"pools":                  "pool",
	"members":                "member",
	"health_monitors":        "health_monitor",
	"quotas":                 "quota",
	"service_providers":      "service_provider",
	"firewall_rules":         "firewall_rule",
	"firewall_policies":      "firewall_policy",
	"firewalls":              "firewall",
	"metering_labels":        "metering_label",
	"metering_label_rules":   "metering_label_rule",
	"net_partitions":         "net_partition",
	"packet_filters":         "packet_filter",
	"loadbalancers":          "loadbalancer",
	"listeners":              "listener",
	"lbaas_pools":            "lbaas_pool",
	"lbaas_healthmonitors":   "lbaas_healthmonitor",
	"lbaas_members":          "lbaas_member",
	"healthmonitors":         "healthmonitor",
	"agents":                 "agent",
}

// Defaults returns the built-in tables: the API's default namespace
// and the plural table for core and extension resources. No keys
// render as attributes and no extension namespaces are bound; those
// come from configuration or from the server's extension list.
func Defaults() Tables {
	plurals := make(map[string]string, len(corePlurals)+len(extensionPlurals))
	for plural, singular := range extensionPlurals {
		plurals[plural] = singular
	}
	for plural, singular := range corePlurals {
		plurals[plural] = singular
	}
	return Tables{
		DefaultNamespace:    DefaultNamespace,
		Plurals:             plurals,
		Attributes:          map[string][]string{},
		ExtensionNamespaces: map[string]string{},
	}
}
