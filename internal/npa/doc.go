// Package npa resolves NPA client and resource handles to names.
//
// Handles appear in the RPM log as opaque 32-bit values. An NPA dump taken
// from the same boot lists every client and resource with its handle:
//
//	0x0001: npa_client (name: rpm_vdd_dig) (handle: 0x2a00c4) (resource: 0x2a0010)
//	0x0002: npa_resource (name: "/clk/cpu") (handle: 0x2a0010) ...
//
// A Resolver starts unloaded. Loading a dump moves it to the loaded state
// where misses are reported one by one. When no dump is ever loaded the first
// lookup reports that name resolution is unavailable and moves the resolver to
// a degraded state that formats every handle as hex without further noise.
package npa
