// Package target holds the per-chipset tables used to name things in an RPM
// log.
//
// An RPM build only logs numeric ids: resource indexes, master indexes and
// raw MPM wake-up interrupt masks. The mapping from those ids to names is
// specific to the chipset the firmware was built for, so the decoder needs
// one Profile selected up front.
//
// # Catalog
//
// The built-in catalog is embedded from profiles/targets.yaml and covers the
// 8660, 8960, 8930 and 8064 families. Additional chipsets can be supplied in
// a YAML file with the same schema and merged on top:
//
//	catalog, err := target.Builtin()
//	if err != nil {
//	    return err
//	}
//	extra, err := target.LoadFile(afero.NewOsFs(), "my-targets.yaml")
//	if err != nil {
//	    return err
//	}
//	profile, err := catalog.With(extra).Get("8064")
//
// # Lookups
//
// Lookups never fail. An index missing from a table renders as
// "Unknown <category> <index>" so that a log from a slightly different
// build still decodes.
//
// # Thread Safety
//
// Catalogs and profiles are immutable after loading and safe for concurrent
// reads.
package target
