// Package decode drives a whole RPM ULog file through the framer and the
// message registry.
//
// A Decoder visits lines strictly in file order. Each line is framed, its
// timestamp formatted, the high-precision tracker updated and the message
// rendered. A line that fails any step is reported as a *RecordError on the
// Diagnostics sink and skipped; nothing a single record contains can stop the
// run.
//
// # Output Format
//
//	0.009155: rpm_driver_dispatch (resource: "CXO")
//	0x12c: rpm_driver_complete (rejected: 0)
//	0.009185 [+   7.407 us] {00000064 -> 00000096}: rpm_no_driver
package decode
