// Package driver runs one generation pass: load packages, collect specs,
// resolve implicits, synthesize, render and write.
//
// Per-site problems accumulate in Result.Diagnostics and never stop the
// pass; Run returns an error only for failures that make the pass itself
// impossible (bad configuration, packages that cannot be loaded, output that
// cannot be rendered or written).
package driver
