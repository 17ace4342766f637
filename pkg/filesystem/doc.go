// Package filesystem provides filesystem implementations for dotin.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used in production, and an afero-backed one that
// lets tests wrap the OS filesystem (for example read-only) to inject
// failures into the mutation phases of an import.
package filesystem
