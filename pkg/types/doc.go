// Package types defines the core types and interfaces used throughout dotin.
// This includes the import data model (ResolvedFile, PlannedMove, ImportPlan,
// ImportResult), the FS abstraction the importer mutates the filesystem
// through, and the Reporter interface progress output is emitted to.
package types
