// Package utils holds the filesystem primitives the importer composes with:
// idempotent folder creation, the same-filesystem check that guards renames,
// and nested-directory deduplication.
package utils
