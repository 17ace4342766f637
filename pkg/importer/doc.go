// Package importer moves files from a home directory into a group of the
// dotfiles repository, mirroring their path relative to home.
//
// An import runs in two steps. Plan resolves and classifies every input,
// rejects collisions and computes the directories to create without
// touching the filesystem. Execute creates those directories, verifies that
// every move stays on one filesystem and renames the files in input order.
// Any error aborts the batch; nothing already done is rolled back.
package importer
