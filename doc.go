// Package jsonplan edits structured documents in place: RFC 6901
// pointer navigation, RFC 6902 style patches, unified diffs, and
// crash-safe commits to disk.
//
// The subpackages carry the machinery: parse and encode convert between
// bytes and the ordered ir.Node tree, pointer resolves and mutates
// locations, patch executes operation lists, libdiff renders diffs, and
// store persists revisions with backups. This package holds the
// document-level helpers built on top of them.
package jsonplan
