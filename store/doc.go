// Package store loads and commits documents on the filesystem.
//
// Commit is crash safe: the new revision is written to a temporary file
// in the target's directory, synced to durable storage, and renamed onto
// the target, so the target path always holds either the complete prior
// revision or the complete new one. When the target pre-exists, a backup
// copy of its exact prior bytes is taken before the rename, named with a
// UTC timestamp and the new revision's digest prefix.
//
// The store assumes one writer per path; there is no cross-process lock.
// The backup chain is an audit and recovery trail, not a conflict
// resolution mechanism.
package store
