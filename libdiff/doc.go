// Package libdiff renders unified text diffs between two serialized
// documents.
//
// The line-level diff runs on sergi/go-diff in line mode; Unified wraps
// it with standard ---/+++ headers and @@ hunks with three lines of
// context. The output is empty when the inputs are byte identical.
//
// Callers wanting order-insensitive comparison serialize both sides with
// sorted keys first; Unified itself compares exactly the bytes it is
// given.
package libdiff
