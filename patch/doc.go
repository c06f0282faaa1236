// Package patch decodes and applies RFC 6902 style patch documents to
// ir.Node trees.
//
// A patch is an ordered list of operations (add, remove, replace, move,
// copy, test). Apply executes the operations in order against a document,
// mutating it in place; execution stops at the first failure and already
// executed operations are not rolled back. Callers that need isolation
// should apply to a clone of the document.
//
// Object add is strict insert by default: adding an existing key fails
// with pointer.ErrTargetExists. The Upsert option restores RFC 6902's
// add-or-replace reading.
package patch
