// Package pointer implements RFC 6901 style JSON Pointers over ir.Node
// documents: parsing and escaping of pointer strings, and the navigation
// and mutation primitives (Get, Add, Replace, Remove) the patch executor
// is built on.
//
// A pointer is a sequence of reference tokens. The empty pointer denotes
// the document root. Tokens address object keys, or array indices as
// base-10 non-negative integers; the literal token "-" means "one past the
// last element" and is valid only as an insertion target for Add.
//
// Add treats existing object keys as an error (strict insert); the patch
// executor layers upsert behavior on top when asked to.
package pointer
