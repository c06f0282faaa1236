// Package encode renders ir.Node trees as JSON text.
//
// Output is deterministic: 2 space indentation, object keys in insertion
// order, number literals reproduced from their raw spelling when one was
// recorded at parse time, and a trailing newline. Non-ASCII characters are
// written as UTF-8 rather than \u escapes.
//
// SortKeys switches to sorted key order for canonical comparison output;
// persisted documents always use insertion order. EncodeColors enables
// ANSI colored output for terminals.
package encode
