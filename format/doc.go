// Package format names the input formats jsonplan can read.
//
// Documents and patch files are JSON by default; YAML input is accepted for
// read paths. Committed revisions are always JSON.
//
// # Related Packages
//
//   - github.com/jsonplan/go-jsonplan/parse - Parse text to IR
//   - github.com/jsonplan/go-jsonplan/encode - Encode IR to text
package format
