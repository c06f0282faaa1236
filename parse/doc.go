// Package parse decodes document text into ir.Node trees.
//
// JSON is the primary format. Decoding is token level rather than through
// map[string]any so that object key order survives: the order of keys in
// the input is the order of Fields in the resulting object nodes. Number
// literals keep their raw spelling in Node.Number, letting the encoder
// reproduce them byte for byte. Duplicate object keys are rejected.
//
// YAML input is supported for read paths via ParseYAML; it goes through an
// order-preserving decode as well.
package parse
