// Package ir provides the intermediate representation for jsonplan documents.
//
// # Overview
//
// A document is a tree of *Node values. The IR is a closed tagged union:
// the Type field selects which of the remaining fields carry the value.
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// # Node Structure
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Keys are StringType nodes and
// appear in insertion order; encoding preserves that order. Keys are unique
// within an object.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//
// The Number field additionally keeps the raw source literal when the node
// was produced by parsing, so re-encoding preserves the original spelling.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Comparison
//
// Equal reports structural equality as the patch "test" operation defines
// it: object key order is irrelevant, array order matters, and numbers
// compare by value regardless of integer or float representation. Compare
// is a total order over nodes used for canonical (sorted-key) encoding.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes before sharing them
// across goroutines.
package ir
