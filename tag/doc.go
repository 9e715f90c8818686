// Package tag provides the in-memory representation of named binary tag
// (NBT) trees.
//
// # Overview
//
// A tree is made of Nodes. Each Node is a name plus a Value, and a Value is
// a closed tagged union over the 13 wire kinds enumerated by Type. Only the
// payload fields belonging to Value.Type are meaningful:
//
//   - ByteType, ShortType, IntType, LongType: Int
//   - FloatType: Float32
//   - DoubleType: Float64
//   - StringType: String
//   - ByteArrayType, IntArrayType, LongArrayType: Bytes, Ints, Longs
//   - ListType: ElemType and Elems (unnamed nodes)
//   - CompoundType: Compound
//
// EndType only terminates compounds on the wire and never holds a value.
//
// # Creating Values
//
//	root := tag.NewRoot("")
//	_ = root.Compound.Add(tag.NewNode("id", tag.FromShort(276)))
//	name, err := tag.FromString("Test Player")
//	pos, err := tag.NewList(tag.DoubleType,
//	    tag.FromDouble(100.5), tag.FromDouble(64), tag.FromDouble(-200.75))
//
// # Invariants
//
// Trees built through this package and the edit package keep these
// properties:
//
//   - list elements all have the list's ElemType
//   - compound child names are unique, and the compound keeps insertion order
//   - integers fit the width of their type
//   - strings and names are valid UTF-8 of at most MaxStringLen bytes
//   - a node has exactly one parent
//
// The payload fields are exported, so code assigning them directly can break
// these; Validate reports such trees and the encoder refuses them.
//
// # Selecting Nodes
//
// Nodes hold no parent pointers. A selection is a tpath.Path from the root,
// resolved with Get each time it is used, so removing a subtree can never
// leave a dangling selection behind.
package tag
