// Package encode writes tag trees in the binary NBT format.
//
// Encoding is the inverse of decode.Decode: an unmodified decoded tree
// encodes to the bytes it was decoded from.
//
//	d, err := encode.Marshal(root)
//
// Trees that break a structural invariant (a non-compound root, strings
// over 65535 bytes, integers outside their width, mixed list elements)
// are refused with a *tag.ValidationError naming the offending path.
package encode
