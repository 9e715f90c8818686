package encode

type EncodeOption func(*EncState)

// EncodeMaxDepth bounds compound and list nesting; deeper trees are
// refused. The root compound is at depth 1.
func EncodeMaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// EncodeSizeHint preallocates the output buffer.
func EncodeSizeHint(n int) EncodeOption {
	return func(es *EncState) { es.sizeHint = n }
}
