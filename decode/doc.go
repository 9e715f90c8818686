// Package decode reads the binary NBT format into tag trees.
//
// # Usage
//
//	root, n, err := decode.Decode(data)
//	if err != nil {
//	    return err
//	}
//	// data[n:] is whatever followed the root tag
//
// The input is the raw, decompressed tag stream; see the nbtfile package for
// gzip and zlib wrapped files.
//
// # Errors
//
// Truncated input yields an *IOError, which matches io.ErrUnexpectedEOF.
// Invalid type ids, negative counts, invalid UTF-8, duplicate compound names
// and nesting beyond MaxDepth yield a *FormatError, which matches ErrFormat.
package decode
