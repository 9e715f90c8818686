package libdiff

import (
	"bytes"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/nbt-format/export"
	"github.com/signadot/nbt-format/format"
	"github.com/signadot/nbt-format/tag"
)

// MergePatch returns the JSON merge patch (RFC 7386) taking the JSON
// export of from to that of to. Arrays and lists are replaced whole.
// Without export.Typed, a change of numeric type alone is invisible.
func MergePatch(from, to *tag.Node, opts ...export.Option) ([]byte, error) {
	a, err := export.Marshal(from, format.JSONFormat, opts...)
	if err != nil {
		return nil, err
	}
	b, err := export.Marshal(to, format.JSONFormat, opts...)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// ApplyMergePatch applies a merge patch to the JSON export of n and
// returns the resulting JSON document.
func ApplyMergePatch(n *tag.Node, patch []byte, opts ...export.Option) ([]byte, error) {
	d, err := export.Marshal(n, format.JSONFormat, opts...)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(d, patch)
}

// EmptyPatch reports whether p changes nothing.
func EmptyPatch(p []byte) bool {
	return bytes.Equal(bytes.TrimSpace(p), []byte("{}"))
}
