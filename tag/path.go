package tag

import (
	"fmt"

	"github.com/signadot/nbt-format/tag/tpath"
)

// Get follows p from n. A nil path is n itself. The result is the node in
// the tree, not a copy; callers holding a selection should keep the path
// and call Get again rather than retain the pointer across edits.
func (n *Node) Get(p *tpath.Path) (*Node, error) {
	res := n
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Index != nil:
			if res.Type != ListType {
				return nil, fmt.Errorf("%w: index [%d] into %s", ErrNotFound, *x.Index, res.Type)
			}
			i := *x.Index
			if i < 0 || i >= len(res.Elems) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrNotFound, i, len(res.Elems))
			}
			res = res.Elems[i]
		case x.Field != nil:
			if res.Type != CompoundType {
				return nil, fmt.Errorf("%w: field %s of %s", ErrNotFound, tpath.QuoteField(*x.Field), res.Type)
			}
			child, ok := res.Compound.Get(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: no field %s", ErrNotFound, tpath.QuoteField(*x.Field))
			}
			res = child
		default:
			return nil, fmt.Errorf("empty path segment")
		}
	}
	return res, nil
}

// GetPath parses and follows a path string.
func (n *Node) GetPath(p string) (*Node, error) {
	kp, err := tpath.Parse(p)
	if err != nil {
		return nil, err
	}
	return n.Get(kp)
}
