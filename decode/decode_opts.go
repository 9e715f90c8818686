package decode

// DefaultMaxDepth bounds compound and list nesting.
const DefaultMaxDepth = 512

type decodeOpts struct {
	maxDepth int
}

type Option func(*decodeOpts)

// MaxDepth sets the nesting limit. The root compound is at depth 1.
func MaxDepth(n int) Option {
	return func(o *decodeOpts) { o.maxDepth = n }
}
