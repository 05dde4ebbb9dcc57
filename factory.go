package attrs

// Factory builds the nested bag instances created implicitly during a
// recursive load.  Embedders override it (via WithFactory) so that nested
// instances come out correctly configured instead of hard-coding the base
// construction.
type Factory func() *Bag

// Option customizes a bag at construction time.  Options are the extension
// seam for embedders: they run after the bag is allocated and before any
// initial data load.
type Option func(*Bag)

// WithFactory sets the constructor used for implicitly created nested bags.
func WithFactory(factory Factory) Option {
	return func(b *Bag) {
		b.factory = factory
	}
}

// WithRecursive controls whether the construction-time load (NewBag, From)
// wraps nested raw mappings into nested bags.
func WithRecursive(recursive bool) Option {
	return func(b *Bag) {
		b.recursive = recursive
	}
}
