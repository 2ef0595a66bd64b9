package build

// Option configures a Builder at construction time.
type Option func(*config)

type config struct {
	capacityHint int
	skipValence  bool
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCapacityHint preallocates room for n atoms, avoiding repeated
// slice growth while reading a SMILES string of known approximate
// length. Purely a performance hint; any n, including 0 or negative,
// is accepted and negative values are ignored.
func WithCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacityHint = n
		}
	}
}

// WithoutValenceCheck disables Build's hypervalence check, so a
// Builder can be used to materialize graphs the valence rules in §4.E
// would otherwise reject — useful for round-tripping adjacency lists
// that were never meant to pass chemical validation, e.g. test
// fixtures built directly through the Follower interface.
func WithoutValenceCheck() Option {
	return func(c *config) {
		c.skipValence = true
	}
}
