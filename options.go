package bounded

type parseOptions struct {
	base int
}

// ParseOption configures the Parse family of functions.
type ParseOption func(*parseOptions)

// WithBase sets the numeric base used when parsing, with the same meaning
// as the base argument of strconv.ParseInt: 2 through 36, or 0 to infer
// the base from the string prefix.
//
// The default is 10.
func WithBase(base int) ParseOption {
	return func(o *parseOptions) {
		o.base = base
	}
}

func applyParseOptions(optFns []ParseOption) parseOptions {
	o := parseOptions{
		base: 10,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
