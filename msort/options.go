package msort

type Options struct {
	// Key projects a value to the key the merge compares. Identity if nil.
	Key func(int) int
}

// Option is a generic option type. Implementations type assert to their
// options target and ignore the option if that fails.
type Option func(any)

// WithKey sets the comparison key. Values whose keys compare equal keep their
// relative order.
func WithKey(key func(int) int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Key = key
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Key == nil {
		o.Key = func(v int) int { return v }
	}
	return o
}
