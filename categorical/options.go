package categorical

// Option configures a Sniffer or an Encode call via functional arguments.
type Option func(*config)

// config holds the shared optional knobs.
type config struct {
	// origin is the caller's opaque provenance token, attached to every
	// failure via OriginError.
	origin any
}

// newConfig applies opts over the zero configuration.
func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithOrigin attaches an opaque provenance token to failures raised by the
// configured operation. The token is forwarded unmodified for diagnostics
// and never interpreted.
func WithOrigin(token any) Option {
	return func(c *config) { c.origin = token }
}

// BoxOption configures the Box built by C.
type BoxOption func(*Box)

// WithLevels fixes the level values and their order for the boxed data,
// overriding any levels inherited from an inner Box.
func WithLevels(levels ...any) BoxOption {
	return func(b *Box) { b.Levels = cloneLevels(levels) }
}

// WithContrast attaches an opaque contrast payload to the boxed data,
// overriding any contrast inherited from an inner Box.
func WithContrast(contrast any) BoxOption {
	return func(b *Box) { b.Contrast = contrast }
}
