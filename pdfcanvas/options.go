package pdfcanvas

// Option is a functional option for configuring a Document opened via Open.
type Option func(*config)

type config struct {
	styles      map[string]Style
	base        Style
	compression bool
	layerHidden map[string]bool
}

// WithStyle registers a named paragraph style.
func WithStyle(name string, s Style) Option {
	return func(c *config) {
		c.styles[name] = s
	}
}

// WithStyles registers several named paragraph styles.
func WithStyles(styles map[string]Style) Option {
	return func(c *config) {
		for name, s := range styles {
			c.styles[name] = s
		}
	}
}

// WithDefaultStyle sets the style of text frames that get no named style.
// Unset fields fall back to Helvetica 12pt black, left aligned.
func WithDefaultStyle(s Style) Option {
	return func(c *config) {
		c.base = s
	}
}

// WithCompression toggles content stream compression of the output
// (default: on).
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compression = on
	}
}

// WithHiddenLayer makes the named layer initially hidden in viewers.
func WithHiddenLayer(name string) Option {
	return func(c *config) {
		c.layerHidden[name] = true
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		styles:      make(map[string]Style),
		compression: true,
		layerHidden: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
