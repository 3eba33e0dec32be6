package prefixlog

// Factory builds loggers that share a color wheel and a set of default options.
type Factory struct {
	wheel    *ColorWheel
	defaults []Option
}

// NewFactory returns a factory drawing default colors from wheel, a fresh
// wheel when nil. defaults are applied before the options given to New.
func NewFactory(wheel *ColorWheel, defaults ...Option) *Factory {
	if wheel == nil {
		wheel = NewColorWheel()
	}
	return &Factory{wheel: wheel, defaults: defaults}
}

// ColorWheel returns the wheel the factory draws default colors from.
func (f *Factory) ColorWheel() *ColorWheel {
	return f.wheel
}

// New returns a logger for prefix.
func (f *Factory) New(prefix string, opts ...Option) *Logger {
	all := make([]Option, 0, len(f.defaults)+len(opts))
	all = append(all, f.defaults...)
	all = append(all, opts...)
	return newLogger(prefix, f.wheel, all)
}

var (
	defaultWheel   = NewColorWheel()
	defaultFactory = NewFactory(defaultWheel)
)

// DefaultColorWheel returns the process-wide wheel used by New.
func DefaultColorWheel() *ColorWheel {
	return defaultWheel
}

// New returns a logger for prefix built by the process-wide factory.
func New(prefix string, opts ...Option) *Logger {
	return defaultFactory.New(prefix, opts...)
}
