package planck

const defaultMaxGridElements = 1 << 26

// EventKind identifies a diagnostic condition observed during an
// evaluation.
type EventKind int

const (
	// EventExponentRange reports the smallest and largest exponent
	// argument that entered the exponential.
	EventExponentRange EventKind = iota

	// EventMaskedTemperatures reports how many input temperatures were
	// too close to zero and produced masked (NaN) output.
	EventMaskedTemperatures

	// EventDubiousExponents reports how many exponent arguments were
	// negative, which cannot happen for positive wavelength and
	// temperature.
	EventDubiousExponents
)

// Event carries diagnostic information to an Observer. Count is set
// for the counting kinds, Min and Max for EventExponentRange.
type Event struct {
	Kind  EventKind
	Count int
	Min   float64
	Max   float64
}

// Observer receives diagnostic events. Events are informational and
// never alter the returned result.
type Observer func(Event)

// Option configures an evaluation.
type Option func(*config)

type config struct {
	fullPrecision   bool
	maxGridElements int
	observer        Observer
}

func defaultConfig() config {
	return config{maxGridElements: defaultMaxGridElements}
}

// WithFullPrecision evaluates the exponent argument entirely in
// float64 instead of rounding it through single precision. This
// changes rounding behavior for extreme inputs relative to the
// default.
func WithFullPrecision() Option {
	return func(c *config) {
		c.fullPrecision = true
	}
}

// WithMaxGridElements limits the temperature-by-position cross product
// to n elements. Requests above the limit fail with ErrGridTooLarge
// before any grid memory is allocated.
func WithMaxGridElements(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxGridElements = n
		}
	}
}

// WithObserver registers a sink for diagnostic events.
func WithObserver(fn Observer) Option {
	return func(c *config) {
		c.observer = fn
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
