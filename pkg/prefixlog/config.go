package prefixlog

import (
	"time"

	"github.com/leosykes117/prefixlog/pkg/level"
	"github.com/leosykes117/prefixlog/pkg/store"
)

// Styling selects between the styled and the plain prefix format.
type Styling int

const (
	// StylingAuto styles the prefix when the user agent supports it.
	StylingAuto Styling = iota
	StylingOn
	StylingOff
)

// ParseStyling maps "on", "off" and anything else to StylingAuto.
func ParseStyling(s string) Styling {
	switch s {
	case "on", "true", "always":
		return StylingOn
	case "off", "false", "never":
		return StylingOff
	}
	return StylingAuto
}

// Config contains the options a Logger is built from.
type Config struct {
	// Sink receives the output. Default: the process-wide console.
	Sink any
	// PrefixColor is the CSS color of the prefix. Default: next color of the factory's wheel.
	PrefixColor string
	// Level is the initial threshold. Default: level.Info.
	Level level.Level
	// RefreshLevelInterval re-reads the persisted level this often. Default: 0 (disabled).
	RefreshLevelInterval time.Duration
	// Debug reports the refresh timer lifecycle through the logger itself.
	Debug bool
	// Styling and UserAgent decide the prefix format. Default: StylingAuto with no agent, i.e. plain.
	Styling   Styling
	UserAgent string
	// Store holds the persisted level. Default: store.Global().
	Store store.Getter
	// Scheduler runs the refresh timer. Default: TickerScheduler.
	Scheduler Scheduler
	// Metrics counts emitted and suppressed calls when set.
	Metrics *Metrics
}

// Option for functional options pattern.
type Option func(*Config)

// WithSink sets the object receiving the output. See package sink.
func WithSink(s any) Option {
	return func(c *Config) { c.Sink = s }
}
func WithPrefixColor(color string) Option {
	return func(c *Config) { c.PrefixColor = color }
}
func WithLevel(l level.Level) Option {
	return func(c *Config) { c.Level = l }
}

// WithLevelName sets the level by name, see level.FromString.
func WithLevelName(name string) Option {
	return func(c *Config) { c.Level = level.FromString(name) }
}
func WithRefreshLevelInterval(d time.Duration) Option {
	return func(c *Config) { c.RefreshLevelInterval = d }
}
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}
func WithStyling(s Styling) Option {
	return func(c *Config) { c.Styling = s }
}
func WithUserAgent(ua string) Option {
	return func(c *Config) { c.UserAgent = ua }
}
func WithStore(s store.Getter) Option {
	return func(c *Config) { c.Store = s }
}
func WithScheduler(s Scheduler) Option {
	return func(c *Config) { c.Scheduler = s }
}
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.Metrics = m }
}

func (c *Config) styled() bool {
	switch c.Styling {
	case StylingOn:
		return true
	case StylingOff:
		return false
	}
	return SupportsStyling(c.UserAgent)
}
