// Package console is a console-like sink built on zap. It implements every
// operation of package sink and renders browser-style format directives, so a
// prefixed logger can use it wherever a browser would use its global console.
package console

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leosykes117/prefixlog/pkg/sink"
)

var _ sink.Full = (*Console)(nil)

// Config contains options to build a Console.
type Config struct {
	Format string    // "console" or "json"
	Color  bool      // colorize levels and honor %c styles
	Output io.Writer // defaults to os.Stdout
	Now    func() time.Time
}

// Option for functional options pattern.
type Option func(*Config)

func WithFormat(format string) Option {
	return func(c *Config) { c.Format = format }
}
func WithColor(color bool) Option {
	return func(c *Config) { c.Color = color }
}
func WithOutput(w io.Writer) Option {
	return func(c *Config) { c.Output = w }
}

// WithClock replaces the clock used by Time and TimeEnd.
func WithClock(now func() time.Time) Option {
	return func(c *Config) { c.Now = now }
}

// state is shared by a Console and the consoles derived from it with Named.
type state struct {
	mu     sync.Mutex
	depth  int
	timers map[string]time.Time
}

// Console implements the sink operations on top of a zap logger.
type Console struct {
	z        *zap.Logger
	out      io.Writer
	styled   bool
	terminal bool
	now      func() time.Time
	st       *state
}

// New returns a Console built on zap, configurable via functional options.
func New(opts ...Option) *Console {
	// defaults
	cfg := &Config{
		Format: "console",
		Color:  true,
		Output: os.Stdout,
		Now:    time.Now,
	}

	for _, o := range opts {
		o(cfg)
	}

	// Build zap encoder config
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	json := cfg.Format == "json"
	if cfg.Color && !json {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	// Gating belongs to the callers, the console shows everything it gets.
	core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.Output), zapcore.DebugLevel)

	return &Console{
		z:        zap.New(core),
		out:      cfg.Output,
		styled:   cfg.Color && !json,
		terminal: isTerminal(cfg.Output),
		now:      cfg.Now,
		st:       &state{timers: map[string]time.Time{}},
	}
}

// NewDevelopment returns a colored console on stdout when stdout is a terminal.
func NewDevelopment() *Console {
	return New(WithFormat("console"), WithColor(isTerminal(os.Stdout)))
}

// NewProduction returns a json console on stdout.
func NewProduction() *Console {
	return New(WithFormat("json"), WithColor(false))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Named returns a console whose entries carry name. It shares group depth and
// timers with c.
func (c *Console) Named(name string) *Console {
	cp := *c
	cp.z = c.z.Named(name)
	return &cp
}

// Sync flushes buffered entries.
func (c *Console) Sync() error {
	return c.z.Sync()
}

func (c *Console) indent(msg string) string {
	c.st.mu.Lock()
	depth := c.st.depth
	c.st.mu.Unlock()

	if depth == 0 {
		return msg
	}
	pad := strings.Repeat("  ", depth)
	return pad + strings.ReplaceAll(msg, "\n", "\n"+pad)
}

func (c *Console) emit(lvl zapcore.Level, args []any, fields ...zap.Field) {
	c.z.Log(lvl, c.indent(Sprint(c.styled, args...)), fields...)
}

func (c *Console) Log(args ...any)   { c.emit(zapcore.InfoLevel, args) }
func (c *Console) Debug(args ...any) { c.emit(zapcore.DebugLevel, args) }
func (c *Console) Info(args ...any)  { c.emit(zapcore.InfoLevel, args) }
func (c *Console) Warn(args ...any)  { c.emit(zapcore.WarnLevel, args) }
func (c *Console) Error(args ...any) { c.emit(zapcore.ErrorLevel, args) }

// Trace logs args together with the stack of the caller.
func (c *Console) Trace(args ...any) {
	c.emit(zapcore.DebugLevel, args, zap.StackSkip("stacktrace", 1))
}

// Dir logs each value as a structured field.
func (c *Console) Dir(args ...any) {
	c.z.Info(c.indent(""), toFields(args...)...)
}

// DirXML logs each value encoded as XML, or in Go syntax when it has no XML form.
func (c *Console) DirXML(args ...any) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		b, err := xml.MarshalIndent(a, "", "  ")
		if err != nil {
			parts = append(parts, fmt.Sprintf("%+v", a))
			continue
		}
		parts = append(parts, string(b))
	}
	c.z.Info(c.indent(strings.Join(parts, "\n")))
}

// Table logs args[0] as a table. An optional []string in args[1] selects the
// columns. Data that is not tabular is logged as with Log.
func (c *Console) Table(args ...any) {
	if len(args) == 0 {
		return
	}
	var columns []string
	if len(args) > 1 {
		columns, _ = args[1].([]string)
	}
	table, ok := renderTable(args[0], columns)
	if !ok {
		c.Log(args...)
		return
	}
	c.z.Info(c.indent("\n" + table))
}

func (c *Console) Assert(cond bool, args ...any) {
	if cond {
		return
	}
	msg := "Assertion failed"
	if len(args) > 0 {
		msg += ": " + Sprint(c.styled, args...)
	}
	c.z.Error(c.indent(msg))
}

// Clear clears the screen when the output is a terminal.
func (c *Console) Clear() {
	if !c.terminal {
		return
	}
	c.st.mu.Lock()
	defer c.st.mu.Unlock()
	_, _ = io.WriteString(c.out, "\x1b[H\x1b[2J")
}

func (c *Console) Group(args ...any) {
	if len(args) == 0 {
		args = []any{"console.group"}
	}
	c.emit(zapcore.InfoLevel, args)

	c.st.mu.Lock()
	c.st.depth++
	c.st.mu.Unlock()
}

// GroupCollapsed behaves like Group; a terminal cannot fold entries.
func (c *Console) GroupCollapsed(args ...any) {
	c.Group(args...)
}

func (c *Console) GroupEnd() {
	c.st.mu.Lock()
	if c.st.depth > 0 {
		c.st.depth--
	}
	c.st.mu.Unlock()
}

func (c *Console) Time(label string) {
	if label == "" {
		label = "default"
	}
	c.st.mu.Lock()
	_, exists := c.st.timers[label]
	if !exists {
		c.st.timers[label] = c.now()
	}
	c.st.mu.Unlock()

	if exists {
		c.Warn("Timer '%s' already exists", label)
	}
}

func (c *Console) TimeEnd(label string) {
	if label == "" {
		label = "default"
	}
	c.st.mu.Lock()
	start, exists := c.st.timers[label]
	delete(c.st.timers, label)
	c.st.mu.Unlock()

	if !exists {
		c.Warn("Timer '%s' does not exist", label)
		return
	}
	elapsed := c.now().Sub(start)
	c.z.Info(c.indent(fmt.Sprintf("%s: %s", label, elapsed)), zap.Duration("elapsed", elapsed))
}
