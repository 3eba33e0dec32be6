package prefixlog

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leosykes117/prefixlog/pkg/console"
	"github.com/leosykes117/prefixlog/pkg/level"
	"github.com/leosykes117/prefixlog/pkg/sink"
	"github.com/leosykes117/prefixlog/pkg/store"
)

var _ sink.Full = (*Logger)(nil)

// NoTimer is the refresh timer id reported while no timer is active.
const NoTimer = -1

type refreshTimer struct {
	id   int
	stop func()
}

// Logger is a prefixed, leveled facade over a sink. Every operation is bound
// once per configuration, so a call costs one table lookup whatever the level.
type Logger struct {
	prefix string
	table  atomic.Pointer[Table]

	mu      sync.Mutex
	cfg     Config
	level   level.Level
	timer   *refreshTimer
	timerID int
}

func newLogger(prefix string, wheel *ColorWheel, opts []Option) *Logger {
	// defaults
	cfg := Config{
		Level: level.Info,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.Sink == nil {
		cfg.Sink = console.L()
	}
	if cfg.PrefixColor == "" {
		cfg.PrefixColor = wheel.Next()
	}
	if cfg.Store == nil {
		cfg.Store = store.Global()
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = TickerScheduler{}
	}

	l := &Logger{
		prefix: prefix,
		cfg:    cfg,
		level:  cfg.Level,
	}

	l.mu.Lock()
	ev := l.applyLocked()
	l.mu.Unlock()
	l.report(ev)

	return l
}

// Prefix returns the label shown on every line.
func (l *Logger) Prefix() string { return l.prefix }

// PrefixColor returns the CSS color of the prefix.
func (l *Logger) PrefixColor() string { return l.cfg.PrefixColor }

// Sink returns the object the logger writes to.
func (l *Logger) Sink() any { return l.cfg.Sink }

// Styled reports whether the prefix uses the styled format.
func (l *Logger) Styled() bool { return l.cfg.styled() }

// Bindings returns a copy of the current operation table.
func (l *Logger) Bindings() Table { return *l.table.Load() }

// Level returns the current threshold.
func (l *Logger) Level() level.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel changes the threshold and re-applies the configuration, which also
// restarts the refresh timer when one is configured.
func (l *Logger) SetLevel(v level.Level) {
	l.mu.Lock()
	l.level = v
	ev := l.applyLocked()
	l.mu.Unlock()
	l.report(ev)
}

// SetLevelName sets the level by name, see level.FromString.
func (l *Logger) SetLevelName(name string) {
	l.SetLevel(level.FromString(name))
}

// RefreshLevelInterval returns the configured refresh interval.
func (l *Logger) RefreshLevelInterval() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.RefreshLevelInterval
}

// SetRefreshLevelInterval changes the refresh interval and re-applies the
// configuration. Zero or a negative interval stops refreshing.
func (l *Logger) SetRefreshLevelInterval(d time.Duration) {
	l.mu.Lock()
	l.cfg.RefreshLevelInterval = d
	ev := l.applyLocked()
	l.mu.Unlock()
	l.report(ev)
}

// RefreshTimerID returns the id of the active refresh timer, or NoTimer.
func (l *Logger) RefreshTimerID() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer == nil {
		return NoTimer
	}
	return l.timer.id
}

// Close stops the refresh timer. The bound operations keep working.
func (l *Logger) Close() error {
	l.mu.Lock()
	ev := timerEvents{cleared: l.stopTimerLocked(), set: NoTimer}
	l.mu.Unlock()
	l.report(ev)
	return nil
}

type timerEvents struct {
	cleared  int
	set      int
	interval time.Duration
}

// applyLocked rebuilds the bindings, then tears down the refresh timer and
// schedules a new one when an interval is configured. The new id is stored
// only once the timer is scheduled.
func (l *Logger) applyLocked() timerEvents {
	f := Format{
		Styled: l.cfg.styled(),
		Prefix: l.prefix,
		Color:  l.cfg.PrefixColor,
	}
	t := Resolve(l.cfg.Sink, f, l.level)
	if l.cfg.Metrics != nil {
		l.cfg.Metrics.instrument(&t)
	}
	l.table.Store(&t)

	ev := timerEvents{cleared: l.stopTimerLocked(), set: NoTimer}
	if d := l.cfg.RefreshLevelInterval; d > 0 {
		l.timerID++
		id := l.timerID
		stop := l.cfg.Scheduler.Every(d, func() { l.refresh(id) })
		l.timer = &refreshTimer{id: id, stop: stop}
		ev.set, ev.interval = id, d
	}
	return ev
}

func (l *Logger) stopTimerLocked() int {
	old := l.timer
	if old == nil {
		return NoTimer
	}
	l.timer = nil
	old.stop()
	return old.id
}

// refresh is the refresh timer tick. Ticks of a timer that has since been
// replaced or stopped change nothing.
func (l *Logger) refresh(id int) {
	s, err := l.cfg.Store.Get(store.LevelKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) && l.cfg.Debug {
			l.Debug(fmt.Sprintf("refresh level: %v", err))
		}
		return
	}
	next := level.FromString(s)

	l.mu.Lock()
	if l.timer == nil || l.timer.id != id || l.level == next {
		l.mu.Unlock()
		return
	}
	l.level = next
	ev := l.applyLocked()
	l.mu.Unlock()
	l.report(ev)
}

// report logs the timer lifecycle through the freshly installed bindings.
func (l *Logger) report(ev timerEvents) {
	if !l.cfg.Debug {
		return
	}
	if ev.cleared != NoTimer {
		l.Debug(fmt.Sprintf("refresh level timer cleared: id=%d", ev.cleared))
	}
	if ev.set != NoTimer {
		l.Debug(fmt.Sprintf("refresh level timer set: id=%d interval=%s", ev.set, ev.interval))
	}
}

func (l *Logger) call(op sink.Op, args []any) {
	l.table.Load()[op].Call(args...)
}

// Log always reaches the sink when it supports log, whatever the level.
func (l *Logger) Log(args ...any)            { l.call(sink.OpLog, args) }
func (l *Logger) Debug(args ...any)          { l.call(sink.OpDebug, args) }
func (l *Logger) Info(args ...any)           { l.call(sink.OpInfo, args) }
func (l *Logger) Warn(args ...any)           { l.call(sink.OpWarn, args) }
func (l *Logger) Error(args ...any)          { l.call(sink.OpError, args) }
func (l *Logger) Trace(args ...any)          { l.call(sink.OpTrace, args) }
func (l *Logger) Dir(args ...any)            { l.call(sink.OpDir, args) }
func (l *Logger) DirXML(args ...any)         { l.call(sink.OpDirXML, args) }
func (l *Logger) Table(args ...any)          { l.call(sink.OpTable, args) }
func (l *Logger) Group(args ...any)          { l.call(sink.OpGroup, args) }
func (l *Logger) GroupCollapsed(args ...any) { l.call(sink.OpGroupCollapsed, args) }
func (l *Logger) GroupEnd()                  { l.call(sink.OpGroupEnd, nil) }
func (l *Logger) Clear()                     { l.call(sink.OpClear, nil) }
func (l *Logger) Time(label string)          { l.call(sink.OpTime, []any{label}) }
func (l *Logger) TimeEnd(label string)       { l.call(sink.OpTimeEnd, []any{label}) }

func (l *Logger) Assert(cond bool, args ...any) {
	l.call(sink.OpAssert, append([]any{cond}, args...))
}
