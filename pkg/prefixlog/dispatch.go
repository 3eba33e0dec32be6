package prefixlog

import (
	"fmt"

	"github.com/leosykes117/prefixlog/pkg/level"
	"github.com/leosykes117/prefixlog/pkg/sink"
)

// Func is a bound console operation.
type Func func(args ...any)

func noop(...any) {}

// Route tells where a bound operation ends up.
type Route int

const (
	// RouteNoop drops the call.
	RouteNoop Route = iota
	// RouteSink calls the sink operation the descriptor names.
	RouteSink
	// RouteFallback calls the sink's Log in place of a missing operation.
	RouteFallback
)

func (r Route) String() string {
	switch r {
	case RouteSink:
		return "sink"
	case RouteFallback:
		return "fallback"
	}
	return "noop"
}

// Binding is one resolved operation.
type Binding struct {
	Route Route
	Call  Func
	// Suppressed is set on no-ops the sink could serve but the level forbids.
	Suppressed bool
}

// Table holds a binding for every console operation, indexed by sink.Op.
type Table [sink.NumOps]Binding

// Route returns the route of op.
func (t *Table) Route(op sink.Op) Route {
	return t[op].Route
}

// Format is the prefix decoration put in front of leveled messages.
type Format struct {
	Styled bool
	Prefix string
	Color  string
}

// Style returns the CSS applied to the prefix.
func (f Format) Style() string {
	return "color:" + f.Color + ";font-weight:bold;"
}

// Lead returns the arguments placed before the caller's for tag.
func (f Format) Lead(tag string) []any {
	if f.Styled {
		return []any{"[%s] %c%s%c", tag, f.Style(), f.Prefix, ""}
	}
	return []any{"[%s] %s", tag, f.Prefix}
}

// descriptor says how one operation is resolved against a sink.
type descriptor struct {
	op       sink.Op
	tag      string
	decorate bool
	gated    bool
	gate     level.Level
	fallback bool
	resolve  func(s any) Func
}

var descriptors = [...]descriptor{
	{op: sink.OpLog, tag: "", decorate: true, resolve: logFunc},
	{op: sink.OpDebug, tag: "DEBUG", decorate: true, gated: true, gate: level.Debug, resolve: logFunc},
	{op: sink.OpInfo, tag: "INFO", decorate: true, gated: true, gate: level.Info, resolve: infoFunc},
	{op: sink.OpWarn, tag: "WARN", decorate: true, gated: true, gate: level.Warn, resolve: warnFunc},
	{op: sink.OpError, tag: "ERROR", decorate: true, gated: true, gate: level.Error, resolve: errorFunc},
	{op: sink.OpTrace, tag: "TRACE", decorate: true, resolve: traceFunc},
	{op: sink.OpDir, fallback: true, resolve: dirFunc},
	{op: sink.OpDirXML, fallback: true, resolve: dirXMLFunc},
	{op: sink.OpTable, fallback: true, resolve: tableFunc},
	{op: sink.OpAssert, resolve: assertFunc},
	{op: sink.OpClear, resolve: clearFunc},
	{op: sink.OpGroup, tag: "INFO", decorate: true, resolve: groupFunc},
	{op: sink.OpGroupCollapsed, tag: "INFO", decorate: true, resolve: groupCollapsedFunc},
	{op: sink.OpGroupEnd, resolve: groupEndFunc},
	{op: sink.OpTime, resolve: timeFunc},
	{op: sink.OpTimeEnd, resolve: timeEndFunc},
}

// Resolve binds every operation against s for the threshold lvl. Only debug,
// info, warn and error are gated by the level.
func Resolve(s any, f Format, lvl level.Level) Table {
	var t Table
	for _, d := range descriptors {
		route := RouteSink
		fn := d.resolve(s)
		if fn == nil && d.fallback {
			fn, route = logFunc(s), RouteFallback
		}

		switch {
		case fn == nil:
			t[d.op] = Binding{Route: RouteNoop, Call: noop}
		case d.gated && !lvl.Enabled(d.gate):
			t[d.op] = Binding{Route: RouteNoop, Call: noop, Suppressed: true}
		default:
			if d.decorate {
				fn = decorate(fn, f.Lead(d.tag))
			}
			t[d.op] = Binding{Route: route, Call: fn}
		}
	}
	return t
}

func decorate(fn Func, lead []any) Func {
	return func(args ...any) {
		out := make([]any, 0, len(lead)+len(args))
		out = append(out, lead...)
		fn(append(out, args...)...)
	}
}

func label(args []any) string {
	if len(args) == 0 {
		return ""
	}
	if s, ok := args[0].(string); ok {
		return s
	}
	return fmt.Sprint(args[0])
}

func logFunc(s any) Func {
	if v, ok := s.(sink.Logger); ok {
		return v.Log
	}
	return nil
}

func infoFunc(s any) Func {
	if v, ok := s.(sink.Infoer); ok {
		return v.Info
	}
	return nil
}

func warnFunc(s any) Func {
	if v, ok := s.(sink.Warner); ok {
		return v.Warn
	}
	return nil
}

func errorFunc(s any) Func {
	if v, ok := s.(sink.Errorer); ok {
		return v.Error
	}
	return nil
}

func traceFunc(s any) Func {
	if v, ok := s.(sink.Tracer); ok {
		return v.Trace
	}
	return nil
}

func dirFunc(s any) Func {
	if v, ok := s.(sink.Dirrer); ok {
		return v.Dir
	}
	return nil
}

func dirXMLFunc(s any) Func {
	if v, ok := s.(sink.DirXMLer); ok {
		return v.DirXML
	}
	return nil
}

func tableFunc(s any) Func {
	if v, ok := s.(sink.Tabler); ok {
		return v.Table
	}
	return nil
}

func assertFunc(s any) Func {
	v, ok := s.(sink.Asserter)
	if !ok {
		return nil
	}
	return func(args ...any) {
		if len(args) == 0 {
			v.Assert(false)
			return
		}
		cond, _ := args[0].(bool)
		v.Assert(cond, args[1:]...)
	}
}

func clearFunc(s any) Func {
	v, ok := s.(sink.Clearer)
	if !ok {
		return nil
	}
	return func(...any) { v.Clear() }
}

func groupFunc(s any) Func {
	if v, ok := s.(sink.Grouper); ok {
		return v.Group
	}
	return nil
}

func groupCollapsedFunc(s any) Func {
	if v, ok := s.(sink.GroupCollapser); ok {
		return v.GroupCollapsed
	}
	return nil
}

func groupEndFunc(s any) Func {
	v, ok := s.(sink.GroupEnder)
	if !ok {
		return nil
	}
	return func(...any) { v.GroupEnd() }
}

func timeFunc(s any) Func {
	v, ok := s.(sink.Timer)
	if !ok {
		return nil
	}
	return func(args ...any) { v.Time(label(args)) }
}

func timeEndFunc(s any) Func {
	v, ok := s.(sink.TimeEnder)
	if !ok {
		return nil
	}
	return func(args ...any) { v.TimeEnd(label(args)) }
}
