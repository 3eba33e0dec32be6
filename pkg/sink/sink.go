// Package sink describes the console-like objects a prefixed logger writes to.
//
// A sink is any value. Every console operation it supports is detected through
// one of the single-method interfaces below, so a sink may implement as few or
// as many of them as it likes.
package sink

// Op names a console operation.
type Op int

const (
	OpLog Op = iota
	OpDebug
	OpInfo
	OpWarn
	OpError
	OpTrace
	OpDir
	OpDirXML
	OpTable
	OpAssert
	OpClear
	OpGroup
	OpGroupCollapsed
	OpGroupEnd
	OpTime
	OpTimeEnd

	// NumOps is the number of console operations.
	NumOps int = iota
)

var opNames = [NumOps]string{
	"log", "debug", "info", "warn", "error", "trace", "dir", "dirxml", "table",
	"assert", "clear", "group", "groupCollapsed", "groupEnd", "time", "timeEnd",
}

// String returns the console name of the operation, e.g. "groupCollapsed".
func (o Op) String() string {
	if o < 0 || int(o) >= NumOps {
		return "unknown"
	}
	return opNames[o]
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	ops := make([]Op, NumOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// ParseOp returns the operation with the given console name.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return 0, false
}

type Logger interface {
	Log(args ...any)
}

type Infoer interface {
	Info(args ...any)
}

type Warner interface {
	Warn(args ...any)
}

type Errorer interface {
	Error(args ...any)
}

type Tracer interface {
	Trace(args ...any)
}

type Dirrer interface {
	Dir(args ...any)
}

type DirXMLer interface {
	DirXML(args ...any)
}

type Tabler interface {
	Table(args ...any)
}

type Asserter interface {
	Assert(cond bool, args ...any)
}

type Clearer interface {
	Clear()
}

type Grouper interface {
	Group(args ...any)
}

type GroupCollapser interface {
	GroupCollapsed(args ...any)
}

type GroupEnder interface {
	GroupEnd()
}

type Timer interface {
	Time(label string)
}

type TimeEnder interface {
	TimeEnd(label string)
}

// Full is implemented by sinks that support every operation.
type Full interface {
	Logger
	Infoer
	Warner
	Errorer
	Tracer
	Dirrer
	DirXMLer
	Tabler
	Asserter
	Clearer
	Grouper
	GroupCollapser
	GroupEnder
	Timer
	TimeEnder
}
