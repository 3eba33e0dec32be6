package level

import (
	"strconv"
	"strings"
)

// Level is the severity threshold of a logger. Higher values are more severe.
type Level int

const (
	Debug Level = 0
	Info  Level = 1
	Warn  Level = 2
	Error Level = 3
	// Off is above every active level and silences all leveled output.
	Off Level = 9
)

var names = map[string]Level{
	"DEBUG": Debug,
	"INFO":  Info,
	"WARN":  Warn,
	"ERROR": Error,
	"OFF":   Off,
}

// All returns the named levels in priority order.
func All() []Level {
	return []Level{Debug, Info, Warn, Error, Off}
}

// FromString looks up a level by its upper-cased name. Surrounding space is
// not stripped. Empty or unknown names resolve to Debug; it never fails.
func FromString(s string) Level {
	if l, ok := names[strings.ToUpper(s)]; ok {
		return l
	}
	return Debug
}

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Off:
		return "OFF"
	}
	return strconv.Itoa(int(l))
}

// Enabled reports whether a message of severity msg passes the threshold l.
func (l Level) Enabled(msg Level) bool {
	return l <= msg
}
