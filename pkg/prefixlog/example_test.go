package prefixlog_test

import (
	"fmt"

	"github.com/leosykes117/prefixlog/pkg/console"
	"github.com/leosykes117/prefixlog/pkg/level"
	"github.com/leosykes117/prefixlog/pkg/prefixlog"
)

// printSink prints what it receives, rendered without styles.
type printSink struct{}

func (printSink) Log(args ...any)  { fmt.Println(console.Sprint(false, args...)) }
func (printSink) Warn(args ...any) { fmt.Println(console.Sprint(false, args...)) }

func ExampleNew() {
	l := prefixlog.New("api", prefixlog.WithSink(printSink{}), prefixlog.WithLevel(level.Warn))

	l.Info("not supported by the sink")
	l.Debug("below the threshold")
	l.Warn("disk almost full:", 93, "%")
	l.Log("always shown")
	l.Table([]int{1, 2})
	// Output:
	// [WARN] api disk almost full: 93 %
	// [] api always shown
	// [1 2]
}

func ExampleLogger_SetLevel() {
	l := prefixlog.New("db", prefixlog.WithSink(printSink{}))

	l.Debug("hidden at INFO")
	l.SetLevel(level.Debug)
	l.Debug("shown at DEBUG")
	// Output:
	// [DEBUG] db shown at DEBUG
}
