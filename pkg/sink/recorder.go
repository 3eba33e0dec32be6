package sink

import "sync"

var _ Full = (*Recorder)(nil)

// Call is one operation received by a Recorder.
type Call struct {
	Op   Op
	Args []any
}

// Recorder is a sink that records every call it receives.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) record(op Op, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]any, len(args))
	copy(cp, args)
	r.calls = append(r.calls, Call{Op: op, Args: cp})
}

// Calls returns a copy of the recorded calls in arrival order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the arguments of the most recent call of op.
func (r *Recorder) Last(op Op) ([]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Op == op {
			return r.calls[i].Args, true
		}
	}
	return nil, false
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) Log(args ...any)            { r.record(OpLog, args) }
func (r *Recorder) Info(args ...any)           { r.record(OpInfo, args) }
func (r *Recorder) Warn(args ...any)           { r.record(OpWarn, args) }
func (r *Recorder) Error(args ...any)          { r.record(OpError, args) }
func (r *Recorder) Trace(args ...any)          { r.record(OpTrace, args) }
func (r *Recorder) Dir(args ...any)            { r.record(OpDir, args) }
func (r *Recorder) DirXML(args ...any)         { r.record(OpDirXML, args) }
func (r *Recorder) Table(args ...any)          { r.record(OpTable, args) }
func (r *Recorder) Group(args ...any)          { r.record(OpGroup, args) }
func (r *Recorder) GroupCollapsed(args ...any) { r.record(OpGroupCollapsed, args) }
func (r *Recorder) GroupEnd()                  { r.record(OpGroupEnd, nil) }
func (r *Recorder) Clear()                     { r.record(OpClear, nil) }
func (r *Recorder) Time(label string)          { r.record(OpTime, []any{label}) }
func (r *Recorder) TimeEnd(label string)       { r.record(OpTimeEnd, []any{label}) }

func (r *Recorder) Assert(cond bool, args ...any) {
	r.record(OpAssert, append([]any{cond}, args...))
}
