// Package script plays line-oriented scripts of console calls against a
// prefixed logger. Each line holds an operation name followed by its
// arguments, split with shell quoting rules:
//
//	# comments and blank lines are skipped
//	level debug
//	info "user %s logged in" alice
//	time load
//	sleep 250ms
//	timeEnd load
//	assert false "cache is cold"
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/hashicorp/go-multierror"

	"github.com/leosykes117/prefixlog/pkg/prefixlog"
	"github.com/leosykes117/prefixlog/pkg/sink"
)

// Player runs scripts against a logger.
type Player struct {
	l     *prefixlog.Logger
	sleep func(ctx context.Context, d time.Duration) error
}

func NewPlayer(l *prefixlog.Logger) *Player {
	return &Player{l: l, sleep: sleepContext}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run plays every line of r. A bad line is reported and skipped; the
// returned error aggregates all of them. Run stops early when ctx is done.
func (p *Player) Run(ctx context.Context, r io.Reader) error {
	var result *multierror.Error

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.exec(ctx, line); err != nil {
			if ctx.Err() != nil {
				return multierror.Append(result, err).ErrorOrNil()
			}
			result = multierror.Append(result, fmt.Errorf("line %d: %w", n, err))
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("read script: %w", err))
	}
	return result.ErrorOrNil()
}

func (p *Player) exec(ctx context.Context, line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("split %q: %w", line, err)
	}
	if len(words) == 0 {
		return nil
	}
	name, rest := words[0], words[1:]

	switch name {
	case "level":
		if len(rest) != 1 {
			return fmt.Errorf("level takes one argument, got %d", len(rest))
		}
		p.l.SetLevelName(rest[0])
		return nil
	case "sleep":
		if len(rest) != 1 {
			return fmt.Errorf("sleep takes one argument, got %d", len(rest))
		}
		d, err := time.ParseDuration(rest[0])
		if err != nil {
			return fmt.Errorf("sleep: %w", err)
		}
		return p.sleep(ctx, d)
	}

	op, ok := sink.ParseOp(name)
	if !ok {
		return fmt.Errorf("unknown operation %q", name)
	}
	args := convert(rest)

	switch op {
	case sink.OpLog:
		p.l.Log(args...)
	case sink.OpDebug:
		p.l.Debug(args...)
	case sink.OpInfo:
		p.l.Info(args...)
	case sink.OpWarn:
		p.l.Warn(args...)
	case sink.OpError:
		p.l.Error(args...)
	case sink.OpTrace:
		p.l.Trace(args...)
	case sink.OpDir:
		p.l.Dir(args...)
	case sink.OpDirXML:
		p.l.DirXML(args...)
	case sink.OpTable:
		p.l.Table(args...)
	case sink.OpGroup:
		p.l.Group(args...)
	case sink.OpGroupCollapsed:
		p.l.GroupCollapsed(args...)
	case sink.OpGroupEnd:
		p.l.GroupEnd()
	case sink.OpClear:
		p.l.Clear()
	case sink.OpAssert:
		if len(args) == 0 {
			return fmt.Errorf("assert needs a condition")
		}
		cond, ok := args[0].(bool)
		if !ok {
			return fmt.Errorf("assert condition %q is not a bool", rest[0])
		}
		p.l.Assert(cond, args[1:]...)
	case sink.OpTime:
		p.l.Time(first(rest))
	case sink.OpTimeEnd:
		p.l.TimeEnd(first(rest))
	}
	return nil
}

func first(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// convert turns words that look like integers, finite floats or booleans
// into values of those types. NaN and Inf spellings stay strings.
func convert(words []string) []any {
	out := make([]any, len(words))
	for i, w := range words {
		if n, err := strconv.ParseInt(w, 10, 64); err == nil {
			out[i] = n
			continue
		}
		if f, err := strconv.ParseFloat(w, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			out[i] = f
			continue
		}
		if b, err := strconv.ParseBool(w); err == nil && (w == "true" || w == "false") {
			out[i] = b
			continue
		}
		out[i] = w
	}
	return out
}
