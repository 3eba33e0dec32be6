package console

import (
	"context"
	"sync/atomic"
)

// std is the console a prefixed logger writes to when it is given no sink,
// the counterpart of a browser's global console object.
var std atomic.Pointer[Console]

// Init replaces the default console with one built from opts and returns it.
// Loggers created afterwards pick it up; existing loggers keep their sink.
func Init(opts ...Option) *Console {
	c := New(opts...)
	std.Store(c)
	return c
}

// Replace installs c as the default console and returns the previous one,
// which is nil when none was in use yet.
func Replace(c *Console) *Console {
	return std.Swap(c)
}

// L returns the default console, a development console on stdout until Init
// or Replace installs another.
func L() *Console {
	if c := std.Load(); c != nil {
		return c
	}
	std.CompareAndSwap(nil, NewDevelopment())
	return std.Load()
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying c.
func WithContext(ctx context.Context, c *Console) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the console carried by ctx, or the default console.
func FromContext(ctx context.Context) *Console {
	if ctx != nil {
		if c, ok := ctx.Value(ctxKey{}).(*Console); ok && c != nil {
			return c
		}
	}
	return L()
}
