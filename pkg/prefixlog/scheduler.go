package prefixlog

import (
	"sync"
	"time"
)

// Scheduler runs fn every d until the returned stop function is called.
// stop must not wait for a running fn, since fn may itself call stop.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// TickerScheduler runs each schedule on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	t := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
