package pacer

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Task is a handle to a repeating scheduled function.
type Task interface {
	// Stop cancels the task. It is safe to call more than once.
	Stop()
}

// Scheduler runs fn every interval until the returned Task is stopped.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type tickerScheduler struct{}

// TickerScheduler returns a Scheduler that fires on a time.Ticker goroutine.
func TickerScheduler() Scheduler { return tickerScheduler{} }

func (tickerScheduler) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			fn()
		}
	}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
