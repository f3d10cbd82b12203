// File: game/loop.go
package game

import (
	"context"
	"sync"
	"time"
)

// FrameScheduler is the host's "call me on the next frame" primitive. A callback
// runs once; it must request another frame to keep running.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time))
}

// FrameLoop is a ticker-driven FrameScheduler. Frame callbacks and posted tasks all run
// on the goroutine calling Run, so the game needs no locking.
type FrameLoop struct {
	period time.Duration

	mu      sync.Mutex
	pending []func(now time.Time)
	tasks   chan func()
}

// NewFrameLoop creates a loop firing every period. Non-positive periods fall back to 16ms.
func NewFrameLoop(period time.Duration) *FrameLoop {
	if period <= 0 {
		period = 16 * time.Millisecond
	}
	return &FrameLoop{
		period: period,
		tasks:  make(chan func(), 64),
	}
}

// RequestFrame queues fn for the next frame. Safe from any goroutine.
func (l *FrameLoop) RequestFrame(fn func(now time.Time)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Post runs task on the loop goroutine before the next frame. It blocks when the
// task queue is full.
func (l *FrameLoop) Post(task func()) {
	if task != nil {
		l.tasks <- task
	}
}

// Run fires frames until no frame is armed any more or ctx is done.
func (l *FrameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			task()
		case now := <-ticker.C:
			l.drainTasks()
			frames := l.take()
			for _, fn := range frames {
				fn(now)
			}
			if l.idle() {
				return nil
			}
		}
	}
}

func (l *FrameLoop) drainTasks() {
	for {
		select {
		case task := <-l.tasks:
			task()
		default:
			return
		}
	}
}

func (l *FrameLoop) take() []func(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	frames := l.pending
	l.pending = nil
	return frames
}

func (l *FrameLoop) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending) == 0
}
