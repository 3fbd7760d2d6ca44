package aureole

import (
	"context"
	"sync"
	"sync/atomic"
)

// Loop is a run/stop handle around UpdateFrame. The host (Ebitengine in
// production, a test otherwise) calls Tick once per display refresh; Stop
// ends the loop and may be called from any goroutine.
type Loop struct {
	app *App

	stopped  atomic.Bool
	ticks    atomic.Uint64
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a running loop for app.
func NewLoop(app *App) *Loop {
	return &Loop{app: app, done: make(chan struct{})}
}

// Tick runs one frame update. It returns false without touching the app
// once the loop is stopped.
func (l *Loop) Tick() bool {
	if l.stopped.Load() {
		return false
	}
	UpdateFrame(l.app)
	l.ticks.Add(1)
	return true
}

// RunTicks runs up to n ticks and returns how many ran.
func (l *Loop) RunTicks(n int) int {
	ran := 0
	for ran < n && l.Tick() {
		ran++
	}
	return ran
}

// Stop ends the loop. Further calls are no-ops.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.done)
	})
}

// Stopped reports whether Stop was called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Bind stops the loop when ctx is cancelled.
func (l *Loop) Bind(ctx context.Context) {
	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-l.done:
		}
	}()
}
