package aureole

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopRunTicks(t *testing.T) {
	a, clk := newTestApp(t)
	l := NewLoop(a)
	clk.Set(2)
	assert.Equal(t, 5, l.RunTicks(5))
	assert.Equal(t, uint64(5), l.Ticks())
	assert.Equal(t, uint64(5), a.Frame.Ticks)
	assert.Equal(t, 1.0, a.Rings[0].Rotation.Y)
}

func TestLoopStop(t *testing.T) {
	a, _ := newTestApp(t)
	l := NewLoop(a)
	l.RunTicks(2)
	l.Stop()
	l.Stop()
	assert.True(t, l.Stopped())
	assert.False(t, l.Tick())
	assert.Zero(t, l.RunTicks(10))
	assert.Equal(t, uint64(2), l.Ticks())
	assert.Equal(t, uint64(2), a.Frame.Ticks)

	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestLoopBindCancel(t *testing.T) {
	a, _ := newTestApp(t)
	l := NewLoop(a)
	ctx, cancel := context.WithCancel(context.Background())
	l.Bind(ctx)
	assert.True(t, l.Tick())

	cancel()
	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on cancel")
	}
	assert.False(t, l.Tick())
}

func TestLoopBindBackground(t *testing.T) {
	a, _ := newTestApp(t)
	l := NewLoop(a)
	l.Bind(context.Background())
	assert.Equal(t, 3, l.RunTicks(3))
	assert.False(t, l.Stopped())
}

func TestLoopStopFromGoroutine(t *testing.T) {
	a, _ := newTestApp(t)
	l := NewLoop(a)
	go l.Stop()
	<-l.Done()
	assert.True(t, l.Stopped())
}
