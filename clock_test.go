package aureole

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockStartsOnFirstRead(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewRealClock()
	c.now = func() time.Time { return now }

	now = now.Add(time.Hour)
	assert.Equal(t, 0.0, c.Elapsed())
	now = now.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, c.Elapsed(), epsilon)
	now = now.Add(500 * time.Millisecond)
	assert.InDelta(t, 2.0, c.Elapsed(), epsilon)
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	assert.Equal(t, 0.0, c.Elapsed())
	c.Advance(0.25)
	c.Advance(0.25)
	assert.Equal(t, 0.5, c.Elapsed())
	c.Set(2)
	assert.Equal(t, 2.0, c.Elapsed())
}
