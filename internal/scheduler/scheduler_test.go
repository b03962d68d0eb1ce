package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicker_FiresUntilStopped(t *testing.T) {
	var calls atomic.Int32
	stop := NewTicker().Every(5*time.Millisecond, func() {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	stop()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "task fired after stop returned")
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	stop := NewTicker().Every(time.Hour, func() {})

	assert.NotPanics(t, func() {
		stop()
		stop()
	})
}

func TestManual_FireAndStop(t *testing.T) {
	m := NewManual()
	var calls int
	stop := m.Every(time.Minute, func() { calls++ })

	m.Fire()
	m.Fire()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, m.Active())

	stop()
	m.Fire()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, m.Active())
}
