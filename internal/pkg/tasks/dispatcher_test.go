package tasks

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherRunsSubmittedTasks(t *testing.T) {
	d := NewDispatcher(2, 8, zerolog.Nop())

	var ran int64
	for i := 0; i < 10; i++ {
		ok := d.Submit(func(ctx context.Context) {
			atomic.AddInt64(&ran, 1)
		})
		assert.True(t, ok)
	}

	d.Stop()
	assert.Equal(t, int64(10), atomic.LoadInt64(&ran))
}

func TestDispatcherRejectsAfterStop(t *testing.T) {
	d := NewDispatcher(1, 4, zerolog.Nop())
	d.Stop()

	ok := d.Submit(func(ctx context.Context) {})
	assert.False(t, ok)
}

func TestDispatcherStopIsIdempotent(t *testing.T) {
	d := NewDispatcher(1, 4, zerolog.Nop())
	d.Stop()
	d.Stop()
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	d := NewDispatcher(1, 4, zerolog.Nop())

	var ran int64
	d.Submit(func(ctx context.Context) {
		panic("bad task")
	})
	d.Submit(func(ctx context.Context) {
		atomic.AddInt64(&ran, 1)
	})

	d.Stop()
	assert.Equal(t, int64(1), atomic.LoadInt64(&ran))
}

func TestDispatcherDefaultsInvalidSizes(t *testing.T) {
	d := NewDispatcher(0, 0, zerolog.Nop())

	var ran int64
	d.Submit(func(ctx context.Context) {
		atomic.AddInt64(&ran, 1)
	})

	d.Stop()
	assert.Equal(t, int64(1), atomic.LoadInt64(&ran))
}
