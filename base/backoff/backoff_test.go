package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond, -1)
	assert.Equal(t, time.Millisecond, b.Next)

	for _, want := range []time.Duration{2, 4, 4} {
		assert.NoError(t, b.Wait(context.Background()))
		assert.Equal(t, want*time.Millisecond, b.Next)
	}
	assert.Equal(t, 3, b.Attempts())

	b.Reset()
	assert.Equal(t, time.Millisecond, b.Next)
	assert.Equal(t, 0, b.Attempts())
}

func TestExhausted(t *testing.T) {
	b := NewExponential(time.Millisecond, 0, 1)
	assert.False(t, b.Exhausted())
	assert.NoError(t, b.Wait(context.Background()))
	assert.True(t, b.Exhausted())
	assert.ErrorIs(t, b.Wait(context.Background()), ErrExhausted)

	none := NewExponential(time.Hour, 0, 0)
	assert.ErrorIs(t, none.Wait(context.Background()), ErrExhausted)
}

func TestWaitCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0, -1)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Wait(c), context.Canceled)
	assert.Equal(t, 0, b.Attempts())
}
