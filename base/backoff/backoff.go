package backoff

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned by Wait once the attempt budget is spent.
var ErrExhausted = errors.New("backoff attempts exhausted")

// Backoff produces doubling waits between start and limit. A limit of 0
// leaves the wait unbounded.
type Backoff struct {
	Next        time.Duration
	start       time.Duration
	limit       time.Duration
	attempts    int
	maxAttempts int
}

// NewExponential returns a Backoff allowing maxAttempts waits between
// resets; a negative maxAttempts never runs out.
func NewExponential(start, limit time.Duration, maxAttempts int) *Backoff {
	b := &Backoff{start: start, limit: limit, maxAttempts: maxAttempts}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.attempts = 0
	b.Next = b.duration()
}

func (b *Backoff) Attempts() int {
	return b.attempts
}

func (b *Backoff) Exhausted() bool {
	return b.maxAttempts >= 0 && b.attempts >= b.maxAttempts
}

// Wait sleeps for Next and advances to the following duration. It returns
// early with the context error, or with ErrExhausted without sleeping.
func (b *Backoff) Wait(c context.Context) error {
	if b.Exhausted() {
		return ErrExhausted
	}
	timer := time.NewTimer(b.Next)
	defer timer.Stop()
	select {
	case <-c.Done():
		return c.Err()
	case <-timer.C:
	}
	b.attempts++
	b.Next = b.duration()
	return nil
}

func (b *Backoff) duration() time.Duration {
	d := b.start
	for i := 0; i < b.attempts; i++ {
		if b.limit > 0 && d >= b.limit {
			break
		}
		d *= 2
	}
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}
