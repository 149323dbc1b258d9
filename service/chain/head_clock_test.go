package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

type fakeHeads struct {
	head  *types.Header
	feed  event.Feed
	subCh chan struct{}
}

func (f *fakeHeads) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if f.head == nil {
		return nil, errors.New("no head")
	}
	return f.head, nil
}

func (f *fakeHeads) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	sub := f.feed.Subscribe(ch)
	close(f.subCh)
	return sub, nil
}

func TestHeadClockFollowsHeads(t *testing.T) {
	client := &fakeHeads{
		head:  &types.Header{Number: big.NewInt(10), Time: 1000},
		subCh: make(chan struct{}),
	}
	c, cancel := ctx.WithCancel(ctx.Background())
	clock := NewHeadClock(&HeadClockCfg{Client: client})
	require.NoError(t, clock.Start(c))
	assert.Equal(t, int64(1000), clock.Now(c))
	assert.Equal(t, domain.BlockNumber(10), clock.BlockNumber(c))

	<-client.subCh
	client.feed.Send(&types.Header{Number: big.NewInt(11), Time: 1012})
	assert.Eventually(t, func() bool { return clock.Now(c) == 1012 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.BlockNumber(11), clock.BlockNumber(c))

	// a stale head is ignored
	client.feed.Send(&types.Header{Number: big.NewInt(9), Time: 990})
	client.feed.Send(&types.Header{Number: big.NewInt(12), Time: 1024})
	assert.Eventually(t, func() bool { return clock.Now(c) == 1024 }, time.Second, 10*time.Millisecond)

	cancel()
	clock.Wait()
}

func TestHeadClockStartFails(t *testing.T) {
	clock := NewHeadClock(&HeadClockCfg{Client: &fakeHeads{subCh: make(chan struct{})}})
	assert.Error(t, clock.Start(ctx.Background()))
}

func TestManualClock(t *testing.T) {
	c := ctx.Background()
	clock := NewManualClock(100, 1)
	clock.Advance(5)
	assert.Equal(t, int64(105), clock.Now(c))
	assert.Equal(t, domain.BlockNumber(2), clock.BlockNumber(c))
	clock.Set(50)
	assert.Equal(t, int64(50), clock.Now(c))
}

func TestWallClock(t *testing.T) {
	c := ctx.Background()
	genesis := time.Unix(1_000, 0)
	clock := NewWallClock(genesis, 12*time.Second)
	clock.now = func() time.Time { return time.Unix(1_000+12*5+3, 0) }
	assert.Equal(t, int64(1_063), clock.Now(c))
	assert.Equal(t, domain.BlockNumber(5), clock.BlockNumber(c))

	clock.now = func() time.Time { return time.Unix(10, 0) }
	assert.Equal(t, domain.BlockNumber(0), clock.BlockNumber(c))
}

type flakyHeads struct {
	fakeHeads
	mu    sync.Mutex
	fails int
}

func (f *flakyHeads) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails > 0 {
		f.fails--
		return nil, errors.New("dial failed")
	}
	return f.fakeHeads.SubscribeNewHead(ctx, ch)
}

func TestHeadClockResubscribes(t *testing.T) {
	client := &flakyHeads{
		fakeHeads: fakeHeads{head: &types.Header{Number: big.NewInt(1), Time: 10}, subCh: make(chan struct{})},
		fails:     2,
	}
	errCh := make(chan error, 1)
	c, cancel := ctx.WithCancel(ctx.Background())
	clock := NewHeadClock(&HeadClockCfg{Client: client, ErrCh: errCh, MaxRetries: 3, RetryStart: time.Millisecond})
	require.NoError(t, clock.Start(c))

	<-client.subCh
	client.feed.Send(&types.Header{Number: big.NewInt(2), Time: 22})
	assert.Eventually(t, func() bool { return clock.Now(c) == 22 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, errCh)

	cancel()
	clock.Wait()
}

func TestHeadClockGivesUp(t *testing.T) {
	client := &flakyHeads{
		fakeHeads: fakeHeads{head: &types.Header{Number: big.NewInt(1), Time: 10}, subCh: make(chan struct{})},
		fails:     5,
	}
	errCh := make(chan error, 1)
	clock := NewHeadClock(&HeadClockCfg{Client: client, ErrCh: errCh, MaxRetries: 1, RetryStart: time.Millisecond})
	require.NoError(t, clock.Start(ctx.Background()))

	clock.Wait()
	assert.Error(t, <-errCh)
}
