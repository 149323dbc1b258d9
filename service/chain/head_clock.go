package chain

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/x-xyz/gbm/base/backoff"
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
)

// HeadClient is the part of ethclient.Client the head clock needs.
type HeadClient interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

var _ HeadClient = (*ethclient.Client)(nil)

type HeadClockCfg struct {
	Client HeadClient
	// ErrCh receives the error that stopped the clock.
	ErrCh chan error
	// MaxRetries bounds consecutive failed subscriptions, 0 stops on the
	// first failure and a negative value retries forever.
	MaxRetries int
	RetryStart time.Duration
	RetryLimit time.Duration
}

// HeadClock follows new chain heads and reports the latest block number
// and timestamp.
type HeadClock struct {
	client    HeadClient
	mutex     sync.RWMutex
	blk       uint64
	time      int64
	errCh     chan error
	stoppedCh chan interface{}

	maxRetries int
	retryStart time.Duration
	retryLimit time.Duration
}

func NewHeadClock(cfg *HeadClockCfg) *HeadClock {
	retryStart := cfg.RetryStart
	if retryStart <= 0 {
		retryStart = time.Second
	}
	return &HeadClock{
		client:    cfg.Client,
		errCh:     cfg.ErrCh,
		stoppedCh: make(chan interface{}),

		maxRetries: cfg.MaxRetries,
		retryStart: retryStart,
		retryLimit: cfg.RetryLimit,
	}
}

var _ domain.BlockClock = (*HeadClock)(nil)

func (g *HeadClock) Now(c ctx.Ctx) int64 {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.time
}

func (g *HeadClock) BlockNumber(c ctx.Ctx) domain.BlockNumber {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return domain.BlockNumber(g.blk)
}

func (g *HeadClock) Start(c ctx.Ctx) error {
	head, err := g.client.HeaderByNumber(c, nil)
	if err != nil {
		c.WithField("err", err).Error("client.HeaderByNumber failed")
		return err
	}
	g.update(head)
	go g.loop(c)
	return nil
}

func (g *HeadClock) Wait() {
	<-g.stoppedCh
}

func (g *HeadClock) update(head *types.Header) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	// heads may arrive out of order after a reorg
	if head.Number.Uint64() < g.blk {
		return
	}
	g.blk = head.Number.Uint64()
	g.time = int64(head.Time)
}

func (g *HeadClock) loop(c ctx.Ctx) {
	defer close(g.stoppedCh)

	bo := backoff.NewExponential(g.retryStart, g.retryLimit, g.maxRetries)
	for {
		err := g.follow(c, bo.Reset)
		if err == nil {
			return
		}
		if bo.Exhausted() {
			g.report(err)
			return
		}
		c.WithFields(log.Fields{"err": err, "attempt": bo.Attempts() + 1, "wait": bo.Next}).Warn("resubscribing to new heads")
		if bo.Wait(c) != nil {
			return
		}
	}
}

// follow consumes heads until the subscription fails. It returns nil once
// c is done.
func (g *HeadClock) follow(c ctx.Ctx, onHead func()) error {
	headCh := make(chan *types.Header)
	sub, err := g.client.SubscribeNewHead(c, headCh)
	if err != nil {
		c.WithField("err", err).Error("client.SubscribeNewHead failed")
		return err
	}
	defer sub.Unsubscribe()
	for {
		select {
		case <-c.Done():
			return nil
		case head := <-headCh:
			g.update(head)
			onHead()
		case err := <-sub.Err():
			c.WithField("err", err).Error("sub.Err()")
			return err
		}
	}
}

func (g *HeadClock) report(err error) {
	if g.errCh == nil {
		return
	}
	select {
	case g.errCh <- err:
	default:
	}
}
