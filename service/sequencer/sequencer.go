package sequencer

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/goroutine"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

var ErrEnginePanic = errors.New("engine call panicked")

type Cfg struct {
	Engine      auction.UseCase
	QueueLength int
	// ScheduleTimeout bounds the wait for a queue slot.
	ScheduleTimeout time.Duration
}

// Sequencer funnels calls from concurrent callers into the engine one at a
// time through a single-worker pool. Callbacks raised by ledgers during a
// call must go to the engine itself, never through the sequencer.
type Sequencer struct {
	engine  auction.UseCase
	pool    *goroutines.Pool
	timeout time.Duration
}

func New(cfg *Cfg) *Sequencer {
	queueLength := cfg.QueueLength
	if queueLength <= 0 {
		queueLength = 1024
	}
	timeout := cfg.ScheduleTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Sequencer{
		engine:  cfg.Engine,
		pool:    goroutines.NewPool(1, goroutines.WithTaskQueueLength(queueLength)),
		timeout: timeout,
	}
}

var _ auction.UseCase = (*Sequencer)(nil)

func (s *Sequencer) Release() {
	s.pool.Release()
}

// do runs fn on the worker and waits for it. A call whose context is done
// before it reaches the worker is dropped.
func (s *Sequencer) do(c ctx.Ctx, fn func()) error {
	var (
		skipped error
		panicEv *goroutine.PanicEvent
	)
	done := make(chan struct{})
	err := s.pool.ScheduleWithTimeout(s.timeout, func() {
		defer close(done)
		if skipped = c.Err(); skipped != nil {
			return
		}
		panicEv = goroutine.Run(fn)
	})
	if err != nil {
		c.WithField("err", err).Error("pool.ScheduleWithTimeout failed")
		return xerrors.Errorf("schedule engine call: %w", err)
	}
	<-done
	if panicEv != nil {
		return fmt.Errorf("%w: %v", ErrEnginePanic, panicEv.Panic)
	}
	return skipped
}

func (s *Sequencer) CommitBid(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int, signature []byte) error {
	var res error
	if err := s.do(c, func() { res = s.engine.CommitBid(c, bidder, id, bidAmount, highestBid, signature) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) Bid(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int) error {
	var res error
	if err := s.do(c, func() { res = s.engine.Bid(c, bidder, id, bidAmount, highestBid) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) Create(c ctx.Ctx, caller domain.Address, params auction.CreateParams) (auction.Id, error) {
	var (
		id  auction.Id
		res error
	)
	if err := s.do(c, func() { id, res = s.engine.Create(c, caller, params) }); err != nil {
		return "", err
	}
	return id, res
}

func (s *Sequencer) Modify(c ctx.Ctx, caller domain.Address, id auction.Id, params auction.ModifyParams) error {
	var res error
	if err := s.do(c, func() { res = s.engine.Modify(c, caller, id, params) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) Cancel(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	var res error
	if err := s.do(c, func() { res = s.engine.Cancel(c, caller, id) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) Claim(c ctx.Ctx, caller domain.Address, id auction.Id) (*auction.Settlement, error) {
	var (
		settlement *auction.Settlement
		res        error
	)
	if err := s.do(c, func() { settlement, res = s.engine.Claim(c, caller, id) }); err != nil {
		return nil, err
	}
	return settlement, res
}

func (s *Sequencer) BatchClaim(c ctx.Ctx, caller domain.Address, ids []auction.Id) ([]*auction.Settlement, error) {
	var (
		settlements []*auction.Settlement
		res         error
	)
	if err := s.do(c, func() { settlements, res = s.engine.BatchClaim(c, caller, ids) }); err != nil {
		return nil, err
	}
	return settlements, res
}

func (s *Sequencer) SetBiddingAllowed(c ctx.Ctx, ref auction.ContractRef, allowed bool) error {
	var res error
	if err := s.do(c, func() { res = s.engine.SetBiddingAllowed(c, ref, allowed) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) SetAuctionBiddingAllowed(c ctx.Ctx, id auction.Id, allowed bool) error {
	var res error
	if err := s.do(c, func() { res = s.engine.SetAuctionBiddingAllowed(c, id, allowed) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) EnableContract(c ctx.Ctx, ref auction.ContractRef, contract domain.Address) error {
	var res error
	if err := s.do(c, func() { res = s.engine.EnableContract(c, ref, contract) }); err != nil {
		return err
	}
	return res
}

func (s *Sequencer) SetPreset(c ctx.Ctx, id auction.PresetId, preset auction.Preset) error {
	var res error
	if err := s.do(c, func() { res = s.engine.SetPreset(c, id, preset) }); err != nil {
		return err
	}
	return res
}

// custody callbacks hold no state and are answered directly

func (s *Sequencer) OnErc721Received(c ctx.Ctx, operator, from domain.Address, tokenId *big.Int, data []byte) [4]byte {
	return s.engine.OnErc721Received(c, operator, from, tokenId, data)
}

func (s *Sequencer) OnErc1155Received(c ctx.Ctx, operator, from domain.Address, tokenId, amount *big.Int, data []byte) [4]byte {
	return s.engine.OnErc1155Received(c, operator, from, tokenId, amount, data)
}

func (s *Sequencer) OnErc1155BatchReceived(c ctx.Ctx, operator, from domain.Address, tokenIds, amounts []*big.Int, data []byte) [4]byte {
	return s.engine.OnErc1155BatchReceived(c, operator, from, tokenIds, amounts, data)
}
