package usecase

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/domain/ledger"
)

type AuctionUseCaseCfg struct {
	// Address is the engine's own account: escrow for bids and custodian
	// of auctioned items.
	Address         domain.Address
	Store           auction.Store
	Currency        ledger.Currency
	Ledgers         ledger.Provider
	Clock           domain.BlockClock
	AuthorityPubKey []byte
	ProceedsPolicy  auction.ProceedsPolicy
	// Persister is optional, committed changes are written through it.
	Persister auction.Persister
	Sinks     []auction.EventSink
	// Journals are external ledgers rolled back together with the store
	// when a call fails.
	Journals []ledger.Journal
}

type impl struct {
	address   domain.Address
	store     auction.Store
	currency  ledger.Currency
	custody   *custody
	clock     domain.BlockClock
	gate      *SignatureGate
	proceeds  auction.ProceedsPolicy
	persister auction.Persister
	sinks     []auction.EventSink
	journals  []ledger.Journal

	// call frame bookkeeping, see atomic
	depth  int
	events []auction.Event
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	proceeds := cfg.ProceedsPolicy
	if proceeds == nil {
		proceeds = NewRetainInEscrow()
	}
	return &impl{
		address:   cfg.Address.ToLower(),
		store:     cfg.Store,
		currency:  cfg.Currency,
		custody:   newCustody(cfg.Address.ToLower(), cfg.Ledgers),
		clock:     cfg.Clock,
		gate:      NewSignatureGate(cfg.AuthorityPubKey),
		proceeds:  proceeds,
		persister: cfg.Persister,
		sinks:     cfg.Sinks,
		journals:  cfg.Journals,
	}
}

type frame struct {
	store    int
	journals []int
	events   int
}

func (im *impl) begin() frame {
	f := frame{
		store:    im.store.Snapshot(),
		journals: make([]int, len(im.journals)),
		events:   len(im.events),
	}
	for i, j := range im.journals {
		f.journals[i] = j.Snapshot()
	}
	return f
}

func (im *impl) revert(f frame) {
	im.store.RevertToSnapshot(f.store)
	for i, j := range im.journals {
		j.RevertToSnapshot(f.journals[i])
	}
	im.events = im.events[:f.events]
}

// atomic runs fn as one call frame. A failing frame is reverted as a
// whole, including transfers on journaled ledgers. Reentrant calls made
// by a ledger open nested frames; only the outermost frame commits state
// and publishes events.
func (im *impl) atomic(c ctx.Ctx, fn func() error) (err error) {
	f := im.begin()
	im.depth++
	defer func() {
		im.depth--
		if p := recover(); p != nil {
			im.revert(f)
			panic(p)
		}
	}()

	if err = fn(); err != nil {
		im.revert(f)
		return err
	}
	if im.depth > 1 {
		return nil
	}
	return im.commit(c, f)
}

func (im *impl) commit(c ctx.Ctx, f frame) error {
	if im.persister != nil {
		if err := im.persister.Persist(c, im.store.Changes(c)); err != nil {
			c.WithField("err", err).Error("persister.Persist failed")
			im.revert(f)
			return xerrors.Errorf("persist auction state: %w", err)
		}
	}
	im.store.Commit(c)
	for _, j := range im.journals {
		if committer, ok := j.(interface{ Commit() }); ok {
			committer.Commit()
		}
	}

	events := im.events
	im.events = nil
	for _, sink := range im.sinks {
		sink.Publish(c, events)
	}
	return nil
}

func (im *impl) emit(e auction.Event) {
	im.events = append(im.events, e)
}

// findAuction maps a missing or zero-owner record to ErrAuctionNotExist.
func (im *impl) findAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.store.FindAuction(c, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !a.Exists()) {
		return nil, domain.ErrAuctionNotExist
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("store.FindAuction failed")
		return nil, err
	}
	return a, nil
}

// presetOf re-reads the auction's preset so admin updates apply live.
func (im *impl) presetOf(c ctx.Ctx, a *auction.Auction) (*auction.Preset, error) {
	p, err := im.store.FindPreset(c, a.PresetId)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !p.Defined()) {
		return nil, domain.ErrUndefinedPreset
	} else if err != nil {
		return nil, err
	}
	return p, nil
}

func (im *impl) findContract(c ctx.Ctx, ref auction.ContractRef) (*auction.Contract, error) {
	contract, err := im.store.FindContract(c, ref)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && contract.Address.IsEmpty()) {
		return nil, domain.ErrNoSecondaryMarket
	} else if err != nil {
		return nil, err
	}
	return contract, nil
}
