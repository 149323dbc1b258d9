package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/domain/ledger"
)

type retainInEscrow struct{}

// NewRetainInEscrow leaves claimed proceeds with the engine account.
func NewRetainInEscrow() auction.ProceedsPolicy {
	return retainInEscrow{}
}

func (retainInEscrow) Distribute(c ctx.Ctx, a *auction.Auction, proceeds *big.Int) error {
	return nil
}

type payToSeller struct {
	currency ledger.Currency
	escrow   domain.Address
}

// NewPayToSeller forwards claimed proceeds from escrow to the auction owner.
func NewPayToSeller(currency ledger.Currency, escrow domain.Address) auction.ProceedsPolicy {
	return &payToSeller{currency: currency, escrow: escrow.ToLower()}
}

func (p *payToSeller) Distribute(c ctx.Ctx, a *auction.Auction, proceeds *big.Int) error {
	if proceeds == nil || proceeds.Sign() <= 0 {
		return nil
	}
	return p.currency.Transfer(c, p.escrow, a.Owner, proceeds)
}
