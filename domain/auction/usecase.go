package auction

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

// ProceedsPolicy decides where the net proceeds of a claimed auction go.
type ProceedsPolicy interface {
	Distribute(c ctx.Ctx, a *Auction, proceeds *big.Int) error
}

type CreateParams struct {
	Info        Info
	TokenKind   domain.TokenType
	ContractRef ContractRef
	PresetId    PresetId
}

type ModifyParams struct {
	NewEndTime     int64
	NewTokenAmount uint64
	TokenKind      domain.TokenType
}

type UseCase interface {
	ledger.Receiver

	CommitBid(c ctx.Ctx, bidder domain.Address, id Id, bidAmount, highestBid *big.Int, signature []byte) error
	Bid(c ctx.Ctx, bidder domain.Address, id Id, bidAmount, highestBid *big.Int) error

	Create(c ctx.Ctx, caller domain.Address, params CreateParams) (Id, error)
	Modify(c ctx.Ctx, caller domain.Address, id Id, params ModifyParams) error
	Cancel(c ctx.Ctx, caller domain.Address, id Id) error
	Claim(c ctx.Ctx, caller domain.Address, id Id) (*Settlement, error)
	BatchClaim(c ctx.Ctx, caller domain.Address, ids []Id) ([]*Settlement, error)

	SetBiddingAllowed(c ctx.Ctx, ref ContractRef, allowed bool) error
	SetAuctionBiddingAllowed(c ctx.Ctx, id Id, allowed bool) error
	EnableContract(c ctx.Ctx, ref ContractRef, contract domain.Address) error
	SetPreset(c ctx.Ctx, id PresetId, preset Preset) error

	Reader
}

// Reader exposes every auction and preset field.
type Reader interface {
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	FindPreset(c ctx.Ctx, id PresetId) (*Preset, error)
	FindContract(c ctx.Ctx, ref ContractRef) (*Contract, error)

	Owner(c ctx.Ctx, id Id) (domain.Address, error)
	HighestBid(c ctx.Ctx, id Id) (*big.Int, error)
	HighestBidder(c ctx.Ctx, id Id) (domain.Address, error)
	AuctionDebt(c ctx.Ctx, id Id) (*big.Int, error)
	DueIncentives(c ctx.Ctx, id Id) (*big.Int, error)
	TokenKind(c ctx.Ctx, id Id) (domain.TokenType, error)
	TokenId(c ctx.Ctx, id Id) (domain.TokenId, error)
	StartTime(c ctx.Ctx, id Id) (int64, error)
	EndTime(c ctx.Ctx, id Id) (int64, error)
	HammerTimeDuration(c ctx.Ctx, id Id) (int64, error)
	BidDecimals(c ctx.Ctx, id Id) (uint64, error)
	StepMin(c ctx.Ctx, id Id) (uint64, error)
	IncentiveMin(c ctx.Ctx, id Id) (uint64, error)
	IncentiveMax(c ctx.Ctx, id Id) (uint64, error)
	BidMultiplier(c ctx.Ctx, id Id) (uint64, error)

	// CalculateIncentives evaluates the rebate a bid of newBid would earn
	// against the current highest bid.
	CalculateIncentives(c ctx.Ctx, id Id, newBid *big.Int) (*big.Int, error)
}
