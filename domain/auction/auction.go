package auction

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/x-xyz/gbm/domain"
)

// Id is the 0x-prefixed hex form of the 32-byte auction identifier.
type Id string

// ContractRef indexes the registry of secondary market item contracts.
type ContractRef uint64

type PresetId uint64

type Info struct {
	TokenId     domain.TokenId   `json:"tokenId" bson:"tokenId"`
	TokenAmount uint64           `json:"tokenAmount" bson:"tokenAmount"`
	TokenKind   domain.TokenType `json:"tokenKind" bson:"tokenKind"`
	StartTime   int64            `json:"startTime" bson:"startTime"`
	EndTime     int64            `json:"endTime" bson:"endTime"`
}

type Auction struct {
	Id              Id             `json:"id"`
	Owner           domain.Address `json:"owner"`
	ContractRef     ContractRef    `json:"contractRef"`
	ContractAddress domain.Address `json:"contractAddress"`
	PresetId        PresetId       `json:"presetId"`
	Info            Info           `json:"info"`
	HighestBidder   domain.Address `json:"highestBidder"`
	HighestBid      *big.Int       `json:"highestBid"`
	AuctionDebt     *big.Int       `json:"auctionDebt"`
	DueIncentives   *big.Int       `json:"dueIncentives"`
	BiddingAllowed  bool           `json:"biddingAllowed"`
	Claimed         bool           `json:"claimed"`
}

// Exists reports whether the record denotes a created auction.
func (a *Auction) Exists() bool {
	return a != nil && !a.Owner.IsEmpty()
}

func (a *Auction) HasBids() bool {
	return a.HighestBid != nil && a.HighestBid.Sign() > 0
}

func (a *Auction) Clone() *Auction {
	if a == nil {
		return nil
	}
	res := *a
	res.HighestBid = cloneBig(a.HighestBid)
	res.AuctionDebt = cloneBig(a.AuctionDebt)
	res.DueIncentives = cloneBig(a.DueIncentives)
	return &res
}

// Proceeds is the part of the highest bid not already owed to earlier
// bidders.
func (a *Auction) Proceeds() *big.Int {
	return new(big.Int).Sub(cloneBig(a.HighestBid), cloneBig(a.AuctionDebt))
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// Preset bundles the economics an auction is evaluated against. Presets
// are read live, so an admin update applies to auctions in flight.
type Preset struct {
	HammerTimeDuration int64  `json:"hammerTimeDuration" bson:"hammerTimeDuration"`
	BidDecimals        uint64 `json:"bidDecimals" bson:"bidDecimals"`
	StepMin            uint64 `json:"stepMin" bson:"stepMin"`
	IncMin             uint64 `json:"incMin" bson:"incMin"`
	IncMax             uint64 `json:"incMax" bson:"incMax"`
	BidMultiplier      uint64 `json:"bidMultiplier" bson:"bidMultiplier"`
}

// Defined uses IncMin as the existence sentinel.
func (p *Preset) Defined() bool {
	return p != nil && p.IncMin >= 1
}

type Contract struct {
	Ref            ContractRef    `json:"ref" bson:"ref"`
	Address        domain.Address `json:"address" bson:"address"`
	BiddingAllowed bool           `json:"biddingAllowed" bson:"biddingAllowed"`
}

type IssuanceKey struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Amount   uint64         `json:"amount" bson:"amount"`
}

// IssuanceCounter tracks auctions per (contract, token, amount) bucket.
// Issued only grows and feeds identifier derivation; Outstanding counts
// auctions still holding custody.
type IssuanceCounter struct {
	Key         IssuanceKey `json:"key" bson:"key"`
	Issued      uint64      `json:"issued" bson:"issued"`
	Outstanding uint64      `json:"outstanding" bson:"outstanding"`
}

// Settlement is the outcome of a claim.
type Settlement struct {
	AuctionId Id             `json:"auctionId"`
	Recipient domain.Address `json:"recipient"`
	Proceeds  *big.Int       `json:"proceeds"`
}

func IdFromHash(h common.Hash) Id {
	return Id(strings.ToLower(h.Hex()))
}

// ParseId accepts the 0x-prefixed 32-byte hex form.
func ParseId(s string) (Id, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return "", domain.ErrBadParamInput
	}
	return IdFromHash(common.BytesToHash(b)), nil
}

func (id Id) Hash() common.Hash {
	return common.HexToHash(string(id))
}
