package auction

import (
	"math/big"

	"github.com/x-xyz/gbm/domain"
)

type EventType string

const (
	EventEndTimeUpdated   EventType = "Auction_EndTimeUpdated"
	EventBidRemoved       EventType = "Auction_BidRemoved"
	EventIncentivePaid    EventType = "Auction_IncentivePaid"
	EventBidPlaced        EventType = "Auction_BidPlaced"
	EventInitialized      EventType = "Auction_Initialized"
	EventStartTimeUpdated EventType = "Auction_StartTimeUpdated"
	EventItemClaimed      EventType = "Auction_ItemClaimed"
	EventCancelled        EventType = "AuctionCancelled"
	EventBiddingAllowed   EventType = "Contract_BiddingAllowed"
)

type Event interface {
	Type() EventType
}

type EndTimeUpdated struct {
	AuctionId Id
	EndTime   int64
}

type BidRemoved struct {
	AuctionId Id
	Bidder    domain.Address
	Amount    *big.Int
}

type IncentivePaid struct {
	AuctionId Id
	Earner    domain.Address
	Incentive *big.Int
}

type BidPlaced struct {
	AuctionId Id
	Bidder    domain.Address
	Amount    *big.Int
}

type Initialized struct {
	AuctionId Id
	TokenId   domain.TokenId
	Amount    uint64
	Contract  domain.Address
	TokenKind domain.TokenType
	PresetId  PresetId
}

type StartTimeUpdated struct {
	AuctionId Id
	StartTime int64
	EndTime   int64
}

type ItemClaimed struct {
	AuctionId Id
	Recipient domain.Address
	Proceeds  *big.Int
}

type Cancelled struct {
	AuctionId Id
	TokenId   domain.TokenId
}

// BiddingAllowed is raised for a contract toggle, or for a single auction
// when AuctionId is set.
type BiddingAllowed struct {
	ContractRef ContractRef
	Contract    domain.Address
	AuctionId   Id
	Allowed     bool
}

func (EndTimeUpdated) Type() EventType   { return EventEndTimeUpdated }
func (BidRemoved) Type() EventType       { return EventBidRemoved }
func (IncentivePaid) Type() EventType    { return EventIncentivePaid }
func (BidPlaced) Type() EventType        { return EventBidPlaced }
func (Initialized) Type() EventType      { return EventInitialized }
func (StartTimeUpdated) Type() EventType { return EventStartTimeUpdated }
func (ItemClaimed) Type() EventType      { return EventItemClaimed }
func (Cancelled) Type() EventType        { return EventCancelled }
func (BiddingAllowed) Type() EventType   { return EventBiddingAllowed }
