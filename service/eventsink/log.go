package eventsink

import (
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain/auction"
)

type logSink struct {
	decimals int32
}

// NewLogSink writes every committed event as one structured log line.
func NewLogSink(currencyDecimals int32) auction.EventSink {
	return &logSink{decimals: currencyDecimals}
}

func (s *logSink) Publish(c ctx.Ctx, events []auction.Event) {
	for _, e := range events {
		c.WithFields(s.fields(e)).Info("auction event")
	}
}

func (s *logSink) fields(e auction.Event) log.Fields {
	f := log.Fields{"event": string(e.Type())}
	switch ev := e.(type) {
	case auction.EndTimeUpdated:
		f["auctionId"], f["endTime"] = ev.AuctionId, ev.EndTime
	case auction.BidRemoved:
		f["auctionId"], f["bidder"], f["amount"] = ev.AuctionId, ev.Bidder, displayAmount(ev.Amount, s.decimals).String()
	case auction.IncentivePaid:
		f["auctionId"], f["earner"], f["incentive"] = ev.AuctionId, ev.Earner, displayAmount(ev.Incentive, s.decimals).String()
	case auction.BidPlaced:
		f["auctionId"], f["bidder"], f["amount"] = ev.AuctionId, ev.Bidder, displayAmount(ev.Amount, s.decimals).String()
	case auction.Initialized:
		f["auctionId"], f["tokenId"], f["amount"] = ev.AuctionId, ev.TokenId, ev.Amount
		f["contract"], f["tokenKind"], f["presetId"] = ev.Contract, ev.TokenKind, ev.PresetId
	case auction.StartTimeUpdated:
		f["auctionId"], f["startTime"], f["endTime"] = ev.AuctionId, ev.StartTime, ev.EndTime
	case auction.ItemClaimed:
		f["auctionId"], f["recipient"], f["proceeds"] = ev.AuctionId, ev.Recipient, displayAmount(ev.Proceeds, s.decimals).String()
	case auction.Cancelled:
		f["auctionId"], f["tokenId"] = ev.AuctionId, ev.TokenId
	case auction.BiddingAllowed:
		f["contractRef"], f["contract"], f["allowed"] = ev.ContractRef, ev.Contract, ev.Allowed
		if ev.AuctionId != "" {
			f["auctionId"] = ev.AuctionId
		}
	}
	return f
}
