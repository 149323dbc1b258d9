package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

func (im *impl) CommitBid(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int, signature []byte) error {
	if !im.gate.Authorize(c, bidder, id, bidAmount, highestBid, signature) {
		return domain.ErrInvalidSignature
	}
	return im.Bid(c, bidder, id, bidAmount, highestBid)
}

func (im *impl) Bid(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int) error {
	c = ctx.WithOperation(c, "bid", bidder.ToLowerStr())
	err := im.atomic(c, func() error {
		return im.bid(c, bidder.ToLower(), id, bidAmount, highestBid)
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id, "amount": bidAmount}).Info("bid rejected")
	}
	return err
}

func (im *impl) bid(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int) error {
	if bidAmount == nil {
		bidAmount = new(big.Int)
	}
	if highestBid == nil {
		highestBid = new(big.Int)
	}

	a, err := im.findAuction(c, id)
	if err != nil {
		return err
	}
	now := im.clock.Now(c)
	if now >= a.Info.EndTime {
		return domain.ErrAuctionEnded
	}
	if a.Claimed {
		return domain.ErrAuctionClaimed
	}
	if allowed, err := im.biddingAllowed(c, a); err != nil {
		return err
	} else if !allowed {
		return domain.ErrBiddingNotAllowed
	}
	if bidAmount.Cmp(domain.Big1) < 0 {
		return domain.ErrInvalidBidAmount
	}
	if highestBid.Cmp(a.HighestBid) != 0 {
		return domain.ErrUnmatchedHighestBid
	}
	if bidAmount.Cmp(a.HighestBid) <= 0 {
		return domain.ErrInsufficientBidAmount
	}
	preset, err := im.presetOf(c, a)
	if err != nil {
		return err
	}
	if !clearsStep(preset, a.HighestBid, bidAmount) {
		return domain.ErrStepMinimum
	}
	if new(big.Int).Add(a.AuctionDebt, a.DueIncentives).Cmp(bidAmount) > 0 {
		return domain.ErrDebtExceedsBid
	}

	if err := im.currency.TransferFrom(c, im.address, bidder, im.address, bidAmount); err != nil {
		c.WithField("err", err).Warn("currency.TransferFrom failed")
		return err
	}

	// the pull may have called back into the engine
	if a, err = im.findAuction(c, id); err != nil {
		return err
	}
	if a.Claimed {
		return domain.ErrAuctionClaimed
	}
	if highestBid.Cmp(a.HighestBid) != 0 {
		return domain.ErrUnmatchedHighestBid
	}

	if extended := extendTo(now, preset.HammerTimeDuration); extended > a.Info.EndTime {
		a.Info.EndTime = extended
		im.emit(auction.EndTimeUpdated{AuctionId: id, EndTime: extended})
	}

	prevDue := new(big.Int).Set(a.DueIncentives)
	prevBidder := a.HighestBidder
	prevBid := new(big.Int).Set(a.HighestBid)

	if !prevBidder.IsEmpty() {
		im.emit(auction.BidRemoved{AuctionId: id, Bidder: prevBidder, Amount: prevBid})
	}
	if prevDue.Sign() != 0 {
		a.AuctionDebt = new(big.Int).Add(a.AuctionDebt, prevDue)
		im.emit(auction.IncentivePaid{AuctionId: id, Earner: prevBidder, Incentive: prevDue})
	}
	im.emit(auction.BidPlaced{AuctionId: id, Bidder: bidder, Amount: new(big.Int).Set(bidAmount)})

	a.DueIncentives = incentive(preset, prevBid, bidAmount)
	a.HighestBidder = bidder
	a.HighestBid = new(big.Int).Set(bidAmount)
	if err := im.store.SaveAuction(c, a); err != nil {
		c.WithField("err", err).Error("store.SaveAuction failed")
		return err
	}

	refund := new(big.Int).Add(prevBid, prevDue)
	if refund.Sign() != 0 {
		if err := im.currency.Transfer(c, im.address, prevBidder, refund); err != nil {
			c.WithFields(log.Fields{"err": err, "to": prevBidder}).Warn("currency.Transfer refund failed")
			return err
		}
	}
	return nil
}

func (im *impl) biddingAllowed(c ctx.Ctx, a *auction.Auction) (bool, error) {
	if !a.BiddingAllowed {
		return false, nil
	}
	contract, err := im.findContract(c, a.ContractRef)
	if err == domain.ErrNoSecondaryMarket {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return contract.BiddingAllowed, nil
}
