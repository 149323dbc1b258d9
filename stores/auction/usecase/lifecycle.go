package usecase

import (
	"math/big"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

func (im *impl) Create(c ctx.Ctx, caller domain.Address, params auction.CreateParams) (auction.Id, error) {
	c = ctx.WithOperation(c, "create", caller.ToLowerStr())
	var id auction.Id
	err := im.atomic(c, func() error {
		var err error
		id, err = im.create(c, caller.ToLower(), params)
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "params": params}).Info("create rejected")
		return "", err
	}
	return id, nil
}

func (im *impl) create(c ctx.Ctx, owner domain.Address, params auction.CreateParams) (auction.Id, error) {
	info := params.Info
	info.TokenKind = params.TokenKind

	preset, err := im.store.FindPreset(c, params.PresetId)
	if err != nil || !preset.Defined() {
		return "", domain.ErrUndefinedPreset
	}
	now := im.clock.Now(c)
	if info.StartTime <= now || info.StartTime <= info.EndTime {
		return "", domain.ErrInvalidStartTime
	}
	contract, err := im.findContract(c, params.ContractRef)
	if err != nil {
		return "", err
	}
	tokenId, ok := info.TokenId.ToBig()
	if !ok || tokenId.Sign() < 0 {
		return "", domain.ErrBadParamInput
	}

	var nonce uint64
	switch info.TokenKind {
	case domain.TokenType721:
		info.TokenAmount = 1
		nonce = 1
	case domain.TokenType1155:
		if info.TokenAmount < 1 {
			return "", domain.ErrInvalidTokenAmount
		}
	default:
		return "", domain.ErrUnsupportedTokenType
	}

	if err := im.custody.checkHolder(c, info.TokenKind, contract.Address, owner, tokenId, info.TokenAmount); err != nil {
		return "", err
	}
	if err := im.custody.deposit(c, info.TokenKind, contract.Address, owner, tokenId, info.TokenAmount); err != nil {
		c.WithField("err", err).Warn("custody.deposit failed")
		return "", err
	}

	if info.TokenKind == domain.TokenType1155 {
		key := auction.IssuanceKey{Contract: contract.Address, TokenId: info.TokenId, Amount: info.TokenAmount}
		counter, err := im.store.FindCounter(c, key)
		if err != nil {
			return "", err
		}
		nonce = counter.Issued
		counter.Issued++
		counter.Outstanding++
		if err := im.store.SaveCounter(c, *counter); err != nil {
			return "", err
		}
	}

	id, err := DeriveAuctionId(contract.Address, tokenId, info.TokenKind, im.clock.BlockNumber(c), nonce)
	if err != nil {
		return "", err
	}
	if existing, err := im.store.FindAuction(c, id); err == nil && existing.Exists() {
		return "", domain.ErrAuctionExists
	}

	a := &auction.Auction{
		Id:              id,
		Owner:           owner,
		ContractRef:     params.ContractRef,
		ContractAddress: contract.Address,
		PresetId:        params.PresetId,
		Info:            info,
		HighestBidder:   domain.EmptyAddress,
		HighestBid:      new(big.Int),
		AuctionDebt:     new(big.Int),
		DueIncentives:   new(big.Int),
		BiddingAllowed:  true,
	}
	if err := im.store.SaveAuction(c, a); err != nil {
		c.WithField("err", err).Error("store.SaveAuction failed")
		return "", err
	}

	im.emit(auction.Initialized{
		AuctionId: id,
		TokenId:   info.TokenId,
		Amount:    info.TokenAmount,
		Contract:  contract.Address,
		TokenKind: info.TokenKind,
		PresetId:  params.PresetId,
	})
	im.emit(auction.StartTimeUpdated{AuctionId: id, StartTime: info.StartTime, EndTime: info.EndTime})
	return id, nil
}

func (im *impl) Modify(c ctx.Ctx, caller domain.Address, id auction.Id, params auction.ModifyParams) error {
	c = ctx.WithOperation(c, "modify", caller.ToLowerStr())
	err := im.atomic(c, func() error {
		return im.modify(c, caller.ToLower(), id, params)
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Info("modify rejected")
	}
	return err
}

func (im *impl) modify(c ctx.Ctx, caller domain.Address, id auction.Id, params auction.ModifyParams) error {
	a, err := im.findAuction(c, id)
	if err != nil {
		return err
	}
	if !a.Owner.Equals(caller) {
		return domain.ErrNotAuctionOwner
	}
	if a.Claimed {
		return domain.ErrAuctionClaimed
	}
	if im.clock.Now(c) >= a.Info.EndTime {
		return domain.ErrAuctionEnded
	}
	if a.HasBids() {
		return domain.ErrAuctionHasBids
	}
	if params.TokenKind != a.Info.TokenKind {
		return domain.ErrTokenTypeMismatch
	}
	if params.NewEndTime < a.Info.EndTime {
		return domain.ErrInvalidEndTime
	}

	oldAmount := a.Info.TokenAmount
	if a.Info.TokenKind == domain.TokenType1155 && params.NewTokenAmount != oldAmount {
		if params.NewTokenAmount < 1 {
			return domain.ErrInvalidTokenAmount
		}
		tokenId, _ := a.Info.TokenId.ToBig()
		if params.NewTokenAmount > oldAmount {
			delta := params.NewTokenAmount - oldAmount
			if err := im.custody.checkHolder(c, a.Info.TokenKind, a.ContractAddress, caller, tokenId, delta); err != nil {
				return err
			}
			if err := im.custody.deposit(c, a.Info.TokenKind, a.ContractAddress, caller, tokenId, delta); err != nil {
				c.WithField("err", err).Warn("custody.deposit failed")
				return err
			}
		} else {
			delta := oldAmount - params.NewTokenAmount
			if err := im.custody.release(c, a.Info.TokenKind, a.ContractAddress, caller, tokenId, delta); err != nil {
				c.WithField("err", err).Warn("custody.release failed")
				return err
			}
		}
		if err := im.moveOutstanding(c, a, oldAmount, params.NewTokenAmount); err != nil {
			return err
		}
		a.Info.TokenAmount = params.NewTokenAmount
	}

	changed := params.NewEndTime != a.Info.EndTime
	a.Info.EndTime = params.NewEndTime
	if err := im.store.SaveAuction(c, a); err != nil {
		c.WithField("err", err).Error("store.SaveAuction failed")
		return err
	}
	if changed {
		im.emit(auction.EndTimeUpdated{AuctionId: id, EndTime: a.Info.EndTime})
	}
	return nil
}

// moveOutstanding shifts one outstanding auction between amount buckets.
func (im *impl) moveOutstanding(c ctx.Ctx, a *auction.Auction, from, to uint64) error {
	if err := im.releaseOutstanding(c, a.ContractAddress, a.Info.TokenId, from); err != nil {
		return err
	}
	key := auction.IssuanceKey{Contract: a.ContractAddress, TokenId: a.Info.TokenId, Amount: to}
	counter, err := im.store.FindCounter(c, key)
	if err != nil {
		return err
	}
	counter.Outstanding++
	return im.store.SaveCounter(c, *counter)
}

func (im *impl) releaseOutstanding(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, amount uint64) error {
	key := auction.IssuanceKey{Contract: contract, TokenId: tokenId, Amount: amount}
	counter, err := im.store.FindCounter(c, key)
	if err != nil {
		return err
	}
	if counter.Outstanding > 0 {
		counter.Outstanding--
	}
	return im.store.SaveCounter(c, *counter)
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	c = ctx.WithOperation(c, "cancel", caller.ToLowerStr())
	err := im.atomic(c, func() error {
		return im.cancel(c, caller.ToLower(), id)
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Info("cancel rejected")
	}
	return err
}

func (im *impl) cancel(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	a, err := im.findAuction(c, id)
	if err != nil {
		return err
	}
	if !a.Owner.Equals(caller) {
		return domain.ErrNotAuctionOwner
	}
	if a.Claimed {
		return domain.ErrAuctionClaimed
	}
	preset, err := im.presetOf(c, a)
	if err != nil {
		return err
	}
	now := im.clock.Now(c)
	if now <= a.Info.EndTime {
		return domain.ErrAuctionNotEnded
	}
	if now-preset.HammerTimeDuration >= a.Info.EndTime {
		return domain.ErrCancellationTooLate
	}

	a.Claimed = true
	if err := im.store.SaveAuction(c, a); err != nil {
		c.WithField("err", err).Error("store.SaveAuction failed")
		return err
	}
	if a.Info.TokenKind == domain.TokenType1155 {
		if err := im.releaseOutstanding(c, a.ContractAddress, a.Info.TokenId, a.Info.TokenAmount); err != nil {
			return err
		}
	}

	if a.HasBids() {
		owed := new(big.Int).Add(a.DueIncentives, a.AuctionDebt)
		if owed.Sign() > 0 {
			if err := im.currency.TransferFrom(c, im.address, a.Owner, a.HighestBidder, owed); err != nil {
				c.WithField("err", err).Warn("currency.TransferFrom owed incentives failed")
				return err
			}
		}
		if proceeds := a.Proceeds(); proceeds.Sign() > 0 {
			if err := im.currency.Transfer(c, im.address, a.HighestBidder, proceeds); err != nil {
				c.WithField("err", err).Warn("currency.Transfer refund failed")
				return err
			}
		}
	}

	tokenId, _ := a.Info.TokenId.ToBig()
	if err := im.custody.release(c, a.Info.TokenKind, a.ContractAddress, a.Owner, tokenId, a.Info.TokenAmount); err != nil {
		c.WithField("err", err).Warn("custody.release failed")
		return err
	}
	im.emit(auction.Cancelled{AuctionId: id, TokenId: a.Info.TokenId})
	return nil
}

func (im *impl) Claim(c ctx.Ctx, caller domain.Address, id auction.Id) (*auction.Settlement, error) {
	c = ctx.WithOperation(c, "claim", caller.ToLowerStr())
	var res *auction.Settlement
	err := im.atomic(c, func() error {
		var err error
		res, err = im.claim(c, id)
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Info("claim rejected")
		return nil, err
	}
	return res, nil
}

// claim is open to any caller. The item goes to the highest bidder, or
// back to the owner when nobody bid.
func (im *impl) claim(c ctx.Ctx, id auction.Id) (*auction.Settlement, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	if a.Claimed {
		return nil, domain.ErrAuctionClaimed
	}
	preset, err := im.presetOf(c, a)
	if err != nil {
		return nil, err
	}
	if im.clock.Now(c)-preset.HammerTimeDuration <= a.Info.EndTime {
		return nil, domain.ErrClaimTooEarly
	}

	a.Claimed = true
	if err := im.store.SaveAuction(c, a); err != nil {
		c.WithField("err", err).Error("store.SaveAuction failed")
		return nil, err
	}
	if a.Info.TokenKind == domain.TokenType1155 {
		if err := im.releaseOutstanding(c, a.ContractAddress, a.Info.TokenId, a.Info.TokenAmount); err != nil {
			return nil, err
		}
	}

	recipient := a.Owner
	proceeds := new(big.Int)
	if a.HasBids() {
		recipient = a.HighestBidder
		proceeds = a.Proceeds()
	}

	tokenId, _ := a.Info.TokenId.ToBig()
	if err := im.custody.release(c, a.Info.TokenKind, a.ContractAddress, recipient, tokenId, a.Info.TokenAmount); err != nil {
		c.WithField("err", err).Warn("custody.release failed")
		return nil, err
	}
	if a.HasBids() {
		if err := im.proceeds.Distribute(c, a, proceeds); err != nil {
			c.WithField("err", err).Warn("proceeds.Distribute failed")
			return nil, err
		}
	}

	im.emit(auction.ItemClaimed{AuctionId: id, Recipient: recipient, Proceeds: new(big.Int).Set(proceeds)})
	return &auction.Settlement{AuctionId: id, Recipient: recipient, Proceeds: proceeds}, nil
}

// BatchClaim settles ids in one frame; the first failure reverts all.
func (im *impl) BatchClaim(c ctx.Ctx, caller domain.Address, ids []auction.Id) ([]*auction.Settlement, error) {
	c = ctx.WithOperation(c, "batchClaim", caller.ToLowerStr())
	res := make([]*auction.Settlement, 0, len(ids))
	err := im.atomic(c, func() error {
		for _, id := range ids {
			s, err := im.claim(c, id)
			if err != nil {
				return xerrors.Errorf("claim %s: %w", id, err)
			}
			res = append(res, s)
		}
		return nil
	})
	if err != nil {
		c.WithField("err", err).Info("batchClaim rejected")
		return nil, err
	}
	return res, nil
}
