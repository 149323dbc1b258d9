package usecase

import (
	"errors"
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

func (im *impl) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	return im.findAuction(c, id)
}

func (im *impl) FindPreset(c ctx.Ctx, id auction.PresetId) (*auction.Preset, error) {
	p, err := im.store.FindPreset(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return &auction.Preset{}, nil
	}
	return p, err
}

func (im *impl) FindContract(c ctx.Ctx, ref auction.ContractRef) (*auction.Contract, error) {
	contract, err := im.store.FindContract(c, ref)
	if errors.Is(err, domain.ErrNotFound) {
		return &auction.Contract{Ref: ref}, nil
	}
	return contract, err
}

func (im *impl) Owner(c ctx.Ctx, id auction.Id) (domain.Address, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return "", err
	}
	return a.Owner, nil
}

func (im *impl) HighestBid(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	return a.HighestBid, nil
}

func (im *impl) HighestBidder(c ctx.Ctx, id auction.Id) (domain.Address, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return "", err
	}
	return a.HighestBidder, nil
}

func (im *impl) AuctionDebt(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	return a.AuctionDebt, nil
}

func (im *impl) DueIncentives(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	return a.DueIncentives, nil
}

func (im *impl) TokenKind(c ctx.Ctx, id auction.Id) (domain.TokenType, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.TokenKind, nil
}

func (im *impl) TokenId(c ctx.Ctx, id auction.Id) (domain.TokenId, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return "", err
	}
	return a.Info.TokenId, nil
}

func (im *impl) StartTime(c ctx.Ctx, id auction.Id) (int64, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.StartTime, nil
}

func (im *impl) EndTime(c ctx.Ctx, id auction.Id) (int64, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.EndTime, nil
}

// auctionPreset resolves the live preset of an auction for the preset
// accessors below.
func (im *impl) auctionPreset(c ctx.Ctx, id auction.Id) (*auction.Preset, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	return im.FindPreset(c, a.PresetId)
}

func (im *impl) HammerTimeDuration(c ctx.Ctx, id auction.Id) (int64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.HammerTimeDuration, nil
}

func (im *impl) BidDecimals(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.BidDecimals, nil
}

func (im *impl) StepMin(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.StepMin, nil
}

func (im *impl) IncentiveMin(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.IncMin, nil
}

func (im *impl) IncentiveMax(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.IncMax, nil
}

func (im *impl) BidMultiplier(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := im.auctionPreset(c, id)
	if err != nil {
		return 0, err
	}
	return p.BidMultiplier, nil
}

func (im *impl) CalculateIncentives(c ctx.Ctx, id auction.Id, newBid *big.Int) (*big.Int, error) {
	a, err := im.findAuction(c, id)
	if err != nil {
		return nil, err
	}
	p, err := im.presetOf(c, a)
	if err != nil {
		return nil, err
	}
	if newBid == nil || newBid.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	return incentive(p, a.HighestBid, newBid), nil
}
