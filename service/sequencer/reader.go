package sequencer

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

// Reads share the worker so they never observe a call half way.

func (s *Sequencer) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	var (
		a   *auction.Auction
		res error
	)
	if err := s.do(c, func() { a, res = s.engine.FindOne(c, id) }); err != nil {
		return nil, err
	}
	return a, res
}

func (s *Sequencer) FindPreset(c ctx.Ctx, id auction.PresetId) (*auction.Preset, error) {
	var (
		p   *auction.Preset
		res error
	)
	if err := s.do(c, func() { p, res = s.engine.FindPreset(c, id) }); err != nil {
		return nil, err
	}
	return p, res
}

func (s *Sequencer) FindContract(c ctx.Ctx, ref auction.ContractRef) (*auction.Contract, error) {
	var (
		contract *auction.Contract
		res      error
	)
	if err := s.do(c, func() { contract, res = s.engine.FindContract(c, ref) }); err != nil {
		return nil, err
	}
	return contract, res
}

func (s *Sequencer) CalculateIncentives(c ctx.Ctx, id auction.Id, newBid *big.Int) (*big.Int, error) {
	var (
		due *big.Int
		res error
	)
	if err := s.do(c, func() { due, res = s.engine.CalculateIncentives(c, id, newBid) }); err != nil {
		return nil, err
	}
	return due, res
}

// field accessors are answered from one auction snapshot

func (s *Sequencer) Owner(c ctx.Ctx, id auction.Id) (domain.Address, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return "", err
	}
	return a.Owner, nil
}

func (s *Sequencer) HighestBid(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return a.HighestBid, nil
}

func (s *Sequencer) HighestBidder(c ctx.Ctx, id auction.Id) (domain.Address, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return "", err
	}
	return a.HighestBidder, nil
}

func (s *Sequencer) AuctionDebt(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return a.AuctionDebt, nil
}

func (s *Sequencer) DueIncentives(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return a.DueIncentives, nil
}

func (s *Sequencer) TokenKind(c ctx.Ctx, id auction.Id) (domain.TokenType, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.TokenKind, nil
}

func (s *Sequencer) TokenId(c ctx.Ctx, id auction.Id) (domain.TokenId, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return "", err
	}
	return a.Info.TokenId, nil
}

func (s *Sequencer) StartTime(c ctx.Ctx, id auction.Id) (int64, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.StartTime, nil
}

func (s *Sequencer) EndTime(c ctx.Ctx, id auction.Id) (int64, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return 0, err
	}
	return a.Info.EndTime, nil
}

func (s *Sequencer) preset(c ctx.Ctx, id auction.Id) (*auction.Preset, error) {
	a, err := s.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return s.FindPreset(c, a.PresetId)
}

func (s *Sequencer) HammerTimeDuration(c ctx.Ctx, id auction.Id) (int64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.HammerTimeDuration, nil
}

func (s *Sequencer) BidDecimals(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.BidDecimals, nil
}

func (s *Sequencer) StepMin(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.StepMin, nil
}

func (s *Sequencer) IncentiveMin(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.IncMin, nil
}

func (s *Sequencer) IncentiveMax(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.IncMax, nil
}

func (s *Sequencer) BidMultiplier(c ctx.Ctx, id auction.Id) (uint64, error) {
	p, err := s.preset(c, id)
	if err != nil {
		return 0, err
	}
	return p.BidMultiplier, nil
}
