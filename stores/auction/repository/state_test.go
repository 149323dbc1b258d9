package repository

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

const testAuctionId = auction.Id("0x00000000000000000000000000000000000000000000000000000000000000aa")

type stateTestSuite struct {
	suite.Suite

	c     ctx.Ctx
	store auction.Store
}

func TestState(t *testing.T) {
	suite.Run(t, new(stateTestSuite))
}

func (s *stateTestSuite) SetupTest() {
	s.c = ctx.Background()
	s.store = NewState()
}

func (s *stateTestSuite) sampleAuction() *auction.Auction {
	return &auction.Auction{
		Id:            testAuctionId,
		Owner:         "0x00000000000000000000000000000000000000a1",
		HighestBid:    big.NewInt(100),
		AuctionDebt:   big.NewInt(0),
		DueIncentives: big.NewInt(1),
	}
}

func (s *stateTestSuite) TestFindMissing() {
	_, err := s.store.FindAuction(s.c, testAuctionId)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.store.FindPreset(s.c, 1)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.store.FindContract(s.c, 1)
	s.ErrorIs(err, domain.ErrNotFound)

	counter, err := s.store.FindCounter(s.c, auction.IssuanceKey{Contract: "0xC1", TokenId: "1", Amount: 1})
	s.NoError(err)
	s.Equal(uint64(0), counter.Issued)
	s.Equal(domain.Address("0xc1"), counter.Key.Contract)
}

func (s *stateTestSuite) TestReadsAreCopies() {
	s.Require().NoError(s.store.SaveAuction(s.c, s.sampleAuction()))

	a, err := s.store.FindAuction(s.c, testAuctionId)
	s.Require().NoError(err)
	a.HighestBid.SetInt64(999)
	a.Claimed = true

	again, err := s.store.FindAuction(s.c, testAuctionId)
	s.Require().NoError(err)
	s.Equal(int64(100), again.HighestBid.Int64())
	s.False(again.Claimed)
}

func (s *stateTestSuite) TestSaveRejectsEmptyId() {
	s.ErrorIs(s.store.SaveAuction(s.c, &auction.Auction{}), domain.ErrBadParamInput)
	s.ErrorIs(s.store.SaveAuction(s.c, nil), domain.ErrBadParamInput)
}

func (s *stateTestSuite) TestRevertToSnapshot() {
	s.Require().NoError(s.store.SavePreset(s.c, 1, auction.Preset{IncMin: 1}))
	snap := s.store.Snapshot()

	s.Require().NoError(s.store.SaveAuction(s.c, s.sampleAuction()))
	s.Require().NoError(s.store.SavePreset(s.c, 1, auction.Preset{IncMin: 7}))
	s.Require().NoError(s.store.SaveContract(s.c, auction.Contract{Ref: 2, Address: "0xC1"}))
	s.Require().NoError(s.store.SaveCounter(s.c, auction.IssuanceCounter{Key: auction.IssuanceKey{Contract: "0xc1"}, Issued: 1}))

	nested := s.store.Snapshot()
	a := s.sampleAuction()
	a.Claimed = true
	s.Require().NoError(s.store.SaveAuction(s.c, a))
	s.store.RevertToSnapshot(nested)

	got, err := s.store.FindAuction(s.c, testAuctionId)
	s.Require().NoError(err)
	s.False(got.Claimed)

	s.store.RevertToSnapshot(snap)

	_, err = s.store.FindAuction(s.c, testAuctionId)
	s.ErrorIs(err, domain.ErrNotFound)
	p, err := s.store.FindPreset(s.c, 1)
	s.Require().NoError(err)
	s.Equal(uint64(1), p.IncMin)
	_, err = s.store.FindContract(s.c, 2)
	s.ErrorIs(err, domain.ErrNotFound)
	counter, err := s.store.FindCounter(s.c, auction.IssuanceKey{Contract: "0xc1"})
	s.Require().NoError(err)
	s.Equal(uint64(0), counter.Issued)

	// out of range snapshots are ignored
	s.store.RevertToSnapshot(-1)
	s.store.RevertToSnapshot(1000)
}

func (s *stateTestSuite) TestChangesAndCommit() {
	s.Require().NoError(s.store.SaveAuction(s.c, s.sampleAuction()))
	s.Require().NoError(s.store.SavePreset(s.c, 3, auction.Preset{IncMin: 1}))
	s.Require().NoError(s.store.SaveContract(s.c, auction.Contract{Ref: 2, Address: "0xC1"}))

	changes := s.store.Changes(s.c)
	s.Len(changes.Auctions, 1)
	s.Len(changes.Presets, 1)
	s.Equal([]auction.Contract{{Ref: 2, Address: "0xc1"}}, changes.Contracts)
	s.False(changes.Empty())

	s.store.Commit(s.c)
	s.True(s.store.Changes(s.c).Empty())

	// committed state survives a revert to the pre-commit baseline
	s.store.RevertToSnapshot(0)
	_, err := s.store.FindAuction(s.c, testAuctionId)
	s.NoError(err)
}

func (s *stateTestSuite) TestLoad() {
	s.Require().NoError(s.store.Load(s.c, &auction.StateSet{
		Auctions:  []*auction.Auction{s.sampleAuction()},
		Presets:   map[auction.PresetId]auction.Preset{1: {IncMin: 2}},
		Contracts: []auction.Contract{{Ref: 1, Address: "0xC1", BiddingAllowed: true}},
		Counters:  []auction.IssuanceCounter{{Key: auction.IssuanceKey{Contract: "0xC1", TokenId: "5", Amount: 3}, Issued: 4, Outstanding: 2}},
	}))
	s.NoError(s.store.Load(s.c, nil))

	_, err := s.store.FindAuction(s.c, testAuctionId)
	s.NoError(err)
	contract, err := s.store.FindContract(s.c, 1)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xc1"), contract.Address)
	counter, err := s.store.FindCounter(s.c, auction.IssuanceKey{Contract: "0xc1", TokenId: "5", Amount: 3})
	s.Require().NoError(err)
	s.Equal(uint64(4), counter.Issued)
	s.Equal(uint64(2), counter.Outstanding)

	// loaded records are the baseline, not pending changes
	s.True(s.store.Changes(s.c).Empty())
}
