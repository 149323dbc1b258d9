package repository

import (
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/database/mongoclient"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/service/query"
	"github.com/x-xyz/gbm/service/query/mocks"
)

func runInline(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

func TestAuctionDocRoundTrip(t *testing.T) {
	a := &auction.Auction{
		Id:            testAuctionId,
		Owner:         "0xa1",
		HighestBid:    big.NewInt(101),
		AuctionDebt:   big.NewInt(1),
		DueIncentives: big.NewInt(1),
		Info:          auction.Info{TokenId: "7", TokenAmount: 1, TokenKind: domain.TokenType721, StartTime: 10, EndTime: 20},
	}
	got, err := toAuctionDoc(a).toAuction()
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = auctionDoc{Id: testAuctionId, HighestBid: "x", AuctionDebt: "0", DueIncentives: "0"}.toAuction()
	assert.Error(t, err)
}

func TestPersistWritesChangesInTransaction(t *testing.T) {
	c := ctx.Background()
	q := &mocks.Mongo{}
	p := NewMongoPersister(q)

	counter := auction.IssuanceCounter{Key: auction.IssuanceKey{Contract: "0xc1", TokenId: "1", Amount: 1}, Issued: 1, Outstanding: 1}
	q.On("RunWithTransaction", c, mock.Anything).Return(runInline).Once()
	q.On("Upsert", c, domain.TableAuctions, bson.M{"_id": testAuctionId}, mock.Anything).Return(nil).Once()
	q.On("Upsert", c, domain.TableAuctionPresets, bson.M{"_id": auction.PresetId(1)}, presetDoc{Id: 1, Preset: auction.Preset{IncMin: 1}}).Return(nil).Once()
	q.On("Upsert", c, domain.TableIssuanceCounter, bson.M{"key": counter.Key}, counter).Return(nil).Once()

	err := p.Persist(c, &auction.StateSet{
		Auctions: []*auction.Auction{{Id: testAuctionId, Owner: "0xa1"}},
		Presets:  map[auction.PresetId]auction.Preset{1: {IncMin: 1}},
		Counters: []auction.IssuanceCounter{counter},
	})
	assert.NoError(t, err)
	q.AssertExpectations(t)
}

func TestPersistSkipsEmptyAndPropagatesErrors(t *testing.T) {
	c := ctx.Background()
	q := &mocks.Mongo{}
	p := NewMongoPersister(q)

	assert.NoError(t, p.Persist(c, &auction.StateSet{}))

	boom := errors.New("boom")
	q.On("RunWithTransaction", c, mock.Anything).Return(runInline).Once()
	q.On("Upsert", c, domain.TableAuctionContract, mock.Anything, mock.Anything).Return(boom).Once()
	err := p.Persist(c, &auction.StateSet{Contracts: []auction.Contract{{Ref: 1, Address: "0xc1"}}})
	assert.ErrorIs(t, err, boom)
	q.AssertExpectations(t)
}

func TestLoadAll(t *testing.T) {
	c := ctx.Background()
	q := &mocks.Mongo{}
	p := NewMongoPersister(q)

	q.On("Search", c, domain.TableAuctions, 0, 0, "_id", bson.M{}, mock.Anything).Run(func(args mock.Arguments) {
		docs := args.Get(6).(*[]auctionDoc)
		*docs = append(*docs, toAuctionDoc(&auction.Auction{Id: testAuctionId, Owner: "0xa1"}))
	}).Return(nil).Once()
	q.On("Search", c, domain.TableAuctionPresets, 0, 0, "_id", bson.M{}, mock.Anything).Run(func(args mock.Arguments) {
		docs := args.Get(6).(*[]presetDoc)
		*docs = append(*docs, presetDoc{Id: 4, Preset: auction.Preset{IncMin: 3}})
	}).Return(nil).Once()
	q.On("Search", c, domain.TableAuctionContract, 0, 0, "_id", bson.M{}, mock.Anything).Return(nil).Once()
	q.On("Search", c, domain.TableIssuanceCounter, 0, 0, "", bson.M{}, mock.Anything).Return(nil).Once()

	state, err := p.LoadAll(c)
	require.NoError(t, err)
	require.Len(t, state.Auctions, 1)
	assert.Equal(t, testAuctionId, state.Auctions[0].Id)
	assert.Equal(t, auction.Preset{IncMin: 3}, state.Presets[4])
	q.AssertExpectations(t)
}

// TestMongoPersister runs against a replica set named by GBM_TEST_MONGO_URI.
func TestMongoPersister(t *testing.T) {
	uri := os.Getenv("GBM_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("GBM_TEST_MONGO_URI not set")
	}

	c := ctx.Background()
	client := mongoclient.MustConnect(mongoclient.Config{URI: uri, DBName: "gbm_test"})
	defer client.Disconnect(c)
	defer client.Database("gbm_test").Drop(c)

	p := NewMongoPersister(query.New(client))
	a := &auction.Auction{Id: testAuctionId, Owner: "0xa1", HighestBid: big.NewInt(5), AuctionDebt: big.NewInt(0), DueIncentives: big.NewInt(0)}
	require.NoError(t, p.Persist(c, &auction.StateSet{
		Auctions: []*auction.Auction{a},
		Presets:  map[auction.PresetId]auction.Preset{1: {IncMin: 1, BidDecimals: 1000}},
	}))

	state, err := p.LoadAll(c)
	require.NoError(t, err)
	require.Len(t, state.Auctions, 1)
	assert.Equal(t, a.Owner, state.Auctions[0].Owner)
	assert.Equal(t, "5", state.Auctions[0].HighestBid.String())
	assert.Equal(t, uint64(1000), state.Presets[1].BidDecimals)
}
