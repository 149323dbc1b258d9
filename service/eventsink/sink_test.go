package eventsink

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/metrics"
	"github.com/x-xyz/gbm/domain/auction"
)

type bump struct {
	key  string
	val  float64
	tags []string
}

type fakeMetrics struct {
	sums       []bump
	histograms []bump
}

func (f *fakeMetrics) BumpSum(key string, val float64, tags ...string) {
	f.sums = append(f.sums, bump{key, val, tags})
}

func (f *fakeMetrics) BumpHistogram(key string, val float64, tags ...string) {
	f.histograms = append(f.histograms, bump{key, val, tags})
}

func (f *fakeMetrics) BumpTime(key string, tags ...string) metrics.Ender {
	return nil
}

func TestMetricsSink(t *testing.T) {
	m := &fakeMetrics{}
	sink := NewMetricsSink(m, 2)
	sink.Publish(ctx.Background(), []auction.Event{
		auction.BidRemoved{AuctionId: "0x1", Bidder: "0xb1", Amount: big.NewInt(100)},
		auction.BidPlaced{AuctionId: "0x1", Bidder: "0xb2", Amount: big.NewInt(12345)},
	})

	assert.Equal(t, []bump{
		{"event.count", 1, []string{"type", "Auction_BidRemoved"}},
		{"event.count", 1, []string{"type", "Auction_BidPlaced"}},
	}, m.sums)
	assert.Equal(t, []bump{{"bid.amount", 123.45, nil}}, m.histograms)
}

func TestLogSinkFields(t *testing.T) {
	s := &logSink{decimals: 2}
	f := s.fields(auction.ItemClaimed{AuctionId: "0x1", Recipient: "0xb1", Proceeds: big.NewInt(250)})
	assert.Equal(t, "2.5", f["proceeds"])
	assert.Equal(t, "Auction_ItemClaimed", f["event"])

	f = s.fields(auction.BiddingAllowed{ContractRef: 3, Allowed: false})
	_, ok := f["auctionId"]
	assert.False(t, ok)

	NewLogSink(18).Publish(ctx.Background(), []auction.Event{auction.Cancelled{AuctionId: "0x1", TokenId: "1"}})
}
