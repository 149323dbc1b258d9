package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

func TestIncentive(t *testing.T) {
	tests := []struct {
		name    string
		preset  auction.Preset
		highest int64
		newBid  int64
		want    int64
	}{
		{"first bid clamps base bid", defaultPreset, 0, 100, 1},
		{"first bid large", defaultPreset, 0, 1_000_000, 10_000},
		{"minimum step", defaultPreset, 100, 101, 0},
		{"small raise", defaultPreset, 10_000, 10_500, 11},
		{"capped ratio", defaultPreset, 10_000, 200_000, 2000},
		{
			name:    "multiplier",
			preset:  auction.Preset{BidDecimals: 100, StepMin: 5, IncMin: 2, IncMax: 20, BidMultiplier: 3},
			highest: 1000,
			newBid:  1100,
			want:    23,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := incentive(&tt.preset, big.NewInt(tt.highest), big.NewInt(tt.newBid))
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestClearsStep(t *testing.T) {
	assert.True(t, clearsStep(&defaultPreset, big.NewInt(0), big.NewInt(1)))
	assert.False(t, clearsStep(&defaultPreset, big.NewInt(1000), big.NewInt(1001)))
	assert.True(t, clearsStep(&defaultPreset, big.NewInt(1000), big.NewInt(1002)))
}

func TestDeriveAuctionId(t *testing.T) {
	a, err := DeriveAuctionId(nftAddr, big.NewInt(1), domain.TokenType721, 100, 1)
	require.NoError(t, err)
	b, err := DeriveAuctionId(nftAddr, big.NewInt(1), domain.TokenType1155, 100, 1)
	require.NoError(t, err)
	c, err := DeriveAuctionId(nftAddr, big.NewInt(1), domain.TokenType721, 101, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)

	parsed, err := auction.ParseId(string(a))
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = DeriveAuctionId(nftAddr, big.NewInt(1), domain.TokenType(3), 100, 1)
	assert.ErrorIs(t, err, domain.ErrUnsupportedTokenType)
	_, err = DeriveAuctionId(nftAddr, big.NewInt(-1), domain.TokenType721, 100, 1)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
