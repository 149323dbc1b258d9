package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/domain/auction"
)

// incentive returns the due incentive of newBid over highest. Divisions
// truncate and are applied in this exact order.
func incentive(p *auction.Preset, highest, newBid *big.Int) *big.Int {
	d := new(big.Int).SetUint64(p.BidDecimals)
	s := new(big.Int).SetUint64(p.StepMin)
	m := new(big.Int).SetUint64(p.BidMultiplier)
	incMin := new(big.Int).SetUint64(p.IncMin)
	incMax := new(big.Int).SetUint64(p.IncMax)

	baseBid := new(big.Int).Mul(highest, new(big.Int).Add(d, s))
	baseBid.Quo(baseBid, d)
	if baseBid.Sign() == 0 {
		baseBid.SetInt64(1)
	}

	diff := new(big.Int).Sub(newBid, baseBid)
	if diff.Sign() < 0 {
		diff.SetInt64(0)
	}
	ratio := new(big.Int).Mul(d, m)
	ratio.Mul(ratio, diff)
	ratio.Quo(ratio, baseBid)
	ratio.Add(ratio, new(big.Int).Mul(incMin, d))

	if ceiling := new(big.Int).Mul(d, incMax); ratio.Cmp(ceiling) > 0 {
		ratio = ceiling
	}

	due := new(big.Int).Mul(newBid, ratio)
	return due.Quo(due, new(big.Int).Mul(d, d))
}

// clearsStep reports bid*D > highest*(D+S).
func clearsStep(p *auction.Preset, highest, bid *big.Int) bool {
	d := new(big.Int).SetUint64(p.BidDecimals)
	lhs := new(big.Int).Mul(bid, d)
	rhs := new(big.Int).Mul(highest, new(big.Int).Add(d, new(big.Int).SetUint64(p.StepMin)))
	return lhs.Cmp(rhs) > 0
}
