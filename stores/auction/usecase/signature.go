package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/ethereum"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

// SignatureGate accepts a relayed bid only when the commitment was
// counter-signed by the configured authority key.
type SignatureGate struct {
	pubKey []byte
}

func NewSignatureGate(pubKey []byte) *SignatureGate {
	return &SignatureGate{pubKey: pubKey}
}

// Authorize fails closed: no key, a malformed signature or a foreign
// signer all reject.
func (g *SignatureGate) Authorize(c ctx.Ctx, bidder domain.Address, id auction.Id, bidAmount, highestBid *big.Int, sig []byte) bool {
	if g == nil || len(g.pubKey) == 0 {
		return false
	}
	hash, err := ethereum.BidCommitmentHash(bidder.ToCommon(), id.Hash(), bidAmount, highestBid)
	if err != nil {
		c.WithField("err", err).Warn("ethereum.BidCommitmentHash failed")
		return false
	}
	ok, err := ethereum.VerifyHashSignature(hash, sig, g.pubKey)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "bidder": bidder}).Info("signature rejected")
		return false
	}
	return ok
}
