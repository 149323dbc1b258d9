package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/x-xyz/gbm/base/ethereum"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

// DeriveAuctionId hashes contract | tokenId | kind selector | block | nonce
// in tight packing. nonce is 1 for a sole-unit item and the issuance index
// for a divisible one.
func DeriveAuctionId(contract domain.Address, tokenId *big.Int, kind domain.TokenType, block domain.BlockNumber, nonce uint64) (auction.Id, error) {
	selector, ok := kind.Selector()
	if !ok {
		return "", domain.ErrUnsupportedTokenType
	}
	id, err := ethereum.PackUint256(tokenId)
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	blockWord, _ := ethereum.PackUint256(new(big.Int).SetUint64(uint64(block)))
	nonceWord, _ := ethereum.PackUint256(new(big.Int).SetUint64(nonce))

	h := crypto.Keccak256(contract.ToCommon().Bytes(), id, selector[:], blockWord, nonceWord)
	return auction.IdFromHash(common.BytesToHash(h)), nil
}
