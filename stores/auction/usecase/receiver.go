package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

func (im *impl) OnErc721Received(c ctx.Ctx, operator, from domain.Address, tokenId *big.Int, data []byte) [4]byte {
	return ledger.Erc721Received
}

func (im *impl) OnErc1155Received(c ctx.Ctx, operator, from domain.Address, tokenId, amount *big.Int, data []byte) [4]byte {
	return ledger.Erc1155Received
}

func (im *impl) OnErc1155BatchReceived(c ctx.Ctx, operator, from domain.Address, tokenIds, amounts []*big.Int, data []byte) [4]byte {
	return ledger.Erc1155BatchReceived
}
