package ledger

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

// Magic values a Receiver must return to accept custody.
var (
	Erc721Received       = [4]byte{0x15, 0x0b, 0x7a, 0x02}
	Erc1155Received      = [4]byte{0xf2, 0x3a, 0x6e, 0x61}
	Erc1155BatchReceived = [4]byte{0xbc, 0x19, 0x7c, 0x81}
)

// Currency is the settlement token. Transfer moves funds held by from,
// TransferFrom moves funds on behalf of from by spender.
type Currency interface {
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error
	TransferFrom(c ctx.Ctx, spender, from, to domain.Address, amount *big.Int) error
}

type Erc721 interface {
	OwnerOf(c ctx.Ctx, tokenId *big.Int) (domain.Address, error)
	SafeTransferFrom(c ctx.Ctx, operator, from, to domain.Address, tokenId *big.Int, data []byte) error
}

type Erc1155 interface {
	BalanceOf(c ctx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error)
	SafeTransferFrom(c ctx.Ctx, operator, from, to domain.Address, tokenId, amount *big.Int, data []byte) error
}

// Provider resolves item ledgers by contract address.
type Provider interface {
	Erc721(c ctx.Ctx, contract domain.Address) (Erc721, error)
	Erc1155(c ctx.Ctx, contract domain.Address) (Erc1155, error)
}

// Receiver is notified when a ledger moves items to a contract account.
type Receiver interface {
	OnErc721Received(c ctx.Ctx, operator, from domain.Address, tokenId *big.Int, data []byte) [4]byte
	OnErc1155Received(c ctx.Ctx, operator, from domain.Address, tokenId, amount *big.Int, data []byte) [4]byte
	OnErc1155BatchReceived(c ctx.Ctx, operator, from domain.Address, tokenIds, amounts []*big.Int, data []byte) [4]byte
}

// Journal is implemented by state holders that can roll back to a
// previous snapshot when a call fails part way.
type Journal interface {
	Snapshot() int
	RevertToSnapshot(id int)
}
