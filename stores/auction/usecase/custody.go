package usecase

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

// custody moves auctioned items between their owners and the engine.
type custody struct {
	address domain.Address
	ledgers ledger.Provider
}

func newCustody(address domain.Address, ledgers ledger.Provider) *custody {
	return &custody{address: address, ledgers: ledgers}
}

// checkHolder verifies owner can put amount of the item up for auction.
func (cu *custody) checkHolder(c ctx.Ctx, kind domain.TokenType, contract, owner domain.Address, tokenId *big.Int, amount uint64) error {
	switch kind {
	case domain.TokenType721:
		l, err := cu.ledgers.Erc721(c, contract)
		if err != nil {
			return err
		}
		holder, err := l.OwnerOf(c, tokenId)
		if err != nil || !holder.Equals(owner) {
			return domain.ErrNotTokenOwner
		}
		return nil
	case domain.TokenType1155:
		l, err := cu.ledgers.Erc1155(c, contract)
		if err != nil {
			return err
		}
		balance, err := l.BalanceOf(c, owner, tokenId)
		if err != nil {
			return err
		}
		if balance.Cmp(new(big.Int).SetUint64(amount)) < 0 {
			return domain.ErrInsufficientTokens
		}
		return nil
	}
	return domain.ErrUnsupportedTokenType
}

func (cu *custody) deposit(c ctx.Ctx, kind domain.TokenType, contract, from domain.Address, tokenId *big.Int, amount uint64) error {
	return cu.move(c, kind, contract, from, cu.address, tokenId, amount)
}

func (cu *custody) release(c ctx.Ctx, kind domain.TokenType, contract, to domain.Address, tokenId *big.Int, amount uint64) error {
	return cu.move(c, kind, contract, cu.address, to, tokenId, amount)
}

func (cu *custody) move(c ctx.Ctx, kind domain.TokenType, contract, from, to domain.Address, tokenId *big.Int, amount uint64) error {
	switch kind {
	case domain.TokenType721:
		l, err := cu.ledgers.Erc721(c, contract)
		if err != nil {
			return err
		}
		return l.SafeTransferFrom(c, cu.address, from, to, tokenId, nil)
	case domain.TokenType1155:
		l, err := cu.ledgers.Erc1155(c, contract)
		if err != nil {
			return err
		}
		return l.SafeTransferFrom(c, cu.address, from, to, tokenId, new(big.Int).SetUint64(amount), nil)
	}
	return domain.ErrUnsupportedTokenType
}
