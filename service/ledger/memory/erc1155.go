package memory

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

type Erc1155 struct {
	journal

	balances  map[string]map[domain.Address]*big.Int
	operators map[domain.Address]map[domain.Address]bool
	receivers *Receivers
}

func NewErc1155(receivers *Receivers) *Erc1155 {
	return &Erc1155{
		balances:  make(map[string]map[domain.Address]*big.Int),
		operators: make(map[domain.Address]map[domain.Address]bool),
		receivers: receivers,
	}
}

var _ ledger.Erc1155 = (*Erc1155)(nil)

func (e *Erc1155) balance(owner domain.Address, tokenId *big.Int) *big.Int {
	if m, ok := e.balances[tokenId.String()]; ok {
		if v, ok := m[owner.ToLower()]; ok {
			return v
		}
	}
	return new(big.Int)
}

func (e *Erc1155) setBalance(owner domain.Address, tokenId *big.Int, v *big.Int) {
	key, owner := tokenId.String(), owner.ToLower()
	m, ok := e.balances[key]
	if !ok {
		m = make(map[domain.Address]*big.Int)
		e.balances[key] = m
	}
	prev, existed := m[owner]
	e.append(func() {
		if existed {
			m[owner] = prev
		} else {
			delete(m, owner)
		}
	})
	m[owner] = v
}

func (e *Erc1155) Mint(to domain.Address, tokenId, amount *big.Int) {
	e.setBalance(to, tokenId, new(big.Int).Add(e.balance(to, tokenId), amount))
}

func (e *Erc1155) SetApprovalForAll(owner, operator domain.Address, approved bool) {
	owner, operator = owner.ToLower(), operator.ToLower()
	m, ok := e.operators[owner]
	if !ok {
		m = make(map[domain.Address]bool)
		e.operators[owner] = m
	}
	prev := m[operator]
	e.append(func() { m[operator] = prev })
	m[operator] = approved
}

func (e *Erc1155) BalanceOf(c ctx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error) {
	return new(big.Int).Set(e.balance(owner, tokenId)), nil
}

func (e *Erc1155) SafeTransferFrom(c ctx.Ctx, operator, from, to domain.Address, tokenId, amount *big.Int, data []byte) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if !operator.Equals(from) && !e.operators[from.ToLower()][operator.ToLower()] {
		return domain.ErrInsufficientAllowed
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	fromBalance := e.balance(from, tokenId)
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientTokens
	}
	e.setBalance(from, tokenId, new(big.Int).Sub(fromBalance, amount))
	e.setBalance(to, tokenId, new(big.Int).Add(e.balance(to, tokenId), amount))
	if r, ok := e.receivers.lookup(to); ok {
		if r.OnErc1155Received(c, operator, from, tokenId, amount, data) != ledger.Erc1155Received {
			return domain.ErrRejectedByReceiver
		}
	}
	return nil
}
