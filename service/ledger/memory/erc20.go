package memory

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

// TransferHook runs after a transfer has been applied. Returning an
// error fails the transfer. Tests use it to model hostile tokens.
type TransferHook func(c ctx.Ctx, from, to domain.Address, amount *big.Int) error

type Erc20 struct {
	journal

	balances   map[domain.Address]*big.Int
	allowances map[domain.Address]map[domain.Address]*big.Int
	hook       TransferHook
}

func NewErc20() *Erc20 {
	return &Erc20{
		balances:   make(map[domain.Address]*big.Int),
		allowances: make(map[domain.Address]map[domain.Address]*big.Int),
	}
}

var _ ledger.Currency = (*Erc20)(nil)

func (e *Erc20) SetHook(h TransferHook) {
	e.hook = h
}

func (e *Erc20) balance(owner domain.Address) *big.Int {
	if b, ok := e.balances[owner.ToLower()]; ok {
		return b
	}
	return new(big.Int)
}

func (e *Erc20) setBalance(owner domain.Address, v *big.Int) {
	owner = owner.ToLower()
	prev, existed := e.balances[owner]
	e.append(func() {
		if existed {
			e.balances[owner] = prev
		} else {
			delete(e.balances, owner)
		}
	})
	e.balances[owner] = v
}

func (e *Erc20) allowance(owner, spender domain.Address) *big.Int {
	if m, ok := e.allowances[owner.ToLower()]; ok {
		if v, ok := m[spender.ToLower()]; ok {
			return v
		}
	}
	return new(big.Int)
}

func (e *Erc20) setAllowance(owner, spender domain.Address, v *big.Int) {
	owner, spender = owner.ToLower(), spender.ToLower()
	m, ok := e.allowances[owner]
	if !ok {
		m = make(map[domain.Address]*big.Int)
		e.allowances[owner] = m
	}
	prev, existed := m[spender]
	e.append(func() {
		if existed {
			m[spender] = prev
		} else {
			delete(m, spender)
		}
	})
	m[spender] = v
}

func (e *Erc20) Mint(to domain.Address, amount *big.Int) {
	e.setBalance(to, new(big.Int).Add(e.balance(to), amount))
}

func (e *Erc20) Approve(owner, spender domain.Address, amount *big.Int) {
	e.setAllowance(owner, spender, new(big.Int).Set(amount))
}

func (e *Erc20) BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error) {
	return new(big.Int).Set(e.balance(owner)), nil
}

func (e *Erc20) Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error {
	return e.move(c, from, to, amount)
}

func (e *Erc20) TransferFrom(c ctx.Ctx, spender, from, to domain.Address, amount *big.Int) error {
	if !spender.Equals(from) {
		allowed := e.allowance(from, spender)
		if allowed.Cmp(amount) < 0 {
			return domain.ErrInsufficientAllowed
		}
		e.setAllowance(from, spender, new(big.Int).Sub(allowed, amount))
	}
	return e.move(c, from, to, amount)
}

func (e *Erc20) move(c ctx.Ctx, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	fromBalance := e.balance(from)
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	e.setBalance(from, new(big.Int).Sub(fromBalance, amount))
	e.setBalance(to, new(big.Int).Add(e.balance(to), amount))
	if e.hook != nil {
		return e.hook(c, from, to, amount)
	}
	return nil
}
