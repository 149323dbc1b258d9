package memory

import (
	"math/big"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

type Erc721 struct {
	journal

	owners    map[string]domain.Address
	operators map[domain.Address]map[domain.Address]bool
	receivers *Receivers
}

func NewErc721(receivers *Receivers) *Erc721 {
	return &Erc721{
		owners:    make(map[string]domain.Address),
		operators: make(map[domain.Address]map[domain.Address]bool),
		receivers: receivers,
	}
}

var _ ledger.Erc721 = (*Erc721)(nil)

func (e *Erc721) setOwner(tokenId *big.Int, owner domain.Address) {
	key := tokenId.String()
	prev, existed := e.owners[key]
	e.append(func() {
		if existed {
			e.owners[key] = prev
		} else {
			delete(e.owners, key)
		}
	})
	e.owners[key] = owner.ToLower()
}

func (e *Erc721) Mint(to domain.Address, tokenId *big.Int) error {
	if _, ok := e.owners[tokenId.String()]; ok {
		return domain.ErrBadParamInput
	}
	e.setOwner(tokenId, to)
	return nil
}

func (e *Erc721) SetApprovalForAll(owner, operator domain.Address, approved bool) {
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

func (e *Erc721) OwnerOf(c ctx.Ctx, tokenId *big.Int) (domain.Address, error) {
	owner, ok := e.owners[tokenId.String()]
	if !ok {
		return domain.EmptyAddress, domain.ErrNotFound
	}
	return owner, nil
}

func (e *Erc721) SafeTransferFrom(c ctx.Ctx, operator, from, to domain.Address, tokenId *big.Int, data []byte) error {
	owner, err := e.OwnerOf(c, tokenId)
	if err != nil {
		return err
	}
	if !owner.Equals(from) {
		return domain.ErrNotTokenOwner
	}
	if !operator.Equals(from) && !e.operators[from.ToLower()][operator.ToLower()] {
		return domain.ErrInsufficientAllowed
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	e.setOwner(tokenId, to)
	if r, ok := e.receivers.lookup(to); ok {
		if r.OnErc721Received(c, operator, from, tokenId, data) != ledger.Erc721Received {
			return domain.ErrRejectedByReceiver
		}
	}
	return nil
}
