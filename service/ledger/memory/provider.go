package memory

import (
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

// Receivers maps contract accounts to their custody callbacks.
type Receivers struct {
	byAddress map[domain.Address]ledger.Receiver
}

func NewReceivers() *Receivers {
	return &Receivers{byAddress: make(map[domain.Address]ledger.Receiver)}
}

func (r *Receivers) Register(addr domain.Address, receiver ledger.Receiver) {
	r.byAddress[addr.ToLower()] = receiver
}

func (r *Receivers) lookup(addr domain.Address) (ledger.Receiver, bool) {
	if r == nil {
		return nil, false
	}
	receiver, ok := r.byAddress[addr.ToLower()]
	return receiver, ok
}

// Provider serves in-memory item ledgers by contract address.
type Provider struct {
	erc721  map[domain.Address]*Erc721
	erc1155 map[domain.Address]*Erc1155
}

func NewProvider() *Provider {
	return &Provider{
		erc721:  make(map[domain.Address]*Erc721),
		erc1155: make(map[domain.Address]*Erc1155),
	}
}

var _ ledger.Provider = (*Provider)(nil)

func (p *Provider) AddErc721(addr domain.Address, l *Erc721) {
	p.erc721[addr.ToLower()] = l
}

func (p *Provider) AddErc1155(addr domain.Address, l *Erc1155) {
	p.erc1155[addr.ToLower()] = l
}

func (p *Provider) Erc721(c ctx.Ctx, contract domain.Address) (ledger.Erc721, error) {
	if l, ok := p.erc721[contract.ToLower()]; ok {
		return l, nil
	}
	return nil, domain.ErrNoSecondaryMarket
}

func (p *Provider) Erc1155(c ctx.Ctx, contract domain.Address) (ledger.Erc1155, error) {
	if l, ok := p.erc1155[contract.ToLower()]; ok {
		return l, nil
	}
	return nil, domain.ErrNoSecondaryMarket
}

// Journals lists every ledger the provider serves.
func (p *Provider) Journals() []ledger.Journal {
	res := []ledger.Journal{}
	for _, l := range p.erc721 {
		res = append(res, l)
	}
	for _, l := range p.erc1155 {
		res = append(res, l)
	}
	return res
}
