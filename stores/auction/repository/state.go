package repository

import (
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

// stateImpl keeps the working state in memory and records an undo entry
// for every save so a failed call can be rolled back.
type stateImpl struct {
	auctions  map[auction.Id]*auction.Auction
	presets   map[auction.PresetId]auction.Preset
	contracts map[auction.ContractRef]auction.Contract
	counters  map[auction.IssuanceKey]auction.IssuanceCounter

	journal []func()

	dirtyAuctions  map[auction.Id]struct{}
	dirtyPresets   map[auction.PresetId]struct{}
	dirtyContracts map[auction.ContractRef]struct{}
	dirtyCounters  map[auction.IssuanceKey]struct{}
}

func NewState() auction.Store {
	s := &stateImpl{
		auctions:  make(map[auction.Id]*auction.Auction),
		presets:   make(map[auction.PresetId]auction.Preset),
		contracts: make(map[auction.ContractRef]auction.Contract),
		counters:  make(map[auction.IssuanceKey]auction.IssuanceCounter),
	}
	s.resetDirty()
	return s
}

func (s *stateImpl) resetDirty() {
	s.dirtyAuctions = make(map[auction.Id]struct{})
	s.dirtyPresets = make(map[auction.PresetId]struct{})
	s.dirtyContracts = make(map[auction.ContractRef]struct{})
	s.dirtyCounters = make(map[auction.IssuanceKey]struct{})
}

func (s *stateImpl) Snapshot() int {
	return len(s.journal)
}

func (s *stateImpl) RevertToSnapshot(id int) {
	if id < 0 || id > len(s.journal) {
		return
	}
	for i := len(s.journal) - 1; i >= id; i-- {
		s.journal[i]()
	}
	s.journal = s.journal[:id]
}

func (s *stateImpl) FindAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, ok := s.auctions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Clone(), nil
}

func (s *stateImpl) SaveAuction(c ctx.Ctx, a *auction.Auction) error {
	if a == nil || a.Id == "" {
		return domain.ErrBadParamInput
	}
	prev, existed := s.auctions[a.Id]
	s.journal = append(s.journal, func() {
		if existed {
			s.auctions[a.Id] = prev
		} else {
			delete(s.auctions, a.Id)
		}
	})
	s.auctions[a.Id] = a.Clone()
	s.dirtyAuctions[a.Id] = struct{}{}
	return nil
}

func (s *stateImpl) FindPreset(c ctx.Ctx, id auction.PresetId) (*auction.Preset, error) {
	p, ok := s.presets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stateImpl) SavePreset(c ctx.Ctx, id auction.PresetId, p auction.Preset) error {
	prev, existed := s.presets[id]
	s.journal = append(s.journal, func() {
		if existed {
			s.presets[id] = prev
		} else {
			delete(s.presets, id)
		}
	})
	s.presets[id] = p
	s.dirtyPresets[id] = struct{}{}
	return nil
}

func (s *stateImpl) FindContract(c ctx.Ctx, ref auction.ContractRef) (*auction.Contract, error) {
	contract, ok := s.contracts[ref]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &contract, nil
}

func (s *stateImpl) SaveContract(c ctx.Ctx, contract auction.Contract) error {
	prev, existed := s.contracts[contract.Ref]
	s.journal = append(s.journal, func() {
		if existed {
			s.contracts[contract.Ref] = prev
		} else {
			delete(s.contracts, contract.Ref)
		}
	})
	contract.Address = contract.Address.ToLower()
	s.contracts[contract.Ref] = contract
	s.dirtyContracts[contract.Ref] = struct{}{}
	return nil
}

func (s *stateImpl) FindCounter(c ctx.Ctx, key auction.IssuanceKey) (*auction.IssuanceCounter, error) {
	key.Contract = key.Contract.ToLower()
	counter, ok := s.counters[key]
	if !ok {
		counter = auction.IssuanceCounter{Key: key}
	}
	return &counter, nil
}

func (s *stateImpl) SaveCounter(c ctx.Ctx, counter auction.IssuanceCounter) error {
	counter.Key.Contract = counter.Key.Contract.ToLower()
	key := counter.Key
	prev, existed := s.counters[key]
	s.journal = append(s.journal, func() {
		if existed {
			s.counters[key] = prev
		} else {
			delete(s.counters, key)
		}
	})
	s.counters[key] = counter
	s.dirtyCounters[key] = struct{}{}
	return nil
}

func (s *stateImpl) Changes(c ctx.Ctx) *auction.StateSet {
	res := &auction.StateSet{Presets: make(map[auction.PresetId]auction.Preset)}
	for id := range s.dirtyAuctions {
		if a, ok := s.auctions[id]; ok {
			res.Auctions = append(res.Auctions, a.Clone())
		}
	}
	for id := range s.dirtyPresets {
		if p, ok := s.presets[id]; ok {
			res.Presets[id] = p
		}
	}
	for ref := range s.dirtyContracts {
		if contract, ok := s.contracts[ref]; ok {
			res.Contracts = append(res.Contracts, contract)
		}
	}
	for key := range s.dirtyCounters {
		if counter, ok := s.counters[key]; ok {
			res.Counters = append(res.Counters, counter)
		}
	}
	return res
}

// Commit makes the current state the new baseline, earlier snapshots can
// no longer be reverted to.
func (s *stateImpl) Commit(c ctx.Ctx) {
	s.resetDirty()
	s.journal = nil
}

func (s *stateImpl) Load(c ctx.Ctx, state *auction.StateSet) error {
	if state == nil {
		return nil
	}
	for _, a := range state.Auctions {
		s.auctions[a.Id] = a.Clone()
	}
	for id, p := range state.Presets {
		s.presets[id] = p
	}
	for _, contract := range state.Contracts {
		contract.Address = contract.Address.ToLower()
		s.contracts[contract.Ref] = contract
	}
	for _, counter := range state.Counters {
		counter.Key.Contract = counter.Key.Contract.ToLower()
		s.counters[counter.Key] = counter
	}
	c.WithField("auctions", len(state.Auctions)).Info("state loaded")
	return nil
}
