package auction

import (
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain/ledger"
)

// Store is the working state of the engine. Reads return copies; a
// mutation is visible only after the matching Save call. Store is not
// safe for concurrent use, callers are serialized upstream.
type Store interface {
	ledger.Journal

	FindAuction(c ctx.Ctx, id Id) (*Auction, error)
	SaveAuction(c ctx.Ctx, a *Auction) error

	FindPreset(c ctx.Ctx, id PresetId) (*Preset, error)
	SavePreset(c ctx.Ctx, id PresetId, p Preset) error

	FindContract(c ctx.Ctx, ref ContractRef) (*Contract, error)
	SaveContract(c ctx.Ctx, contract Contract) error

	// FindCounter returns a zero counter for an unseen bucket.
	FindCounter(c ctx.Ctx, key IssuanceKey) (*IssuanceCounter, error)
	SaveCounter(c ctx.Ctx, counter IssuanceCounter) error

	// Changes returns records saved since the last Commit.
	Changes(c ctx.Ctx) *StateSet
	// Commit clears the dirty set and the undo journal.
	Commit(c ctx.Ctx)
	Load(c ctx.Ctx, state *StateSet) error
}

// StateSet is a batch of records, either a dirty set or a full image.
type StateSet struct {
	Auctions  []*Auction
	Presets   map[PresetId]Preset
	Contracts []Contract
	Counters  []IssuanceCounter
}

func (s *StateSet) Empty() bool {
	return s == nil || (len(s.Auctions) == 0 && len(s.Presets) == 0 && len(s.Contracts) == 0 && len(s.Counters) == 0)
}

// Persister makes committed state durable.
type Persister interface {
	Persist(c ctx.Ctx, changes *StateSet) error
	LoadAll(c ctx.Ctx) (*StateSet, error)
}

// EventSink receives events of a committed call in emission order.
type EventSink interface {
	Publish(c ctx.Ctx, events []Event)
}
