package chain

import (
	"sync"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

// ManualClock is a BlockClock driven by hand. Advance moves time and
// mines one block.
type ManualClock struct {
	mutex sync.RWMutex
	now   int64
	blk   domain.BlockNumber
}

func NewManualClock(now int64, blk domain.BlockNumber) *ManualClock {
	return &ManualClock{now: now, blk: blk}
}

var _ domain.BlockClock = (*ManualClock)(nil)

func (m *ManualClock) Now(c ctx.Ctx) int64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.now
}

func (m *ManualClock) BlockNumber(c ctx.Ctx) domain.BlockNumber {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.blk
}

func (m *ManualClock) Set(now int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.now = now
}

func (m *ManualClock) Advance(seconds int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.now += seconds
	m.blk++
}
