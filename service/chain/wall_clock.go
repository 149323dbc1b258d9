package chain

import (
	"time"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

// WallClock derives block numbers from system time at a fixed block
// interval counted from genesis. Used when no rpc endpoint is configured.
type WallClock struct {
	genesis   int64
	blockTime int64
	now       func() time.Time
}

func NewWallClock(genesis time.Time, blockTime time.Duration) *WallClock {
	bt := int64(blockTime / time.Second)
	if bt <= 0 {
		bt = 1
	}
	return &WallClock{genesis: genesis.Unix(), blockTime: bt, now: time.Now}
}

var _ domain.BlockClock = (*WallClock)(nil)

func (w *WallClock) Now(c ctx.Ctx) int64 {
	return w.now().Unix()
}

func (w *WallClock) BlockNumber(c ctx.Ctx) domain.BlockNumber {
	elapsed := w.now().Unix() - w.genesis
	if elapsed < 0 {
		return 0
	}
	return domain.BlockNumber(elapsed / w.blockTime)
}
