package domain

import "github.com/x-xyz/gbm/base/ctx"

// BlockClock reports the chain head the engine evaluates time windows
// against. Timestamps are unix seconds.
type BlockClock interface {
	Now(c ctx.Ctx) int64
	BlockNumber(c ctx.Ctx) BlockNumber
}
