package healthcheck

import (
	"errors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

var ErrStaleHead = errors.New("chain head is stale")

type Status struct {
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	BlockTime   int64              `json:"blockTime"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}
