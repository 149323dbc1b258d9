package usecase

import (
	"time"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	hcdomain "github.com/x-xyz/gbm/domain/healthcheck"
)

type impl struct {
	repo   hcdomain.HealthCheckRepo
	clock  domain.BlockClock
	maxLag time.Duration
	now    func() time.Time
}

// New creates a HealthCheckUsecase. maxLag 0 disables the head freshness
// check.
func New(repo hcdomain.HealthCheckRepo, clock domain.BlockClock, maxLag time.Duration) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:   repo,
		clock:  clock,
		maxLag: maxLag,
		now:    time.Now,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingDB(context); err != nil {
		return nil, err
	}

	status := &hcdomain.Status{
		BlockNumber: im.clock.BlockNumber(context),
		BlockTime:   im.clock.Now(context),
	}
	if im.maxLag > 0 && im.now().Sub(time.Unix(status.BlockTime, 0)) > im.maxLag {
		context.WithField("blockTime", status.BlockTime).Warn("stale chain head")
		return status, hcdomain.ErrStaleHead
	}
	return status, nil
}
