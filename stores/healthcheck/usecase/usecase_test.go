package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	hcdomain "github.com/x-xyz/gbm/domain/healthcheck"
	"github.com/x-xyz/gbm/service/chain"
)

type pingRepo struct {
	err error
}

func (r pingRepo) PingDB(context ctx.Ctx) error {
	return r.err
}

func TestCheck(t *testing.T) {
	c := ctx.Background()
	clock := chain.NewManualClock(1_000, 7)

	uc := New(pingRepo{}, clock, time.Minute).(*impl)
	uc.now = func() time.Time { return time.Unix(1_030, 0) }

	status, err := uc.Check(c)
	assert.NoError(t, err)
	assert.Equal(t, &hcdomain.Status{BlockNumber: domain.BlockNumber(7), BlockTime: 1_000}, status)

	uc.now = func() time.Time { return time.Unix(1_061, 0) }
	_, err = uc.Check(c)
	assert.ErrorIs(t, err, hcdomain.ErrStaleHead)

	uc.maxLag = 0
	_, err = uc.Check(c)
	assert.NoError(t, err)
}

func TestCheckPingFails(t *testing.T) {
	boom := errors.New("boom")
	uc := New(pingRepo{err: boom}, chain.NewManualClock(0, 0), 0)
	_, err := uc.Check(ctx.Background())
	assert.ErrorIs(t, err, boom)
}
