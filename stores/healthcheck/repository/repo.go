package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/database/mongoclient"
	hcdomain "github.com/x-xyz/gbm/domain/healthcheck"
)

type impl struct {
	mgoClient *mongoclient.Client
}

// New returns a repo pinging mgoClient. A nil client means the engine
// runs without persistence and the ping always succeeds.
func New(mgoClient *mongoclient.Client) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	if im.mgoClient == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}
