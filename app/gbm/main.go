package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/database/mongoclient"
	"github.com/x-xyz/gbm/base/goroutine"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/base/metrics"
	bValidator "github.com/x-xyz/gbm/base/validator"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	mmiddleware "github.com/x-xyz/gbm/middleware"
	"github.com/x-xyz/gbm/service/chain"
	"github.com/x-xyz/gbm/service/eventsink"
	"github.com/x-xyz/gbm/service/ledger/memory"
	"github.com/x-xyz/gbm/service/query"
	"github.com/x-xyz/gbm/service/sequencer"
	auction_delivery "github.com/x-xyz/gbm/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/gbm/stores/auction/repository"
	auction_usecase "github.com/x-xyz/gbm/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/gbm/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/gbm/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/gbm/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/gbm/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/gbm/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/gbm/stores/healthcheck/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/gbm/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	metricsCfg := metrics.Config{
		DatadogHost: viper.GetString("metrics.datadogHost"),
		DatadogPort: viper.GetInt("metrics.datadogPort"),
		Env:         viper.GetString("metrics.env"),
		App:         "gbm",
	}
	httpMetrics, err := metrics.New("http", metricsCfg)
	if err != nil {
		context.WithField("err", err).Panic("metrics.New failed")
	}
	engineMetrics, err := metrics.New("gbm", metricsCfg)
	if err != nil {
		context.WithField("err", err).Panic("metrics.New failed")
	}

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(httpMetrics)
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	engineAddress := domain.Address(viper.GetString("engine.address")).ToLower()
	if !bValidator.IsValidAddress(string(engineAddress)) {
		context.WithField("address", engineAddress).Panic("invalid engine.address")
	}

	var authorityPubKey []byte
	if s := viper.GetString("engine.authorityPubKey"); s != "" {
		if authorityPubKey, err = hexutil.Decode(s); err != nil {
			context.WithField("err", err).Panic("invalid engine.authorityPubKey")
		}
	} else {
		context.Warn("no bid authority configured, commitBid will reject every bid")
	}

	// ledgers
	receivers := memory.NewReceivers()
	currency, items, err := buildLedgers(engineAddress, receivers)
	if err != nil {
		context.WithField("err", err).Panic("buildLedgers failed")
	}

	// clock
	var clock domain.BlockClock
	errCh := make(chan error, 10)
	if rpcUrl := viper.GetString("chain.rpcUrl"); rpcUrl != "" {
		context.WithField("rpcUrl", rpcUrl).Info("init head clock")
		client, err := ethclient.DialContext(context, rpcUrl)
		if err != nil {
			context.WithField("err", err).Panic("ethclient.Dial failed")
		}
		headClock := chain.NewHeadClock(&chain.HeadClockCfg{
			Client:     client,
			ErrCh:      errCh,
			MaxRetries: viper.GetInt("chain.maxRetries"),
			RetryStart: viper.GetDuration("chain.retryStart"),
			RetryLimit: viper.GetDuration("chain.retryLimit"),
		})
		if err := headClock.Start(context); err != nil {
			context.WithField("err", err).Panic("headClock.Start failed")
		}
		clock = headClock
	} else {
		genesis := time.Unix(viper.GetInt64("chain.genesisTime"), 0)
		clock = chain.NewWallClock(genesis, viper.GetDuration("chain.blockTime"))
	}

	// state
	store := auction_repository.NewState()
	var (
		persister   auction.Persister
		mongoClient *mongoclient.Client
	)
	if uri := viper.GetString("mongo.uri"); uri != "" {
		context.Info("init mongo")
		mongoClient = mongoclient.MustConnect(mongoclient.Config{
			URI:                uri,
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			EnableSSL:          viper.GetBool("mongo.enableSSL"),
			PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
		})
		persister = auction_repository.NewMongoPersister(query.New(mongoClient))
		state, err := persister.LoadAll(context)
		if err != nil {
			context.WithField("err", err).Panic("persister.LoadAll failed")
		}
		if err := store.Load(context, state); err != nil {
			context.WithField("err", err).Panic("store.Load failed")
		}
		context.WithField("auctions", len(state.Auctions)).Info("state loaded")
	}

	var proceeds auction.ProceedsPolicy
	switch policy := viper.GetString("engine.proceedsPolicy"); policy {
	case "", "escrow":
		proceeds = auction_usecase.NewRetainInEscrow()
	case "seller":
		proceeds = auction_usecase.NewPayToSeller(currency, engineAddress)
	default:
		context.WithField("policy", policy).Panic("unknown engine.proceedsPolicy")
	}

	currencyDecimals := viper.GetInt32("engine.currencyDecimals")
	engine := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Address:         engineAddress,
		Store:           store,
		Currency:        currency,
		Ledgers:         items,
		Clock:           clock,
		AuthorityPubKey: authorityPubKey,
		ProceedsPolicy:  proceeds,
		Persister:       persister,
		Sinks: []auction.EventSink{
			eventsink.NewLogSink(currencyDecimals),
			eventsink.NewMetricsSink(engineMetrics, currencyDecimals),
		},
		Journals: append(items.Journals(), currency),
	})
	// custody callbacks arrive while an engine call is running
	receivers.Register(engineAddress, engine)

	seq := sequencer.New(&sequencer.Cfg{
		Engine:          engine,
		QueueLength:     viper.GetInt("engine.queueLength"),
		ScheduleTimeout: viper.GetDuration("engine.scheduleTimeout"),
	})
	defer seq.Release()

	if err := bootstrap(context, seq); err != nil {
		context.WithField("err", err).Panic("bootstrap failed")
	}

	auth := auth_usecase.New(viper.GetString("jwt.secret"), viper.GetString("auth.signingMsg"), viper.GetDuration("jwt.ttl"))
	authMiddleware := auth_middleware.New(auth, viper.GetStringSlice("admin.addresses"))

	auth_delivery.New(e, auth)
	auction_delivery.New(e, seq, authMiddleware)

	hc := hc_usecase.New(hc_repo.New(mongoClient), clock, viper.GetDuration("chain.maxHeadLag"))
	hc_delivery.New(e, hc)

	serverDone := goroutine.RecoverableGo(func() {
		if err := e.Start(viper.GetString("http.addr")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case err := <-errCh:
		log.Log().WithField("err", err).Error("head clock stopped")
	case ev, ok := <-serverDone:
		if ok {
			log.Log().WithField("panic", ev.Panic).Error("server panicked")
		}
	}

	shutdownCtx, shutdownCancel := ctx.WithTimeout(context, 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
