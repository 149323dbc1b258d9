package sequencer

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/domain/auction/mocks"
)

const id = auction.Id("0x0000000000000000000000000000000000000000000000000000000000000001")

func TestSequencerSerializesCalls(t *testing.T) {
	engine := &mocks.UseCase{}
	var running, overlaps int32
	engine.On("Bid", mock.Anything, domain.Address("0xb1"), id, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if atomic.AddInt32(&running, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&running, -1)
		}).
		Return(nil)

	s := New(&Cfg{Engine: engine, QueueLength: 64})
	defer s.Release()

	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Bid(ctx.Background(), "0xb1", id, big.NewInt(1), big.NewInt(0)))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), overlaps)
	engine.AssertNumberOfCalls(t, "Bid", 20)
}

func TestSequencerReturnsEngineResult(t *testing.T) {
	engine := &mocks.UseCase{}
	settlement := &auction.Settlement{AuctionId: id, Recipient: "0xb1", Proceeds: big.NewInt(7)}
	engine.On("Claim", mock.Anything, domain.Address("0xc1"), id).Return(settlement, nil)
	engine.On("Cancel", mock.Anything, domain.Address("0xa1"), id).Return(domain.ErrCancellationTooLate)
	engine.On("FindOne", mock.Anything, id).Return(&auction.Auction{Id: id, Owner: "0xa1", PresetId: 3}, nil)
	engine.On("FindPreset", mock.Anything, auction.PresetId(3)).Return(&auction.Preset{StepMin: 5}, nil)

	s := New(&Cfg{Engine: engine})
	defer s.Release()
	c := ctx.Background()

	res, err := s.Claim(c, "0xc1", id)
	require.NoError(t, err)
	assert.Equal(t, settlement, res)

	assert.ErrorIs(t, s.Cancel(c, "0xa1", id), domain.ErrCancellationTooLate)

	o, err := s.Owner(c, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("0xa1"), o)

	step, err := s.StepMin(c, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), step)
}

func TestSequencerRecoversPanic(t *testing.T) {
	engine := &mocks.UseCase{}
	engine.On("SetPreset", mock.Anything, auction.PresetId(1), mock.Anything).Run(func(mock.Arguments) {
		panic("broken store")
	})

	s := New(&Cfg{Engine: engine})
	defer s.Release()

	err := s.SetPreset(ctx.Background(), 1, auction.Preset{})
	assert.True(t, errors.Is(err, ErrEnginePanic))
}

func TestSequencerDropsCancelledCalls(t *testing.T) {
	engine := &mocks.UseCase{}
	s := New(&Cfg{Engine: engine})
	defer s.Release()

	c, cancel := ctx.WithCancel(ctx.Background())
	cancel()
	err := s.Bid(c, "0xb1", id, big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, context.Canceled)
	engine.AssertNotCalled(t, "Bid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
