package eventsink

import (
	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/metrics"
	"github.com/x-xyz/gbm/domain/auction"
)

type metricsSink struct {
	m        metrics.Service
	decimals int32
}

// NewMetricsSink counts events per type and records bid and proceeds
// volume in currency units.
func NewMetricsSink(m metrics.Service, currencyDecimals int32) auction.EventSink {
	return &metricsSink{m: m, decimals: currencyDecimals}
}

func (s *metricsSink) Publish(c ctx.Ctx, events []auction.Event) {
	for _, e := range events {
		s.m.BumpSum("event.count", 1, "type", string(e.Type()))
		switch ev := e.(type) {
		case auction.BidPlaced:
			v, _ := displayAmount(ev.Amount, s.decimals).Float64()
			s.m.BumpHistogram("bid.amount", v)
		case auction.IncentivePaid:
			v, _ := displayAmount(ev.Incentive, s.decimals).Float64()
			s.m.BumpHistogram("incentive.amount", v)
		case auction.ItemClaimed:
			v, _ := displayAmount(ev.Proceeds, s.decimals).Float64()
			s.m.BumpHistogram("proceeds.amount", v)
		}
	}
}
