package subscribers

import (
	"context"

	"code.witanprotocol.io/witan/events"
)

// Stats is the live counter set updated from the event stream.
type Stats interface {
	SetHeight(height uint64)
	IncTotalProposals()
	IncTotalVotes()
	IncTotalExecuted()
	IncTotalEvents()
}

// TimeE is implemented by height update events.
type TimeE interface {
	events.Event
	Height() uint64
}

// StatsSub keeps the node statistics up to date from the event stream.
type StatsSub struct {
	*Base
	stats Stats
}

func NewStatsSub(ctx context.Context, stats Stats, ack bool) *StatsSub {
	sub := &StatsSub{
		Base:  NewBase(ctx, 10, ack),
		stats: stats,
	}
	if sub.isRunning() {
		go sub.loop(sub.ctx)
	}
	return sub
}

func (s *StatsSub) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.Halt()
			return
		case e := <-s.ch:
			if s.isRunning() {
				s.Push(e...)
			}
		}
	}
}

func (s *StatsSub) Push(evts ...events.Event) {
	for _, e := range evts {
		s.stats.IncTotalEvents()
		switch et := e.(type) {
		case TimeE:
			s.stats.SetHeight(et.Height())
		case *events.ProposalCreated:
			s.stats.IncTotalProposals()
		case *events.VoteCast:
			s.stats.IncTotalVotes()
		case *events.ProposalExecuted:
			s.stats.IncTotalExecuted()
		}
	}
}

// Types returns nil, the stats subscriber listens to everything.
func (s *StatsSub) Types() []events.Type {
	return nil
}
