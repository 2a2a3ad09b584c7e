package subscribers

import (
	"context"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"
)

// PropE is implemented by every event carrying a proposal payload.
type PropE interface {
	events.Event
	Proposal() types.Proposal
}

// VoteE is implemented by every event carrying a vote payload.
type VoteE interface {
	events.Event
	Vote() types.Vote
}

// ProposalStore is the archive proposals are written to.
type ProposalStore interface {
	SaveProposal(p types.Proposal) error
}

// VoteStore is the archive votes are written to.
type VoteStore interface {
	SaveVote(v types.Vote) error
}

// GovernanceStoreSub archives proposals and votes as their events come
// off the bus. Executed proposals overwrite the created record, the
// store always holds the latest image.
type GovernanceStoreSub struct {
	*Base
	log       *logging.Logger
	proposals ProposalStore
	votes     VoteStore
}

func NewGovernanceStoreSub(ctx context.Context, log *logging.Logger, proposals ProposalStore, votes VoteStore, ack bool) *GovernanceStoreSub {
	sub := &GovernanceStoreSub{
		Base:      NewBase(ctx, 10, ack),
		log:       log,
		proposals: proposals,
		votes:     votes,
	}
	if sub.isRunning() {
		go sub.loop(sub.ctx)
	}
	return sub
}

func (g *GovernanceStoreSub) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			g.Halt()
			return
		case e := <-g.ch:
			if g.isRunning() {
				g.Push(e...)
			}
		}
	}
}

func (g *GovernanceStoreSub) Push(evts ...events.Event) {
	for _, e := range evts {
		switch et := e.(type) {
		case PropE:
			p := et.Proposal()
			if err := g.proposals.SaveProposal(p); err != nil {
				g.log.Error("failed to archive proposal",
					logging.ProposalID(p.ID),
					logging.Error(err),
				)
			}
		case VoteE:
			v := et.Vote()
			if err := g.votes.SaveVote(v); err != nil {
				g.log.Error("failed to archive vote",
					logging.ProposalID(v.ProposalID),
					logging.PartyID(v.Party),
					logging.Error(err),
				)
			}
		}
	}
}

func (g *GovernanceStoreSub) Types() []events.Type {
	return []events.Type{
		events.ProposalCreatedEvent,
		events.ProposalExecutedEvent,
		events.VoteCastEvent,
	}
}
