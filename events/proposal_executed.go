package events

import (
	"context"

	"code.witanprotocol.io/witan/types"
)

// ProposalExecuted carries the proposal flipped to its terminal state
// by a successful execute operation.
type ProposalExecuted struct {
	Base
	p types.Proposal
}

func NewProposalExecuted(ctx context.Context, p types.Proposal) *ProposalExecuted {
	return &ProposalExecuted{
		Base: newBase(ctx, ProposalExecutedEvent),
		p:    *p.DeepClone(),
	}
}

func (p ProposalExecuted) Proposal() types.Proposal {
	return p.p
}

func (p ProposalExecuted) ProposalID() uint64 {
	return p.p.ID
}
