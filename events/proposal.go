package events

import (
	"context"

	"code.witanprotocol.io/witan/types"
)

// ProposalCreated carries the proposal registered by a successful
// propose operation.
type ProposalCreated struct {
	Base
	p types.Proposal
}

func NewProposalCreated(ctx context.Context, p types.Proposal) *ProposalCreated {
	return &ProposalCreated{
		Base: newBase(ctx, ProposalCreatedEvent),
		p:    *p.DeepClone(),
	}
}

func (p ProposalCreated) Proposal() types.Proposal {
	return p.p
}

func (p ProposalCreated) ProposalID() uint64 {
	return p.p.ID
}

// IsParty reports whether the given party emitted the proposal, used
// by party filtering subscribers.
func (p ProposalCreated) IsParty(id string) bool {
	return p.p.Proposer == id
}
