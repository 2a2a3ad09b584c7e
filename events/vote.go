package events

import (
	"context"

	"code.witanprotocol.io/witan/types"
)

// VoteCast carries the vote recorded by a successful vote operation.
type VoteCast struct {
	Base
	v types.Vote
}

func NewVoteCast(ctx context.Context, v types.Vote) *VoteCast {
	return &VoteCast{
		Base: newBase(ctx, VoteCastEvent),
		v:    *v.DeepClone(),
	}
}

func (v VoteCast) Vote() types.Vote {
	return v.v
}

func (v VoteCast) ProposalID() uint64 {
	return v.v.ProposalID
}

// IsParty reports whether the given party cast the vote, used by party
// filtering subscribers.
func (v VoteCast) IsParty(id string) bool {
	return v.v.Party == id
}
