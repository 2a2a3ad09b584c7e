package types

import (
	"fmt"

	"code.witanprotocol.io/witan/types/num"
)

// VoteValue is the position of a vote, for or against a proposal.
type VoteValue int32

const (
	// Default value, always invalid.
	VoteValueUnspecified VoteValue = 0
	// A vote against the proposal.
	VoteValueNo VoteValue = 1
	// A vote in favour of the proposal.
	VoteValueYes VoteValue = 2
)

func (v VoteValue) String() string {
	switch v {
	case VoteValueNo:
		return "no"
	case VoteValueYes:
		return "yes"
	default:
		return "unspecified"
	}
}

// IsValid reports whether the value is one of the two castable positions.
func (v VoteValue) IsValid() bool {
	return v == VoteValueNo || v == VoteValueYes
}

// MarshalText implements encoding.TextMarshaler, votes travel as
// "yes"/"no" strings on serialized surfaces.
func (v VoteValue) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid vote value %d", int32(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VoteValue) UnmarshalText(text []byte) error {
	switch string(text) {
	case "no":
		*v = VoteValueNo
	case "yes":
		*v = VoteValueYes
	default:
		return fmt.Errorf("invalid vote value %q", string(text))
	}
	return nil
}

// ProposalState is the lifecycle state of a proposal. There is no
// rejected state: a proposal that keeps failing quorum or majority
// checks simply remains closed.
type ProposalState int32

const (
	// Default value, always invalid.
	ProposalStateUnspecified ProposalState = 0
	// Voting window still open.
	ProposalStateOpen ProposalState = 1
	// Voting window over, proposal not executed.
	ProposalStateClosed ProposalState = 2
	// Terminal state, the proposal was executed.
	ProposalStateExecuted ProposalState = 3
)

func (s ProposalState) String() string {
	switch s {
	case ProposalStateOpen:
		return "open"
	case ProposalStateClosed:
		return "closed"
	case ProposalStateExecuted:
		return "executed"
	default:
		return "unspecified"
	}
}

// Proposal is a funding decision registered on the ledger. Once
// created only the tallies and the executed flag ever change, each
// forward only.
type Proposal struct {
	// ID is assigned at creation, monotonically increasing from 1,
	// never reused.
	ID uint64 `json:"id"`
	// Title is unique across all proposals for the lifetime of the
	// registry.
	Title       string `json:"title"`
	Description string `json:"description"`
	// FundingRef optionally points at the external funding request the
	// proposal is about, nil when the proposal carries no disbursement.
	FundingRef *uint64 `json:"fundingRef,omitempty"`
	// Proposer is the party which submitted the proposal.
	Proposer string `json:"proposer"`
	// StartHeight is the ledger height at creation, EndHeight is
	// StartHeight plus the proposal duration configured at that time.
	StartHeight uint64 `json:"startHeight"`
	EndHeight   uint64 `json:"endHeight"`
	// Yes and No hold the weighted tallies.
	Yes *num.Uint `json:"yes"`
	No  *num.Uint `json:"no"`
	// Executed flips to true exactly once, on successful execution.
	Executed bool `json:"executed"`
	// Executor is an optional party restriction recorded at creation.
	// It is validated against the proposer then, and never read again.
	Executor string `json:"executor,omitempty"`
}

// StateAt derives the lifecycle state of the proposal at the given
// ledger height. Voting stays open through and including EndHeight.
func (p *Proposal) StateAt(height uint64) ProposalState {
	if p.Executed {
		return ProposalStateExecuted
	}
	if height > p.EndHeight {
		return ProposalStateClosed
	}
	return ProposalStateOpen
}

// TotalVotes returns the sum of both tallies.
func (p *Proposal) TotalVotes() *num.Uint {
	return num.Sum(p.Yes, p.No)
}

// DeepClone returns a copy of the proposal sharing no mutable state
// with the original.
func (p Proposal) DeepClone() *Proposal {
	cpy := p
	if p.FundingRef != nil {
		ref := *p.FundingRef
		cpy.FundingRef = &ref
	}
	if p.Yes != nil {
		cpy.Yes = p.Yes.Clone()
	}
	if p.No != nil {
		cpy.No = p.No.Clone()
	}
	return &cpy
}

func (p Proposal) String() string {
	return fmt.Sprintf("id=%d title=%q proposer=%s window=[%d,%d] yes=%s no=%s executed=%v",
		p.ID, p.Title, p.Proposer, p.StartHeight, p.EndHeight, p.Yes, p.No, p.Executed)
}

// Vote is a single weighted position cast by a party on a proposal.
// At most one vote record exists per (proposal, party) pair and it is
// immutable once written.
type Vote struct {
	ProposalID uint64 `json:"proposalId"`
	// Party is the voter identity.
	Party string `json:"party"`
	// Value is the actual position of the vote, yes or no.
	Value VoteValue `json:"value"`
	// Weight is the magnitude of the vote, bounded by the voter's
	// balance at cast time.
	Weight *num.Uint `json:"weight"`
	// Height is the ledger height the vote was cast at.
	Height uint64 `json:"height"`
}

// DeepClone returns a copy of the vote sharing no mutable state with
// the original.
func (v Vote) DeepClone() *Vote {
	cpy := v
	if v.Weight != nil {
		cpy.Weight = v.Weight.Clone()
	}
	return &cpy
}

func (v Vote) String() string {
	return fmt.Sprintf("proposal=%d party=%s value=%s weight=%s", v.ProposalID, v.Party, v.Value, v.Weight)
}

// ProposalSubmission is the command payload to create a proposal.
type ProposalSubmission struct {
	Title       string
	Description string
	FundingRef  *uint64
	// Executor optionally restricts an executor identity, it must
	// differ from the submitting party.
	Executor string
}

func (p ProposalSubmission) String() string {
	ref := "none"
	if p.FundingRef != nil {
		ref = fmt.Sprintf("%d", *p.FundingRef)
	}
	return fmt.Sprintf("title=%q fundingRef=%s executor=%q", p.Title, ref, p.Executor)
}

// VoteSubmission is the command payload to cast a vote.
type VoteSubmission struct {
	ProposalID uint64
	Value      VoteValue
	Weight     *num.Uint
}

func (v VoteSubmission) String() string {
	return fmt.Sprintf("proposal=%d value=%s weight=%s", v.ProposalID, v.Value, v.Weight)
}
