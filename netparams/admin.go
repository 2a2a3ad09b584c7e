package netparams

import (
	"context"
	"errors"
	"strconv"

	"code.witanprotocol.io/witan/types/num"
)

var (
	// ErrUnauthorized is returned by every guarded mutator when the
	// caller is not the current admin authority.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidQuorum is returned when a quorum percent is outside (0,100].
	ErrInvalidQuorum = errors.New("quorum percent out of range")
	// ErrInvalidDuration is returned when a proposal duration is zero.
	ErrInvalidDuration = errors.New("proposal duration must be positive")
	// ErrInvalidSupply is returned when a total supply is zero.
	ErrInvalidSupply = errors.New("total supply must be positive")
	// ErrInvalidAuthority is returned when the new authority does not
	// differ from the caller.
	ErrInvalidAuthority = errors.New("invalid authority")
)

// QuorumPercent returns the live quorum percentage.
func (s *Store) QuorumPercent() (uint64, error) {
	return s.GetUint(GovernanceProposalQuorumPercent)
}

// ProposalDuration returns the live proposal duration, in ledger heights.
func (s *Store) ProposalDuration() (uint64, error) {
	return s.GetUint(GovernanceProposalDurationHeights)
}

// TotalSupply returns the live total voting supply.
func (s *Store) TotalSupply() (*num.Uint, error) {
	return s.GetBigUint(GovernanceTokenTotalSupply)
}

// Authority returns the current admin authority identity.
func (s *Store) Authority() (string, error) {
	return s.GetString(GovernanceAdminAuthority)
}

func (s *Store) checkAuthority(party string) error {
	auth, err := s.Authority()
	if err != nil {
		return err
	}
	if party != auth {
		return ErrUnauthorized
	}
	return nil
}

// SetQuorumPercent updates the quorum percentage, the caller must be
// the current admin authority and the percentage in (0,100].
func (s *Store) SetQuorumPercent(ctx context.Context, party string, percent uint64) error {
	if err := s.checkAuthority(party); err != nil {
		return err
	}
	if percent == 0 || percent > 100 {
		return ErrInvalidQuorum
	}
	return s.Update(ctx, GovernanceProposalQuorumPercent, strconv.FormatUint(percent, 10))
}

// SetProposalDuration updates the proposal duration, the caller must
// be the current admin authority and the duration positive.
func (s *Store) SetProposalDuration(ctx context.Context, party string, heights uint64) error {
	if err := s.checkAuthority(party); err != nil {
		return err
	}
	if heights == 0 {
		return ErrInvalidDuration
	}
	return s.Update(ctx, GovernanceProposalDurationHeights, strconv.FormatUint(heights, 10))
}

// SetTotalSupply updates the total voting supply, the caller must be
// the current admin authority and the supply positive.
func (s *Store) SetTotalSupply(ctx context.Context, party string, supply *num.Uint) error {
	if err := s.checkAuthority(party); err != nil {
		return err
	}
	if supply == nil || supply.IsZero() {
		return ErrInvalidSupply
	}
	return s.Update(ctx, GovernanceTokenTotalSupply, supply.String())
}

// SetAuthority re-points the admin authority. The new authority is
// checked against the calling identity, not the stored one, so the
// admin can hand over to any identity except itself.
func (s *Store) SetAuthority(ctx context.Context, party, newAuthority string) error {
	if err := s.checkAuthority(party); err != nil {
		return err
	}
	if len(newAuthority) == 0 || newAuthority == party {
		return ErrInvalidAuthority
	}
	return s.Update(ctx, GovernanceAdminAuthority, newAuthority)
}
