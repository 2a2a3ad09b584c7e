package netparams

const (
	// proposal parameters
	GovernanceProposalQuorumPercent   = "governance.proposal.quorumPercent"
	GovernanceProposalDurationHeights = "governance.proposal.durationHeights"

	// token parameters
	GovernanceTokenTotalSupply = "governance.token.totalSupply"

	// admin parameters
	GovernanceAdminAuthority = "governance.admin.authority"
)

func defaultNetParams() map[string]value {
	return map[string]value{
		GovernanceProposalQuorumPercent:   NewUint(UintGTE(1), UintLTE(100)).Mutable(true).MustUpdate("50"),
		GovernanceProposalDurationHeights: NewUint(UintGTE(1)).Mutable(true).MustUpdate("144"),
		GovernanceTokenTotalSupply:        NewBigUint(BigUintGTZero()).Mutable(true).MustUpdate("1000"),
		GovernanceAdminAuthority:          NewString(StringNonEmpty()).Mutable(true).MustUpdate("network"),
	}
}
