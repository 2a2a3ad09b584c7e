package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/types/num"
)

// ThePartiesUpdateTheFollowingNetworkParameters drives the guarded
// admin mutators, so authority checks apply, unlike the raw genesis
// style updates.
func ThePartiesUpdateTheFollowingNetworkParameters(
	netParams *netparams.Store,
	table *godog.Table,
) error {
	ctx := context.Background()
	for _, r := range parseGuardedParametersTable(table) {
		row := guardedParamRow{row: r}

		var err error
		switch row.Name() {
		case netparams.GovernanceProposalQuorumPercent:
			err = netParams.SetQuorumPercent(ctx, row.Party(), row.Uint64Value())
		case netparams.GovernanceProposalDurationHeights:
			err = netParams.SetProposalDuration(ctx, row.Party(), row.Uint64Value())
		case netparams.GovernanceTokenTotalSupply:
			err = netParams.SetTotalSupply(ctx, row.Party(), row.UintValue())
		case netparams.GovernanceAdminAuthority:
			err = netParams.SetAuthority(ctx, row.Party(), row.Value())
		default:
			return fmt.Errorf("no admin mutator for parameter %q", row.Name())
		}

		if err := checkExpectedError(row, err); err != nil {
			return err
		}
	}
	return nil
}

func parseGuardedParametersTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"name",
		"value",
	}, []string{
		"error",
	})
}

type guardedParamRow struct {
	row RowWrapper
}

func (r guardedParamRow) Party() string {
	return r.row.MustStr("party")
}

func (r guardedParamRow) Name() string {
	return r.row.MustStr("name")
}

func (r guardedParamRow) Value() string {
	return r.row.MustStr("value")
}

func (r guardedParamRow) Uint64Value() uint64 {
	return r.row.MustU64("value")
}

func (r guardedParamRow) UintValue() *num.Uint {
	return r.row.MustUint("value")
}

func (r guardedParamRow) Reference() string {
	return fmt.Sprintf("%s-%s", r.Party(), r.Name())
}

func (r guardedParamRow) Error() string {
	return r.row.Str("error")
}

func (r guardedParamRow) ExpectError() bool {
	return r.row.HasColumn("error")
}
