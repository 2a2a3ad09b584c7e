package steps

import (
	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
)

// TheProposalsShouldHaveTheFollowingState asserts on the proposals
// named in the table. Only the columns present are compared, the state
// column is derived at the current ledger height.
func TheProposalsShouldHaveTheFollowingState(
	engine *governance.Engine,
	timeService *ledgertime.Svc,
	table *godog.Table,
) error {
	for _, r := range parseProposalStateTable(table) {
		row := proposalStateRow{row: r}

		proposal, err := engine.GetProposalByTitle(row.Proposal())
		if err != nil {
			return errProposalNotFound(row.Proposal(), err)
		}

		expected := map[string]string{}
		got := map[string]string{}

		if row.HasID() {
			expected["id"] = u64ToS(row.ID())
			got["id"] = u64ToS(proposal.ID)
		}
		if row.HasStartHeight() {
			expected["start height"] = u64ToS(row.StartHeight())
			got["start height"] = u64ToS(proposal.StartHeight)
		}
		if row.HasEndHeight() {
			expected["end height"] = u64ToS(row.EndHeight())
			got["end height"] = u64ToS(proposal.EndHeight)
		}
		if row.HasState() {
			expected["state"] = row.State()
			got["state"] = proposal.StateAt(timeService.Height()).String()
		}
		if row.HasYes() {
			expected["yes"] = row.Yes()
			got["yes"] = proposal.Yes.String()
		}
		if row.HasNo() {
			expected["no"] = row.No()
			got["no"] = proposal.No.String()
		}
		if row.HasExecuted() {
			expected["executed"] = boolToS(row.Executed())
			got["executed"] = boolToS(proposal.Executed)
		}

		for name := range expected {
			if expected[name] != got[name] {
				return formatDiff("invalid state for proposal "+row.Proposal(), expected, got)
			}
		}
	}
	return nil
}

func parseProposalStateTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"proposal",
	}, []string{
		"id",
		"start height",
		"end height",
		"state",
		"yes",
		"no",
		"executed",
	})
}

type proposalStateRow struct {
	row RowWrapper
}

func (r proposalStateRow) Proposal() string {
	return r.row.MustStr("proposal")
}

func (r proposalStateRow) HasID() bool {
	return r.row.HasColumn("id")
}

func (r proposalStateRow) ID() uint64 {
	return r.row.MustU64("id")
}

func (r proposalStateRow) HasStartHeight() bool {
	return r.row.HasColumn("start height")
}

func (r proposalStateRow) StartHeight() uint64 {
	return r.row.MustU64("start height")
}

func (r proposalStateRow) HasEndHeight() bool {
	return r.row.HasColumn("end height")
}

func (r proposalStateRow) EndHeight() uint64 {
	return r.row.MustU64("end height")
}

func (r proposalStateRow) HasState() bool {
	return r.row.HasColumn("state")
}

func (r proposalStateRow) State() string {
	return r.row.MustStr("state")
}

func (r proposalStateRow) HasYes() bool {
	return r.row.HasColumn("yes")
}

func (r proposalStateRow) Yes() string {
	return r.row.MustStr("yes")
}

func (r proposalStateRow) HasNo() bool {
	return r.row.HasColumn("no")
}

func (r proposalStateRow) No() string {
	return r.row.MustStr("no")
}

func (r proposalStateRow) HasExecuted() bool {
	return r.row.HasColumn("executed")
}

func (r proposalStateRow) Executed() bool {
	return r.row.MustBool("executed")
}
