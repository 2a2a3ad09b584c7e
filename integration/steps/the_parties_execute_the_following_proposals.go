package steps

import (
	"context"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
)

func ThePartiesExecuteTheFollowingProposals(
	engine *governance.Engine,
	timeService *ledgertime.Svc,
	table *godog.Table,
) error {
	ctx := context.Background()
	for _, r := range parseExecuteProposalTable(table) {
		row := executeProposalRow{row: r}

		proposal, err := engine.GetProposalByTitle(row.Proposal())
		if err != nil {
			// an unknown title may be the point of the scenario
			if err := checkExpectedError(row, err); err != nil {
				return err
			}
			continue
		}

		err = engine.ExecuteProposal(ctx, row.Party(), timeService.Height(), proposal.ID)
		if err := checkExpectedError(row, err); err != nil {
			return err
		}
	}
	return nil
}

func parseExecuteProposalTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"proposal",
	}, []string{
		"error",
	})
}

type executeProposalRow struct {
	row RowWrapper
}

func (r executeProposalRow) Party() string {
	return r.row.MustStr("party")
}

func (r executeProposalRow) Proposal() string {
	return r.row.MustStr("proposal")
}

func (r executeProposalRow) Reference() string {
	return r.Party() + "-" + r.Proposal()
}

func (r executeProposalRow) Error() string {
	return r.row.Str("error")
}

func (r executeProposalRow) ExpectError() bool {
	return r.row.HasColumn("error")
}
