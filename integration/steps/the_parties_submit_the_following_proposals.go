package steps

import (
	"context"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
	"code.witanprotocol.io/witan/types"
)

func ThePartiesSubmitTheFollowingProposals(
	engine *governance.Engine,
	timeService *ledgertime.Svc,
	table *godog.Table,
) error {
	ctx := context.Background()
	for _, r := range parseSubmitProposalTable(table) {
		row := submitProposalRow{row: r}

		sub := types.ProposalSubmission{
			Title:       row.Title(),
			Description: row.Description(),
			Executor:    row.Executor(),
		}
		if row.HasFundingRef() {
			ref := row.FundingRef()
			sub.FundingRef = &ref
		}

		_, err := engine.SubmitProposal(ctx, row.Party(), timeService.Height(), sub)
		if err := checkExpectedError(row, err); err != nil {
			return err
		}
	}
	return nil
}

func parseSubmitProposalTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"title",
	}, []string{
		"description",
		"funding ref",
		"executor",
		"error",
	})
}

type submitProposalRow struct {
	row RowWrapper
}

func (r submitProposalRow) Party() string {
	return r.row.MustStr("party")
}

func (r submitProposalRow) Title() string {
	return r.row.MustStr("title")
}

// Description defaults to a filler rationale so features only spell
// one out when the scenario is about description validation.
func (r submitProposalRow) Description() string {
	if !r.row.HasColumn("description") {
		return "funding decision on " + r.Title()
	}
	return r.row.MustStr("description")
}

func (r submitProposalRow) HasFundingRef() bool {
	return r.row.HasColumn("funding ref")
}

func (r submitProposalRow) FundingRef() uint64 {
	return r.row.MustU64("funding ref")
}

func (r submitProposalRow) Executor() string {
	return r.row.Str("executor")
}

func (r submitProposalRow) Reference() string {
	return r.Party() + "-" + r.Title()
}

func (r submitProposalRow) Error() string {
	return r.row.Str("error")
}

func (r submitProposalRow) ExpectError() bool {
	return r.row.HasColumn("error")
}
