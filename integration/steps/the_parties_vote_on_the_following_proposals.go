package steps

import (
	"context"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"
)

func ThePartiesVoteOnTheFollowingProposals(
	engine *governance.Engine,
	timeService *ledgertime.Svc,
	table *godog.Table,
) error {
	ctx := context.Background()
	for _, r := range parseVoteTable(table) {
		row := voteRow{row: r}

		proposal, err := engine.GetProposalByTitle(row.Proposal())
		if err != nil {
			// an unknown title may be the point of the scenario
			if err := checkExpectedError(row, err); err != nil {
				return err
			}
			continue
		}

		err = engine.CastVote(ctx, row.Party(), timeService.Height(), types.VoteSubmission{
			ProposalID: proposal.ID,
			Value:      row.Vote(),
			Weight:     row.Weight(),
		})
		if err := checkExpectedError(row, err); err != nil {
			return err
		}
	}
	return nil
}

func parseVoteTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"proposal",
		"vote",
		"weight",
	}, []string{
		"error",
	})
}

type voteRow struct {
	row RowWrapper
}

func (r voteRow) Party() string {
	return r.row.MustStr("party")
}

func (r voteRow) Proposal() string {
	return r.row.MustStr("proposal")
}

func (r voteRow) Vote() types.VoteValue {
	return r.row.MustVote("vote")
}

func (r voteRow) Weight() *num.Uint {
	return r.row.MustUint("weight")
}

func (r voteRow) Reference() string {
	return r.Party() + "-" + r.Proposal()
}

func (r voteRow) Error() string {
	return r.row.Str("error")
}

func (r voteRow) ExpectError() bool {
	return r.row.HasColumn("error")
}
