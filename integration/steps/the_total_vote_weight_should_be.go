package steps

import (
	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/governance"
)

func TheTotalVoteWeightOnProposalShouldBe(
	engine *governance.Engine,
	title, rawWeight string,
) error {
	proposal, err := engine.GetProposalByTitle(title)
	if err != nil {
		return errProposalNotFound(title, err)
	}

	total := engine.TotalVotes(proposal.ID)
	if total.String() != rawWeight {
		return formatDiff("invalid total vote weight on proposal "+title,
			map[string]string{
				"total": rawWeight,
			},
			map[string]string{
				"total": total.String(),
			},
		)
	}
	return nil
}

func ThePartiesShouldHaveVoted(
	engine *governance.Engine,
	table *godog.Table,
) error {
	for _, r := range parseVotedTable(table) {
		row := votedRow{row: r}

		proposal, err := engine.GetProposalByTitle(row.Proposal())
		if err != nil {
			return errProposalNotFound(row.Proposal(), err)
		}

		if voted := engine.HasVoted(proposal.ID, row.Party()); voted != row.Voted() {
			return formatDiff("invalid vote registration for party "+row.Party(),
				map[string]string{
					"voted": boolToS(row.Voted()),
				},
				map[string]string{
					"voted": boolToS(voted),
				},
			)
		}
	}
	return nil
}

func parseVotedTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"proposal",
		"voted",
	}, nil)
}

type votedRow struct {
	row RowWrapper
}

func (r votedRow) Party() string {
	return r.row.MustStr("party")
}

func (r votedRow) Proposal() string {
	return r.row.MustStr("proposal")
}

func (r votedRow) Voted() bool {
	return r.row.MustBool("voted")
}
