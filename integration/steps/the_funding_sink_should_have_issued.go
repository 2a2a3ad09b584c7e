package steps

import (
	"fmt"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/integration/stubs"
)

// TheFundingSinkShouldHaveIssued asserts on the sink calls in order,
// one table row per recorded issuance.
func TheFundingSinkShouldHaveIssued(
	sink *stubs.FundingSinkStub,
	table *godog.Table,
) error {
	rows := parseIssuanceTable(table)
	issued := sink.Issued()
	if len(issued) != len(rows) {
		return fmt.Errorf("expected %d issuances, got %d", len(rows), len(issued))
	}

	for i, r := range rows {
		row := issuanceRow{row: r}

		expected := map[string]string{
			"funding ref": u64ToS(row.FundingRef()),
		}
		got := map[string]string{
			"funding ref": u64ToS(issued[i].FundingRef),
		}
		if row.HasRate() {
			expected["rate"] = row.Rate()
			got["rate"] = issued[i].Rate.String()
		}
		if row.HasTermHeights() {
			expected["term heights"] = u64ToS(row.TermHeights())
			got["term heights"] = u64ToS(issued[i].TermHeights)
		}

		for name := range expected {
			if expected[name] != got[name] {
				return formatDiff(fmt.Sprintf("invalid issuance at position %d", i), expected, got)
			}
		}
	}
	return nil
}

func TheFundingSinkShouldHaveIssuedNothing(sink *stubs.FundingSinkStub) error {
	if n := sink.IssuanceCount(); n != 0 {
		return fmt.Errorf("expected no issuances, got %d", n)
	}
	return nil
}

func parseIssuanceTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"funding ref",
	}, []string{
		"rate",
		"term heights",
	})
}

type issuanceRow struct {
	row RowWrapper
}

func (r issuanceRow) FundingRef() uint64 {
	return r.row.MustU64("funding ref")
}

func (r issuanceRow) HasRate() bool {
	return r.row.HasColumn("rate")
}

func (r issuanceRow) Rate() string {
	return r.row.MustStr("rate")
}

func (r issuanceRow) HasTermHeights() bool {
	return r.row.HasColumn("term heights")
}

func (r issuanceRow) TermHeights() uint64 {
	return r.row.MustU64("term heights")
}
