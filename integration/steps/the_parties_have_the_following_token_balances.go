package steps

import (
	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/types/num"
)

func ThePartiesHaveTheFollowingTokenBalances(
	accountsSvc *accounts.Svc,
	table *godog.Table,
) error {
	for _, r := range parseTokenBalancesTable(table) {
		row := tokenBalanceRow{row: r}
		accountsSvc.SetBalance(row.Party(), row.Balance())
	}
	return nil
}

func parseTokenBalancesTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"party",
		"balance",
	}, nil)
}

type tokenBalanceRow struct {
	row RowWrapper
}

func (r tokenBalanceRow) Party() string {
	return r.row.MustStr("party")
}

func (r tokenBalanceRow) Balance() *num.Uint {
	return r.row.MustUint("balance")
}
