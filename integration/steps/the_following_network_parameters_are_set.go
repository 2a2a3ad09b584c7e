package steps

import (
	"context"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/netparams"
)

func TheFollowingNetworkParametersAreSet(
	netParams *netparams.Store,
	table *godog.Table,
) error {
	ctx := context.Background()
	for _, r := range parseNetworkParametersTable(table) {
		row := netparamRow{row: r}

		err := netParams.Update(ctx, row.Name(), row.Value())
		if err := checkExpectedError(row, err); err != nil {
			return err
		}
	}
	return nil
}

func parseNetworkParametersTable(table *godog.Table) []RowWrapper {
	return StrictParseTable(table, []string{
		"name",
		"value",
	}, []string{
		"error",
	})
}

type netparamRow struct {
	row RowWrapper
}

func (r netparamRow) Name() string {
	return r.row.MustStr("name")
}

func (r netparamRow) Value() string {
	return r.row.MustStr("value")
}

func (r netparamRow) Reference() string {
	return r.Name()
}

func (r netparamRow) Error() string {
	return r.row.Str("error")
}

func (r netparamRow) ExpectError() bool {
	return r.row.HasColumn("error")
}
