package steps

import (
	"context"
	"strconv"

	"code.witanprotocol.io/witan/ledgertime"
)

func TheLedgerHeightIs(timeService *ledgertime.Svc, rawHeight string) error {
	height, err := strconv.ParseUint(rawHeight, 10, 64)
	if err != nil {
		return err
	}
	timeService.SetHeight(context.Background(), height)
	return nil
}

func TheLedgerAdvancesBy(timeService *ledgertime.Svc, rawHeights string) error {
	heights, err := strconv.ParseUint(rawHeights, 10, 64)
	if err != nil {
		return err
	}
	ctx := context.Background()
	for i := uint64(0); i < heights; i++ {
		timeService.Tick(ctx)
	}
	return nil
}
