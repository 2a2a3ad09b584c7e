package steps

import (
	"fmt"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
)

func DebugProposals(engine *governance.Engine, timeService *ledgertime.Svc) error {
	fmt.Println("DUMPING PROPOSALS")
	height := timeService.Height()
	for _, p := range engine.GetProposals() {
		fmt.Printf("proposal %d %q: state=%s window=[%d,%d] yes=%s no=%s\n",
			p.ID, p.Title, p.StateAt(height), p.StartHeight, p.EndHeight, p.Yes, p.No)
	}
	return nil
}
