package core_test

import (
	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/integration/stubs"
	"code.witanprotocol.io/witan/ledgertime"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/netparams"
)

var execsetup *governanceTestSetup

// governanceTestSetup wires real engines the way the node does, with
// the event socket and the funding service swapped for stubs.
type governanceTestSetup struct {
	log *logging.Logger

	broker      *stubs.BrokerStub
	sink        *stubs.FundingSinkStub
	timeService *ledgertime.Svc
	accounts    *accounts.Svc
	netParams   *netparams.Store
	engine      *governance.Engine
}

func newGovernanceTestSetup() *governanceTestSetup {
	log := logging.NewTestLogger()
	broker := stubs.NewBrokerStub()
	sink := stubs.NewFundingSinkStub()

	accountsSvc := accounts.NewService(log, accounts.NewDefaultConfig())
	netParams := netparams.New(log, netparams.NewDefaultConfig(), broker)
	timeService := ledgertime.New(log, ledgertime.NewDefaultConfig(), broker)
	engine := governance.NewEngine(log, governance.NewDefaultConfig(), netParams, accountsSvc, sink, broker)

	timeService.NotifyOnTick(netParams.OnTick)

	return &governanceTestSetup{
		log:         log,
		broker:      broker,
		sink:        sink,
		timeService: timeService,
		accounts:    accountsSvc,
		netParams:   netParams,
		engine:      engine,
	}
}
