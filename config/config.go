package config

import (
	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/api"
	"code.witanprotocol.io/witan/broker"
	"code.witanprotocol.io/witan/checkpoint"
	"code.witanprotocol.io/witan/funding"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/metrics"
	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/stats"
	"code.witanprotocol.io/witan/storage"
)

// Config ties together all other application configuration types.
type Config struct {
	API               api.Config        `group:"API" namespace:"api"`
	Accounts          accounts.Config   `group:"Accounts" namespace:"accounts"`
	Broker            broker.Config     `group:"Broker" namespace:"broker"`
	Checkpoint        checkpoint.Config `group:"Checkpoint" namespace:"checkpoint"`
	Funding           funding.Config    `group:"Funding" namespace:"funding"`
	Governance        governance.Config `group:"Governance" namespace:"governance"`
	Logging           logging.Config    `group:"Logging" namespace:"logging"`
	Metrics           metrics.Config    `group:"Metrics" namespace:"metrics"`
	NetworkParameters netparams.Config  `group:"NetworkParameters" namespace:"netparams"`
	Stats             stats.Config      `group:"Stats" namespace:"stats"`
	Storage           storage.Config    `group:"Storage" namespace:"storage"`
	Time              ledgertime.Config `group:"Time" namespace:"time"`

	UlimitNOFile uint64 `long:"ulimit-no-files" description:"Set the max number of open files (see: ulimit -n)"`
}

// NewDefaultConfig returns a set of default configs for all witan
// packages, as specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		API:               api.NewDefaultConfig(),
		Accounts:          accounts.NewDefaultConfig(),
		Broker:            broker.NewDefaultConfig(),
		Checkpoint:        checkpoint.NewDefaultConfig(),
		Funding:           funding.NewDefaultConfig(),
		Governance:        governance.NewDefaultConfig(),
		Logging:           logging.NewDefaultConfig(),
		Metrics:           metrics.NewDefaultConfig(),
		NetworkParameters: netparams.NewDefaultConfig(),
		Stats:             stats.NewDefaultConfig(),
		Storage:           storage.NewDefaultConfig(),
		Time:              ledgertime.NewDefaultConfig(),
		UlimitNOFile:      8192,
	}
}
