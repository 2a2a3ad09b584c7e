package main

import (
	"context"

	"code.witanprotocol.io/witan/cmd/witan/node"
	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/paths"
	"code.witanprotocol.io/witan/version"

	"github.com/jessevdk/go-flags"
)

type NodeCmd struct {
	config.HomeFlag

	config.Config
}

var nodeCmd NodeCmd

func (cmd *NodeCmd) Execute(args []string) error {
	log := logging.NewLoggerFromConfig(
		logging.NewDefaultConfig(),
	)
	defer log.AtExit()

	// we define this option to parse the cli args each time the config is
	// loaded. So that we can respect the cli flag precedence.
	parseFlagOpt := func(cfg *config.Config) error {
		_, err := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown).Parse()
		return err
	}

	witanPaths := paths.New(cmd.Home)

	confWatcher, err := config.NewWatcher(context.Background(), log, witanPaths, config.Use(parseFlagOpt))
	if err != nil {
		return err
	}

	return (&node.NodeCommand{
		Log:         log,
		Version:     version.Get(),
		VersionHash: version.GetCommitHash(),
	}).Run(
		confWatcher,
		witanPaths,
		args,
	)
}

func Node(ctx context.Context, parser *flags.Parser) error {
	nodeCmd = NodeCmd{
		Config: config.NewDefaultConfig(),
	}

	cmd, err := parser.AddCommand("node", "Runs a witan node", "Runs a witan node as defined by the config files", &nodeCmd)
	if err != nil {
		return err
	}

	// Print nested groups under parent's name using `::` as the separator.
	for _, parent := range cmd.Groups() {
		for _, grp := range parent.Groups() {
			grp.ShortDescription = parent.ShortDescription + "::" + grp.ShortDescription
		}
	}
	return nil
}
