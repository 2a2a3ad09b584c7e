package main

import (
	"context"
	"fmt"

	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/genesis"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/paths"
	"code.witanprotocol.io/witan/storage"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	config.HomeFlag

	Force bool `short:"f" long:"force" description:"Erase existing witan configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer logger.AtExit()

	witanPaths := paths.New(opts.Home)

	cfgLoader, err := config.InitialiseLoader(witanPaths)
	if err != nil {
		return fmt.Errorf("couldn't initialise configuration loader: %w", err)
	}

	configExists, err := cfgLoader.ConfigExists()
	if err != nil {
		return fmt.Errorf("couldn't verify configuration presence: %w", err)
	}

	if configExists && !opts.Force {
		return fmt.Errorf("configuration already exists at `%s` please remove it first or re-run using -f", cfgLoader.ConfigFilePath())
	}

	if configExists && opts.Force {
		cfgLoader.Remove()
	}

	cfg := config.NewDefaultConfig()

	if err := cfgLoader.Save(&cfg); err != nil {
		return fmt.Errorf("couldn't save configuration file: %w", err)
	}

	genesisFilePath, err := witanPaths.CreateConfigPathFor(paths.NodeGenesisFile)
	if err != nil {
		return fmt.Errorf("couldn't get path for %s: %w", paths.NodeGenesisFile, err)
	}

	if err := genesis.WriteDefault(genesisFilePath); err != nil {
		return fmt.Errorf("couldn't write genesis file: %w", err)
	}

	if err := storage.InitialiseStorage(witanPaths); err != nil {
		return fmt.Errorf("couldn't initialise storage: %w", err)
	}

	logger.Info("configuration generated successfully",
		logging.String("config-path", cfgLoader.ConfigFilePath()),
		logging.String("genesis-path", genesisFilePath),
	)

	return nil
}

func Init(ctx context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}

	short := "Initializes a witan node"
	long := "Generate the minimal configuration required for a witan node to start"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
