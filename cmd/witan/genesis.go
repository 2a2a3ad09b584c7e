package main

import (
	"context"
	"fmt"

	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/genesis"
	"code.witanprotocol.io/witan/paths"

	"github.com/jessevdk/go-flags"
)

type GenesisCmd struct {
	config.HomeFlag

	Generate genesisGenerateCmd `command:"generate" description:"Generates the default genesis file"`
}

type genesisGenerateCmd struct {
	DryRun bool `long:"dry-run" description:"Display the genesis file without writing it"`
}

var genesisCmd GenesisCmd

func (opts *genesisGenerateCmd) Execute(_ []string) error {
	if opts.DryRun {
		doc, err := genesis.DumpDefault()
		if err != nil {
			return fmt.Errorf("couldn't generate genesis document: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	witanPaths := paths.New(genesisCmd.Home)

	genesisFilePath, err := witanPaths.CreateConfigPathFor(paths.NodeGenesisFile)
	if err != nil {
		return fmt.Errorf("couldn't get path for %s: %w", paths.NodeGenesisFile, err)
	}

	if err := genesis.WriteDefault(genesisFilePath); err != nil {
		return fmt.Errorf("couldn't write genesis file: %w", err)
	}

	fmt.Printf("genesis file generated at %s\n", genesisFilePath)
	return nil
}

func Genesis(ctx context.Context, parser *flags.Parser) error {
	genesisCmd = GenesisCmd{}

	desc := "Manage the genesis file"
	_, err := parser.AddCommand("genesis", desc, desc, &genesisCmd)
	return err
}
