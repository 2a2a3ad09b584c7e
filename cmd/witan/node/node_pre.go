package node

import (
	"context"
	"errors"
	"fmt"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/broker"
	"code.witanprotocol.io/witan/checkpoint"
	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/funding"
	"code.witanprotocol.io/witan/genesis"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
	vgfs "code.witanprotocol.io/witan/libs/fs"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/paths"
	"code.witanprotocol.io/witan/stats"
	"code.witanprotocol.io/witan/storage"
	"code.witanprotocol.io/witan/subscribers"
)

func (l *NodeCommand) persistentPre([]string) (err error) {
	// this shouldn't happen...
	if l.cancel != nil {
		l.cancel()
	}
	// ensure we cancel the context on error
	defer func() {
		if err != nil {
			l.cancel()
		}
	}()
	l.ctx, l.cancel = context.WithCancel(context.Background())

	conf := l.configWatcher.Get()

	// reload logger with the setup from configuration
	l.Log = logging.NewLoggerFromConfig(conf.Logging)

	l.Log.Info("Starting Witan",
		logging.String("version", l.Version),
		logging.String("version-hash", l.VersionHash))

	// Set ulimits
	if err = l.SetUlimits(); err != nil {
		l.Log.Warn("Unable to set ulimits",
			logging.Error(err))
	} else {
		l.Log.Debug("Set ulimits",
			logging.Uint64("nofile", l.conf.UlimitNOFile))
	}

	l.stats = stats.New(l.Log, l.conf.Stats, l.Version, l.VersionHash)

	return nil
}

// we've already set everything up WRT arguments etc... just bootstrap the node.
func (l *NodeCommand) preRun([]string) (err error) {
	// ensure that context is cancelled if we return an error here
	defer func() {
		if err != nil {
			l.cancel()
		}
	}()

	l.genesisHandler = genesis.New(l.Log)

	l.broker, err = broker.New(l.ctx, l.Log, l.conf.Broker)
	if err != nil {
		l.Log.Error("unable to initialise broker", logging.Error(err))
		return err
	}

	l.timeService = ledgertime.New(l.Log, l.conf.Time, l.broker)
	l.accounts = accounts.NewService(l.Log, l.conf.Accounts)
	l.netParams = netparams.New(l.Log, l.conf.NetworkParameters, l.broker)

	// an empty endpoint selects the development noop sink
	if len(l.conf.Funding.Endpoint) > 0 {
		sink := funding.NewHTTPSink(l.Log, l.conf.Funding)
		l.configWatcher.OnConfigUpdate(
			func(cfg config.Config) { sink.ReloadConf(cfg.Funding) },
		)
		l.sink = sink
	} else {
		sink := funding.NewNoopSink(l.Log, l.conf.Funding)
		l.configWatcher.OnConfigUpdate(
			func(cfg config.Config) { sink.ReloadConf(cfg.Funding) },
		)
		l.sink = sink
	}

	l.governance = governance.NewEngine(l.Log, l.conf.Governance, l.netParams, l.accounts, l.sink, l.broker)

	// checkpoint engine
	l.checkpoint, err = checkpoint.New(l.Log, l.conf.Checkpoint, l.netParams, l.timeService, l.governance)
	if err != nil {
		return err
	}

	if err = l.setupStorage(); err != nil {
		return err
	}

	// archive subscribers, fed from the broker
	l.governanceSub = subscribers.NewGovernanceStoreSub(l.ctx, l.Log, l.proposalStore, l.voteStore, true)
	l.netParamSub = subscribers.NewNetParamStoreSub(l.ctx, l.Log, l.paramStore, true)
	l.statsSub = subscribers.NewStatsSub(l.ctx, l.stats.Ledger, true)
	l.broker.SubscribeBatch(l.governanceSub, l.netParamSub, l.statsSub)

	l.genesisHandler.OnGenesisAppStateLoaded(
		// be sure to keep this in order. The parameters come first so
		// the opening event stream starts with the network configuration
		// before any account dependent state.
		l.netParams.UponGenesis,
		l.accounts.UponGenesis,
	)

	if err = l.loadGenesis(); err != nil {
		return err
	}

	// a restored checkpoint overrides the genesis state
	if err = l.restoreCheckpoint(); err != nil {
		return err
	}

	l.timeService.NotifyOnTick(l.netParams.OnTick)
	l.timeService.NotifyOnTick(l.configWatcher.OnTimeUpdate)
	l.timeService.NotifyOnTick(l.checkpointOnTick)

	// setup config reloads for all engines / services /etc
	l.setupConfigWatchers()

	return nil
}

func (l *NodeCommand) setupStorage() error {
	// a badger failure the stores cannot recover from stops the node
	onCriticalError := func() {
		l.Log.Error("node is shutting down due to a storage failure")
		l.cancel()
	}

	proposalsHome, err := l.witanPaths.CreateStateDirFor(paths.ProposalsStoreHome)
	if err != nil {
		return fmt.Errorf("couldn't get directory for %s: %w", paths.ProposalsStoreHome, err)
	}
	if l.proposalStore, err = storage.NewProposals(l.Log, proposalsHome, l.conf.Storage, onCriticalError); err != nil {
		return err
	}

	votesHome, err := l.witanPaths.CreateStateDirFor(paths.VotesStoreHome)
	if err != nil {
		return fmt.Errorf("couldn't get directory for %s: %w", paths.VotesStoreHome, err)
	}
	if l.voteStore, err = storage.NewVotes(l.Log, votesHome, l.conf.Storage, onCriticalError); err != nil {
		return err
	}

	paramsHome, err := l.witanPaths.CreateStateDirFor(paths.ParamsStoreHome)
	if err != nil {
		return fmt.Errorf("couldn't get directory for %s: %w", paths.ParamsStoreHome, err)
	}
	if l.paramStore, err = storage.NewParams(l.Log, paramsHome, l.conf.Storage, onCriticalError); err != nil {
		return err
	}

	checkpointsHome, err := l.witanPaths.CreateStateDirFor(paths.CheckpointsStoreHome)
	if err != nil {
		return fmt.Errorf("couldn't get directory for %s: %w", paths.CheckpointsStoreHome, err)
	}
	if l.checkpointStore, err = storage.NewCheckpoints(l.Log, checkpointsHome, l.conf.Storage, onCriticalError); err != nil {
		return err
	}

	return nil
}

func (l *NodeCommand) loadGenesis() error {
	genesisFilePath := l.witanPaths.ConfigPathFor(paths.NodeGenesisFile)

	exists, err := vgfs.FileExists(genesisFilePath)
	if err != nil {
		return fmt.Errorf("couldn't verify genesis file presence: %w", err)
	}
	if !exists {
		return fmt.Errorf("no genesis file at %s, please run `witan init` first", genesisFilePath)
	}

	raw, err := vgfs.ReadFile(genesisFilePath)
	if err != nil {
		return fmt.Errorf("couldn't read genesis file: %w", err)
	}

	return l.genesisHandler.LoadState(l.ctx, raw)
}

func (l *NodeCommand) restoreCheckpoint() error {
	cp, err := l.checkpointStore.GetLatest()
	if err != nil {
		if errors.Is(err, storage.ErrNoCheckpoint) {
			l.Log.Info("no checkpoint in store, starting from the genesis state")
			return nil
		}
		return err
	}
	return l.checkpoint.Load(l.ctx, cp)
}

func (l *NodeCommand) setupConfigWatchers() {
	l.configWatcher.OnConfigUpdate(
		func(cfg config.Config) { l.governance.ReloadConf(cfg.Governance) },
		func(cfg config.Config) { l.timeService.ReloadConf(cfg.Time) },
		func(cfg config.Config) { l.accounts.ReloadConf(cfg.Accounts) },
		func(cfg config.Config) { l.checkpoint.ReloadConf(cfg.Checkpoint) },
		func(cfg config.Config) { l.proposalStore.ReloadConf(cfg.Storage) },
		func(cfg config.Config) { l.voteStore.ReloadConf(cfg.Storage) },
		func(cfg config.Config) { l.paramStore.ReloadConf(cfg.Storage) },
		func(cfg config.Config) { l.checkpointStore.ReloadConf(cfg.Storage) },
		func(cfg config.Config) { l.stats.ReloadConf(cfg.Stats) },
	)

	// node level config, the ulimit field amongst others
	l.configWatcher.OnConfigUpdate(
		func(cfg config.Config) { l.conf = cfg },
	)
}
