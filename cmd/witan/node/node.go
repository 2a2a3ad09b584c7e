package node

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/api"
	"code.witanprotocol.io/witan/broker"
	"code.witanprotocol.io/witan/checkpoint"
	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/genesis"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/ledgertime"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/metrics"
	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/paths"
	"code.witanprotocol.io/witan/stats"
	"code.witanprotocol.io/witan/storage"
	"code.witanprotocol.io/witan/subscribers"
	"code.witanprotocol.io/witan/version"

	"golang.org/x/sync/errgroup"
)

// NodeCommand use to implement 'node' command.
type NodeCommand struct {
	ctx    context.Context
	cancel context.CancelFunc

	// Stores
	proposalStore   *storage.Proposals
	voteStore       *storage.Votes
	paramStore      *storage.Params
	checkpointStore *storage.Checkpoints

	// Subscribers
	governanceSub *subscribers.GovernanceStoreSub
	netParamSub   *subscribers.NetParamStoreSub
	statsSub      *subscribers.StatsSub

	broker         *broker.Broker
	genesisHandler *genesis.Handler
	timeService    *ledgertime.Svc
	accounts       *accounts.Svc
	netParams      *netparams.Store
	sink           governance.ExecutionSink
	governance     *governance.Engine
	checkpoint     *checkpoint.Engine
	apiServer      *api.Server

	stats *stats.Stats

	Log           *logging.Logger
	witanPaths    paths.Paths
	configWatcher *config.Watcher
	conf          config.Config

	Version     string
	VersionHash string
}

func (l *NodeCommand) Run(cfgwatchr *config.Watcher, witanPaths paths.Paths, args []string) error {
	l.configWatcher = cfgwatchr

	l.conf = cfgwatchr.Get()
	l.witanPaths = witanPaths

	stages := []func([]string) error{
		l.persistentPre,
		l.preRun,
		l.runNode,
		l.postRun,
		l.persistentPost,
	}
	for _, fn := range stages {
		if err := fn(args); err != nil {
			return err
		}
	}

	return nil
}

// runNode is the entry of node command.
func (l *NodeCommand) runNode([]string) error {
	defer l.cancel()

	ctx, cancel := context.WithCancel(l.ctx)
	eg, ctx := errgroup.WithContext(ctx)

	// REST server
	l.apiServer = api.NewServer(
		l.Log,
		l.conf.API,
		l.governance,
		l.netParams,
		l.timeService,
		l.proposalStore,
		l.stats,
	)

	// watch configs
	l.configWatcher.OnConfigUpdate(
		func(cfg config.Config) { l.apiServer.ReloadConf(cfg.API) },
	)

	// start the REST server
	eg.Go(func() error { return l.apiServer.Start() })

	// start the height clock
	eg.Go(func() error {
		l.timeService.Start(ctx)
		return ctx.Err()
	})

	// stop the REST server once the run context ends
	eg.Go(func() error {
		<-ctx.Done()
		return l.apiServer.Stop()
	})

	// waitSig will wait for a sigterm or sigint interrupt.
	eg.Go(func() error {
		gracefulStop := make(chan os.Signal, 1)
		signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)

		select {
		case sig := <-gracefulStop:
			l.Log.Info("Caught signal", logging.String("name", fmt.Sprintf("%+v", sig)))
			cancel()
		case <-ctx.Done():
			return ctx.Err()
		}

		return nil
	})

	metrics.Start(l.conf.Metrics)

	go l.checkForUpdates(ctx)

	l.Log.Info("Witan startup complete")

	err := eg.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func (l *NodeCommand) checkForUpdates(ctx context.Context) {
	newest, err := version.Check(
		version.BuildGithubReleasesRequestFrom(ctx, version.ReleasesAPI),
		l.Version,
	)
	if err != nil {
		l.Log.Warn("could not check for newer releases", logging.Error(err))
		return
	}
	if newest != nil {
		l.Log.Warn("a newer release is available",
			logging.String("running", l.Version),
			logging.String("newest", newest.String()),
		)
	}
}

// checkpointOnTick persists a checkpoint when one is due at this height.
func (l *NodeCommand) checkpointOnTick(_ context.Context, height uint64) {
	cp, err := l.checkpoint.Checkpoint(height)
	if err != nil {
		l.Log.Error("unable to generate checkpoint",
			logging.Uint64("height", height),
			logging.Error(err),
		)
		return
	}
	if cp == nil {
		// not due yet
		return
	}
	if err := l.checkpointStore.Save(cp); err != nil {
		l.Log.Error("unable to save checkpoint",
			logging.Uint64("height", height),
			logging.Error(err),
		)
	}
}
