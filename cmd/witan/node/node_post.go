package node

import (
	"code.witanprotocol.io/witan/logging"
)

func (l *NodeCommand) postRun([]string) error {
	// final checkpoint, so a restart resumes from the exact shutdown state
	if l.checkpoint != nil && l.checkpointStore != nil {
		cp, err := l.checkpoint.Make(l.timeService.Height())
		if err != nil {
			l.Log.Error("unable to generate the final checkpoint", logging.Error(err))
		} else if err := l.checkpointStore.Save(cp); err != nil {
			l.Log.Error("unable to save the final checkpoint", logging.Error(err))
		}
	}

	if l.proposalStore != nil {
		if err := l.proposalStore.Close(); err != nil {
			l.Log.Error("error closing proposal store", logging.Error(err))
		}
	}
	if l.voteStore != nil {
		if err := l.voteStore.Close(); err != nil {
			l.Log.Error("error closing vote store", logging.Error(err))
		}
	}
	if l.paramStore != nil {
		if err := l.paramStore.Close(); err != nil {
			l.Log.Error("error closing param store", logging.Error(err))
		}
	}
	if l.checkpointStore != nil {
		if err := l.checkpointStore.Close(); err != nil {
			l.Log.Error("error closing checkpoint store", logging.Error(err))
		}
	}

	return nil
}

func (l *NodeCommand) persistentPost([]string) error {
	l.Log.Info("Witan shutdown complete",
		logging.Uint64("height", l.timeService.Height()),
	)
	l.Log.AtExit()
	l.cancel()

	return nil
}
