package storage

import (
	"encoding/json"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

var (
	// ErrNoCheckpoint signals that no checkpoint has been taken yet.
	ErrNoCheckpoint = errors.New("no checkpoint in store")
)

// Checkpoints is the badger backed archive of state checkpoints, keyed by
// height so the latest is always the last key.
type Checkpoints struct {
	Config
	log             *logging.Logger
	badger          *badgerStore
	onCriticalError func()
}

// NewCheckpoints opens the checkpoint archive under the given directory.
func NewCheckpoints(log *logging.Logger, home string, c Config, onCriticalError func()) (*Checkpoints, error) {
	log = log.Named(namedLogger)
	log.SetLevel(c.Level.Get())

	if err := InitStoreDirectory(home); err != nil {
		return nil, errors.Wrap(err, "error on init badger database for checkpoints storage")
	}
	db, err := newBadgerStore(getOptionsFromConfig(c.Checkpoints, home, log))
	if err != nil {
		return nil, errors.Wrap(err, "error opening badger database for checkpoints storage")
	}
	return &Checkpoints{
		Config:          c,
		log:             log,
		badger:          db,
		onCriticalError: onCriticalError,
	}, nil
}

// ReloadConf update the internal configuration of the store
func (c *Checkpoints) ReloadConf(cfg Config) {
	c.log.Info("reloading configuration")
	if c.log.GetLevel() != cfg.Level.Get() {
		c.log.Info("updating log level",
			logging.String("old", c.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		c.log.SetLevel(cfg.Level.Get())
	}

	c.Config = cfg
}

func (c *Checkpoints) Close() error {
	return c.badger.Close()
}

// Save persists the checkpoint.
func (c *Checkpoints) Save(cp *types.Checkpoint) error {
	buf, err := json.Marshal(cp)
	if err != nil {
		c.log.Error("unable to marshal checkpoint",
			logging.String("checkpoint-hash", cp.Hash),
			logging.Error(err),
		)
		return err
	}

	cpKey := c.badger.checkpointKey(cp.Height, cp.Hash)
	err = c.badger.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cpKey, buf)
	})
	if err != nil {
		c.log.Error("unable to save checkpoint in badger",
			logging.String("checkpoint-hash", cp.Hash),
			logging.Uint64("height", cp.Height),
			logging.Error(err),
		)
		c.onCriticalError()
	}

	return err
}

// GetLatest returns the checkpoint taken at the greatest height.
func (c *Checkpoints) GetLatest() (*types.Checkpoint, error) {
	var buf []byte
	err := c.badger.db.View(func(txn *badger.Txn) error {
		it := c.badger.descendingIterator(txn)
		defer it.Close()

		keyPrefix, validForPrefix := c.badger.checkpointPrefix(true)
		it.Seek(keyPrefix)
		if !it.ValidForPrefix(validForPrefix) {
			return ErrNoCheckpoint
		}
		var err error
		buf, err = it.Item().ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return c.unmarshalCheckpoint(buf)
}

// GetAll returns every stored checkpoint, oldest first.
func (c *Checkpoints) GetAll() ([]*types.Checkpoint, error) {
	bufs := [][]byte{}
	err := c.badger.db.View(func(txn *badger.Txn) error {
		it := c.badger.ascendingIterator(txn)
		defer it.Close()

		keyPrefix, validForPrefix := c.badger.checkpointPrefix(false)
		for it.Seek(keyPrefix); it.ValidForPrefix(validForPrefix); it.Next() {
			buf, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			bufs = append(bufs, buf)
		}
		return nil
	})
	if err != nil {
		c.log.Error("unable to list checkpoints", logging.Error(err))
		return nil, err
	}

	out := make([]*types.Checkpoint, 0, len(bufs))
	for _, buf := range bufs {
		cp, err := c.unmarshalCheckpoint(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (c *Checkpoints) unmarshalCheckpoint(buf []byte) (*types.Checkpoint, error) {
	cp := &types.Checkpoint{}
	if err := json.Unmarshal(buf, cp); err != nil {
		c.log.Error("unable to unmarshal checkpoint from badger store",
			logging.Error(err),
		)
		return nil, err
	}
	return cp, nil
}
