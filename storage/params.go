package storage

import (
	"code.witanprotocol.io/witan/logging"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

var (
	// ErrParamNotFound signals the parameter was never archived.
	ErrParamNotFound = errors.New("parameter not found in store")
)

// Params is the badger backed archive of governance parameters, holding
// the latest value of every parameter ever updated.
type Params struct {
	Config
	log             *logging.Logger
	badger          *badgerStore
	onCriticalError func()
}

// NewParams opens the parameter archive under the given directory.
func NewParams(log *logging.Logger, home string, c Config, onCriticalError func()) (*Params, error) {
	log = log.Named(namedLogger)
	log.SetLevel(c.Level.Get())

	if err := InitStoreDirectory(home); err != nil {
		return nil, errors.Wrap(err, "error on init badger database for params storage")
	}
	db, err := newBadgerStore(getOptionsFromConfig(c.Params, home, log))
	if err != nil {
		return nil, errors.Wrap(err, "error opening badger database for params storage")
	}
	return &Params{
		Config:          c,
		log:             log,
		badger:          db,
		onCriticalError: onCriticalError,
	}, nil
}

// ReloadConf update the internal configuration of the store
func (p *Params) ReloadConf(cfg Config) {
	p.log.Info("reloading configuration")
	if p.log.GetLevel() != cfg.Level.Get() {
		p.log.Info("updating log level",
			logging.String("old", p.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		p.log.SetLevel(cfg.Level.Get())
	}

	p.Config = cfg
}

func (p *Params) Close() error {
	return p.badger.Close()
}

// SaveParam overwrites the archived value of the parameter.
func (p *Params) SaveParam(key, value string) error {
	err := p.badger.db.Update(func(txn *badger.Txn) error {
		return txn.Set(p.badger.paramKey(key), []byte(value))
	})
	if err != nil {
		p.log.Error("unable to save parameter in badger",
			logging.String("key", key),
			logging.Error(err),
		)
		p.onCriticalError()
	}

	return err
}

// Get returns the archived value of the parameter.
func (p *Params) Get(key string) (string, error) {
	var buf []byte
	err := p.badger.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(p.badger.paramKey(key))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", ErrParamNotFound
		}
		return "", err
	}

	return string(buf), nil
}

// GetAll returns the archived value of every parameter.
func (p *Params) GetAll() (map[string]string, error) {
	out := map[string]string{}
	err := p.badger.db.View(func(txn *badger.Txn) error {
		it := p.badger.ascendingIterator(txn)
		defer it.Close()

		keyPrefix, validForPrefix := p.badger.paramPrefix(false)
		for it.Seek(keyPrefix); it.ValidForPrefix(validForPrefix); it.Next() {
			item := it.Item()
			buf, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[string(item.Key()[len(validForPrefix):])] = string(buf)
		}
		return nil
	})
	if err != nil {
		p.log.Error("unable to list parameters", logging.Error(err))
		return nil, err
	}

	return out, nil
}
