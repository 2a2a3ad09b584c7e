package storage

import (
	"encoding/json"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

var (
	// ErrProposalNotFound signals the proposal is not in the archive.
	ErrProposalNotFound = errors.New("proposal not found in store")
)

// Proposals is the badger backed archive of every proposal, fed from the
// event stream. The engine stays authoritative for point reads, the
// archive serves history and survives restarts.
type Proposals struct {
	Config
	log             *logging.Logger
	badger          *badgerStore
	onCriticalError func()
}

// NewProposals opens the proposal archive under the given directory.
func NewProposals(log *logging.Logger, home string, c Config, onCriticalError func()) (*Proposals, error) {
	log = log.Named(namedLogger)
	log.SetLevel(c.Level.Get())

	if err := InitStoreDirectory(home); err != nil {
		return nil, errors.Wrap(err, "error on init badger database for proposals storage")
	}
	db, err := newBadgerStore(getOptionsFromConfig(c.Proposals, home, log))
	if err != nil {
		return nil, errors.Wrap(err, "error opening badger database for proposals storage")
	}
	return &Proposals{
		Config:          c,
		log:             log,
		badger:          db,
		onCriticalError: onCriticalError,
	}, nil
}

// ReloadConf update the internal configuration of the store
func (p *Proposals) ReloadConf(cfg Config) {
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

func (p *Proposals) Close() error {
	return p.badger.Close()
}

// SaveProposal writes the latest image of the proposal, keeping the title
// index alongside. Both keys commit in one transaction.
func (p *Proposals) SaveProposal(prop types.Proposal) error {
	buf, err := json.Marshal(prop)
	if err != nil {
		p.log.Error("unable to marshal proposal",
			logging.ProposalID(prop.ID),
			logging.Error(err),
		)
		return err
	}

	idKey := p.badger.proposalKey(prop.ID)
	err = p.badger.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(idKey, buf); err != nil {
			return err
		}
		return txn.Set(p.badger.proposalTitleKey(prop.Title), idKey)
	})
	if err != nil {
		p.log.Error("unable to save proposal in badger",
			logging.ProposalID(prop.ID),
			logging.Error(err),
		)
		p.onCriticalError()
	}

	return err
}

// GetByID returns the archived proposal with the given id.
func (p *Proposals) GetByID(id uint64) (*types.Proposal, error) {
	var buf []byte
	err := p.badger.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(p.badger.proposalKey(id))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	return p.unmarshalProposal(buf)
}

// GetByTitle resolves the title index, then loads the proposal.
func (p *Proposals) GetByTitle(title string) (*types.Proposal, error) {
	var buf []byte
	err := p.badger.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(p.badger.proposalTitleKey(title))
		if err != nil {
			return err
		}
		idKey, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err = txn.Get(idKey)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	return p.unmarshalProposal(buf)
}

// GetAll returns archived proposals in id order, newest first when
// descending. A zero limit means no cap.
func (p *Proposals) GetAll(skip, limit uint64, descending bool) ([]*types.Proposal, error) {
	bufs := [][]byte{}
	err := p.badger.db.View(func(txn *badger.Txn) error {
		it := p.badger.getIterator(txn, descending)
		defer it.Close()

		keyPrefix, validForPrefix := p.badger.proposalPrefix(descending)
		for it.Seek(keyPrefix); it.ValidForPrefix(validForPrefix); it.Next() {
			if skip != 0 {
				skip--
				continue
			}
			buf, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			bufs = append(bufs, buf)
			if limit != 0 && uint64(len(bufs)) == limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		p.log.Error("unable to list proposals", logging.Error(err))
		return nil, err
	}

	out := make([]*types.Proposal, 0, len(bufs))
	for _, buf := range bufs {
		prop, err := p.unmarshalProposal(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, prop)
	}
	return out, nil
}

func (p *Proposals) unmarshalProposal(buf []byte) (*types.Proposal, error) {
	prop := &types.Proposal{}
	if err := json.Unmarshal(buf, prop); err != nil {
		p.log.Error("unable to unmarshal proposal from badger store",
			logging.Error(err),
		)
		return nil, err
	}
	return prop, nil
}
