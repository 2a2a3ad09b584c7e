package storage

import (
	"encoding/json"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

var (
	// ErrVoteNotFound signals the (proposal, party) pair never voted.
	ErrVoteNotFound = errors.New("vote not found in store")
)

// Votes is the badger backed archive of every vote cast, fed from the
// event stream.
type Votes struct {
	Config
	log             *logging.Logger
	badger          *badgerStore
	onCriticalError func()
}

// NewVotes opens the vote archive under the given directory.
func NewVotes(log *logging.Logger, home string, c Config, onCriticalError func()) (*Votes, error) {
	log = log.Named(namedLogger)
	log.SetLevel(c.Level.Get())

	if err := InitStoreDirectory(home); err != nil {
		return nil, errors.Wrap(err, "error on init badger database for votes storage")
	}
	db, err := newBadgerStore(getOptionsFromConfig(c.Votes, home, log))
	if err != nil {
		return nil, errors.Wrap(err, "error opening badger database for votes storage")
	}
	return &Votes{
		Config:          c,
		log:             log,
		badger:          db,
		onCriticalError: onCriticalError,
	}, nil
}

// ReloadConf update the internal configuration of the store
func (v *Votes) ReloadConf(cfg Config) {
	v.log.Info("reloading configuration")
	if v.log.GetLevel() != cfg.Level.Get() {
		v.log.Info("updating log level",
			logging.String("old", v.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		v.log.SetLevel(cfg.Level.Get())
	}

	v.Config = cfg
}

func (v *Votes) Close() error {
	return v.badger.Close()
}

// SaveVote writes the vote under its (proposal, party) key. Votes are
// immutable so a save never changes an existing record.
func (v *Votes) SaveVote(vote types.Vote) error {
	buf, err := json.Marshal(vote)
	if err != nil {
		v.log.Error("unable to marshal vote",
			logging.ProposalID(vote.ProposalID),
			logging.PartyID(vote.Party),
			logging.Error(err),
		)
		return err
	}

	err = v.badger.db.Update(func(txn *badger.Txn) error {
		return txn.Set(v.badger.voteKey(vote.ProposalID, vote.Party), buf)
	})
	if err != nil {
		v.log.Error("unable to save vote in badger",
			logging.ProposalID(vote.ProposalID),
			logging.PartyID(vote.Party),
			logging.Error(err),
		)
		v.onCriticalError()
	}

	return err
}

// GetByProposal returns every archived vote on the proposal, in party
// order.
func (v *Votes) GetByProposal(proposalID uint64) ([]*types.Vote, error) {
	bufs := [][]byte{}
	err := v.badger.db.View(func(txn *badger.Txn) error {
		it := v.badger.ascendingIterator(txn)
		defer it.Close()

		keyPrefix, validForPrefix := v.badger.votePrefix(proposalID, false)
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
		v.log.Error("unable to list votes",
			logging.ProposalID(proposalID),
			logging.Error(err),
		)
		return nil, err
	}

	out := make([]*types.Vote, 0, len(bufs))
	for _, buf := range bufs {
		vote, err := v.unmarshalVote(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, vote)
	}
	return out, nil
}

// GetByProposalParty returns the single vote a party cast on a proposal.
func (v *Votes) GetByProposalParty(proposalID uint64, party string) (*types.Vote, error) {
	var buf []byte
	err := v.badger.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(v.badger.voteKey(proposalID, party))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}

	return v.unmarshalVote(buf)
}

func (v *Votes) unmarshalVote(buf []byte) (*types.Vote, error) {
	vote := &types.Vote{}
	if err := json.Unmarshal(buf, vote); err != nil {
		v.log.Error("unable to unmarshal vote from badger store",
			logging.Error(err),
		)
		return nil, err
	}
	return vote, nil
}
