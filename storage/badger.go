package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
)

type badgerStore struct {
	db *badger.DB
}

func newBadgerStore(opts badger.Options) (*badgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerStore{db: db}, nil
}

func (bs *badgerStore) Close() error {
	return bs.db.Close()
}

func (bs *badgerStore) getIterator(txn *badger.Txn, descending bool) *badger.Iterator {
	if descending {
		return bs.descendingIterator(txn)
	}
	return bs.ascendingIterator(txn)
}

func (bs *badgerStore) descendingIterator(txn *badger.Txn) *badger.Iterator {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	return txn.NewIterator(opts)
}

func (bs *badgerStore) ascendingIterator(txn *badger.Txn) *badger.Iterator {
	opts := badger.DefaultIteratorOptions
	return txn.NewIterator(opts)
}

// proposals are keyed on their zero padded id so byte order matches
// numeric order
func (bs *badgerStore) proposalKey(id uint64) []byte {
	return []byte(fmt.Sprintf("ID:%020d", id))
}

func (bs *badgerStore) proposalTitleKey(title string) []byte {
	return []byte(fmt.Sprintf("TITLE:%s", title))
}

func (bs *badgerStore) proposalPrefix(descending bool) (keyPrefix, validForPrefix []byte) {
	return bs.getPrefix("ID:", descending)
}

func (bs *badgerStore) voteKey(proposalID uint64, party string) []byte {
	return []byte(fmt.Sprintf("PID:%020d_P:%s", proposalID, party))
}

func (bs *badgerStore) votePrefix(proposalID uint64, descending bool) (keyPrefix, validForPrefix []byte) {
	return bs.getPrefix(fmt.Sprintf("PID:%020d_P:", proposalID), descending)
}

func (bs *badgerStore) paramKey(key string) []byte {
	return []byte(fmt.Sprintf("K:%s", key))
}

func (bs *badgerStore) paramPrefix(descending bool) (keyPrefix, validForPrefix []byte) {
	return bs.getPrefix("K:", descending)
}

func (bs *badgerStore) checkpointKey(height uint64, hash string) []byte {
	return []byte(fmt.Sprintf("H:%020d_HASH:%s", height, hash))
}

func (bs *badgerStore) checkpointPrefix(descending bool) (keyPrefix, validForPrefix []byte) {
	return bs.getPrefix("H:", descending)
}

func (bs *badgerStore) getPrefix(prefix string, descending bool) (keyPrefix, validForPrefix []byte) {
	validForPrefix = []byte(prefix)
	keyPrefix = validForPrefix
	if descending {
		keyPrefix = append(keyPrefix, 0xFF)
	}
	return keyPrefix, validForPrefix
}
