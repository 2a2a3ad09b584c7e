package types

import (
	"encoding/json"
	"fmt"
)

// Checkpoint bundles the serialized state of every registered component at
// a given ledger height. The hash binds the whole bundle, a restore must
// reject any checkpoint whose recomputed hash differs.
type Checkpoint struct {
	Height uint64                     `json:"height"`
	Hash   string                     `json:"hash"`
	State  map[string]json.RawMessage `json:"state"`
}

func NewCheckpoint(height uint64) *Checkpoint {
	return &Checkpoint{
		Height: height,
		State:  map[string]json.RawMessage{},
	}
}

// Set stores the serialized state of a component under its name.
func (c *Checkpoint) Set(name string, data []byte) {
	c.State[name] = data
}

// Get returns the serialized state of a component, nil when the component
// has no state in this checkpoint.
func (c *Checkpoint) Get(name string) []byte {
	return c.State[name]
}

func (c Checkpoint) String() string {
	return fmt.Sprintf("height=%d hash=%s components=%d", c.Height, c.Hash, len(c.State))
}
