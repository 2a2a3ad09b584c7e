package netparams

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const checkpointName = "netparams"

type checkpointParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Name is the key this component's state is filed under in a checkpoint.
func (s *Store) Name() string {
	return checkpointName
}

// Checkpoint serialises every parameter, sorted by key so the output
// is deterministic.
func (s *Store) Checkpoint() ([]byte, error) {
	s.mu.RLock()
	params := make([]checkpointParam, 0, len(s.store))
	for k, v := range s.store {
		params = append(params, checkpointParam{Key: k, Value: v.String()})
	}
	s.mu.RUnlock()
	if len(params) == 0 {
		return nil, nil
	}
	slices.SortFunc(params, func(a, b checkpointParam) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})
	return json.Marshal(params)
}

// Load restores every parameter from checkpoint data.
func (s *Store) Load(ctx context.Context, data []byte) error {
	params := []checkpointParam{}
	if err := json.Unmarshal(data, &params); err != nil {
		return err
	}
	np := make(map[string]string, len(params))
	for _, p := range params {
		np[p.Key] = p.Value
	}
	return s.updateBatch(ctx, np)
}

func (s *Store) updateBatch(ctx context.Context, params map[string]string) error {
	keys := maps.Keys(params)
	slices.Sort(keys)
	for _, k := range keys {
		if err := s.Update(ctx, k, params[k]); err != nil {
			return fmt.Errorf("%v: %v", k, err)
		}
	}
	return nil
}
