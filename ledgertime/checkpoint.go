package ledgertime

import (
	"context"
	"encoding/json"
)

const checkpointName = "ledgertime"

type checkpointState struct {
	Height uint64 `json:"height"`
}

func (s *Svc) Name() string {
	return checkpointName
}

func (s *Svc) Checkpoint() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.height == 0 {
		return nil, nil
	}
	return json.Marshal(checkpointState{Height: s.height})
}

func (s *Svc) Load(ctx context.Context, data []byte) error {
	state := checkpointState{}
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	s.SetHeight(ctx, state.Height)
	return nil
}
