package governance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"code.witanprotocol.io/witan/events"
	vgcrypto "code.witanprotocol.io/witan/libs/crypto"
	"code.witanprotocol.io/witan/types"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const checkpointName = "governance"

type checkpointState struct {
	LastID    uint64            `json:"lastId"`
	Proposals []*types.Proposal `json:"proposals"`
	Votes     []*types.Vote     `json:"votes"`
}

func (e *Engine) Name() string {
	return checkpointName
}

// Checkpoint serializes the full registry state, proposals ordered by
// id and votes by (proposal, party), so the output is deterministic.
func (e *Engine) Checkpoint() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.proposals) == 0 {
		return nil, nil
	}
	state := checkpointState{
		LastID:    e.lastID,
		Proposals: make([]*types.Proposal, 0, len(e.proposals)),
	}
	ids := maps.Keys(e.proposals)
	slices.Sort(ids)
	for _, id := range ids {
		pd := e.proposals[id]
		state.Proposals = append(state.Proposals, pd.Proposal.DeepClone())
		parties := maps.Keys(pd.votes)
		slices.Sort(parties)
		for _, party := range parties {
			state.Votes = append(state.Votes, pd.votes[party].DeepClone())
		}
	}
	return json.Marshal(state)
}

// Load restores the registry from a checkpoint, rebuilding the title
// index and replaying a creation event per restored proposal so event
// driven stores catch up.
func (e *Engine) Load(ctx context.Context, data []byte) error {
	state := checkpointState{}
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastID = state.LastID
	e.proposals = make(map[uint64]*proposalData, len(state.Proposals))
	e.titles = make(map[string]uint64, len(state.Proposals))
	evts := make([]events.Event, 0, len(state.Proposals))
	for _, p := range state.Proposals {
		e.proposals[p.ID] = &proposalData{
			Proposal: p,
			votes:    map[string]*types.Vote{},
		}
		e.titles[p.Title] = p.ID
		evts = append(evts, events.NewProposalCreated(ctx, *p))
	}
	for _, v := range state.Votes {
		pd, ok := e.proposals[v.ProposalID]
		if !ok {
			return fmt.Errorf("vote for unknown proposal %d in checkpoint", v.ProposalID)
		}
		pd.votes[v.Party] = v
	}
	e.broker.SendBatch(evts)
	return nil
}

// Hash returns the sha3-256 digest of the registry state, stable for
// a given set of proposals and votes regardless of insertion order.
func (e *Engine) Hash() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "proposals#%d\n", e.lastID)
	ids := maps.Keys(e.proposals)
	slices.Sort(ids)
	for _, id := range ids {
		pd := e.proposals[id]
		buf.WriteString(pd.Proposal.String())
		buf.WriteRune('\n')
		parties := maps.Keys(pd.votes)
		slices.Sort(parties)
		for _, party := range parties {
			buf.WriteString(pd.votes[party].String())
			buf.WriteRune('\n')
		}
	}
	return vgcrypto.Hash(buf.Bytes())
}
