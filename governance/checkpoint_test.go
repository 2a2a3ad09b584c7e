package governance_test

import (
	"context"
	"testing"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpoint(t *testing.T) {
	t.Run("Checkpoint and restore round trip", testCheckpointRoundTrip)
	t.Run("Empty engine takes no checkpoint", testCheckpointEmpty)
	t.Run("Corrupt checkpoint is rejected", testCheckpointCorrupt)
}

func TestHash(t *testing.T) {
	t.Run("Hash is stable for identical state", testHashStable)
	t.Run("Hash moves with every mutation", testHashMoves)
}

func testCheckpointRoundTrip(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	first := submitProposal(t, eng, "party-1", 0, "reserve top-up")
	second := submitProposal(t, eng, "party-1", 10, "rate review")
	castVote(t, eng, "party-2", 12, first.ID, types.VoteValueYes, 600)
	castVote(t, eng, "party-3", 12, first.ID, types.VoteValueNo, 150)

	data, err := eng.Checkpoint()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// checkpoints are deterministic
	again, err := eng.Checkpoint()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	restored := getTestEngine(t)
	defer restored.ctrl.Finish()
	restored.broker.EXPECT().SendBatch(gomock.Any()).Times(1).Do(func(evts []events.Event) {
		require.Len(t, evts, 2)
	})
	require.NoError(t, restored.Load(ctx, data))

	p, err := restored.GetProposal(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "reserve top-up", p.Title)
	assert.True(t, p.Yes.EQUint64(600))
	assert.True(t, p.No.EQUint64(150))
	assert.True(t, restored.HasVoted(first.ID, "party-2"))
	assert.True(t, restored.HasVoted(first.ID, "party-3"))
	assert.Equal(t, uint64(2), restored.ProposalCount())

	// restored state hashes the same as the source
	assert.Equal(t, eng.Hash(), restored.Hash())

	// the title index survived the restore
	restored.params.EXPECT().ProposalDuration().Times(1).Return(uint64(144), nil)
	_, err = restored.SubmitProposal(ctx, "party-4", 20, types.ProposalSubmission{
		Title:       "rate review",
		Description: "Test Description",
	})
	assert.EqualError(t, err, governance.ErrProposalExists.Error())

	// and the id counter picks up where the source engine stopped
	next := submitProposal(t, restored, "party-4", 20, "fresh title")
	assert.Equal(t, second.ID+1, next.ID)
}

func testCheckpointEmpty(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	data, err := eng.Checkpoint()
	require.NoError(t, err)
	require.Empty(t, data)
}

func testCheckpointCorrupt(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	require.Error(t, eng.Load(context.Background(), []byte("not a checkpoint")))
}

func testHashStable(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	submitProposal(t, eng, "party-1", 0, "reserve top-up")
	castVote(t, eng, "party-2", 0, 1, types.VoteValueYes, 600)

	h1 := eng.Hash()
	h2 := eng.Hash()
	require.NotEmpty(t, h1)
	assert.Equal(t, h1, h2)
}

func testHashMoves(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	empty := eng.Hash()

	p := submitProposal(t, eng, "party-1", 0, "reserve top-up")
	afterProposal := eng.Hash()
	assert.NotEqual(t, empty, afterProposal)

	castVote(t, eng, "party-2", 0, p.ID, types.VoteValueYes, 600)
	afterVote := eng.Hash()
	assert.NotEqual(t, afterProposal, afterVote)

	eng.params.EXPECT().TotalSupply().Times(1).Return(num.NewUint(1000), nil)
	eng.params.EXPECT().QuorumPercent().Times(1).Return(uint64(50), nil)
	eng.sink.EXPECT().Issue(gomock.Any(), uint64(1), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	require.NoError(t, eng.ExecuteProposal(context.Background(), "party-1", 145, p.ID))
	assert.NotEqual(t, afterVote, eng.Hash())
}
