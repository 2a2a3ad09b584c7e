package storage_test

import (
	"testing"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsStore(t *testing.T) {
	store, err := storage.NewParams(logging.NewTestLogger(), t.TempDir(), storage.NewDefaultConfig(), func() {})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("governance.proposal.quorumPercent")
	assert.ErrorIs(t, err, storage.ErrParamNotFound)

	require.NoError(t, store.SaveParam("governance.proposal.quorumPercent", "50"))
	require.NoError(t, store.SaveParam("governance.proposal.durationHeights", "144"))

	value, err := store.Get("governance.proposal.quorumPercent")
	require.NoError(t, err)
	assert.Equal(t, "50", value)

	// only the latest value is kept
	require.NoError(t, store.SaveParam("governance.proposal.quorumPercent", "65"))

	value, err = store.Get("governance.proposal.quorumPercent")
	require.NoError(t, err)
	assert.Equal(t, "65", value)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"governance.proposal.quorumPercent":   "65",
		"governance.proposal.durationHeights": "144",
	}, all)
}
