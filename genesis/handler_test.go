package genesis_test

import (
	"context"
	"testing"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/genesis"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/netparams"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	t.Run("callbacks run in registration order", testCallbackOrder)
	t.Run("first failing callback stops the load", testCallbackFailure)
}

func TestGenesisDocument(t *testing.T) {
	t.Run("default document is loadable by every section", testDefaultDocument)
}

func testCallbackOrder(t *testing.T) {
	h := genesis.New(logging.NewTestLogger())

	var order []string
	h.OnGenesisAppStateLoaded(
		func(_ context.Context, _ []byte) error {
			order = append(order, "first")
			return nil
		},
		func(_ context.Context, _ []byte) error {
			order = append(order, "second")
			return nil
		},
	)

	require.NoError(t, h.LoadState(context.Background(), []byte(`{}`)))
	assert.Equal(t, []string{"first", "second"}, order)
}

func testCallbackFailure(t *testing.T) {
	h := genesis.New(logging.NewTestLogger())

	bang := errors.New("bang")
	called := false
	h.OnGenesisAppStateLoaded(
		func(_ context.Context, _ []byte) error { return bang },
		func(_ context.Context, _ []byte) error {
			called = true
			return nil
		},
	)

	assert.ErrorIs(t, h.LoadState(context.Background(), []byte(`{}`)), bang)
	assert.False(t, called)
}

func testDefaultDocument(t *testing.T) {
	doc, err := genesis.DumpDefault()
	require.NoError(t, err)

	state, err := netparams.LoadGenesisState([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "50", state[netparams.GovernanceProposalQuorumPercent])
	assert.Equal(t, "144", state[netparams.GovernanceProposalDurationHeights])

	allocations, err := accounts.LoadGenesisState([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, allocations)
}
