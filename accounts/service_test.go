package accounts_test

import (
	"context"
	"testing"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestService(t *testing.T) *accounts.Svc {
	t.Helper()
	return accounts.NewService(logging.NewTestLogger(), accounts.NewDefaultConfig())
}

func TestAccounts(t *testing.T) {
	t.Run("genesis allocations are loaded", testGenesisAllocations)
	t.Run("missing genesis state is rejected", testMissingGenesisState)
	t.Run("malformed balance is rejected", testMalformedBalance)
	t.Run("unknown party has no balance", testUnknownParty)
	t.Run("balances do not alias internal state", testBalanceAliasing)
	t.Run("set balance replaces a previous one", testSetBalance)
}

func testGenesisAllocations(t *testing.T) {
	svc := getTestService(t)
	ctx := context.Background()

	state := []byte(`{
		"accounts": {
			"party-1": "600",
			"party-2": "340282366920938463463374607431768211456"
		}
	}`)
	require.NoError(t, svc.UponGenesis(ctx, state))

	balance, err := svc.GetAvailableBalance(ctx, "party-1")
	require.NoError(t, err)
	assert.True(t, balance.EQUint64(600))

	// 2^128, does not fit a uint64
	balance, err = svc.GetAvailableBalance(ctx, "party-2")
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211456", balance.String())
}

func testMissingGenesisState(t *testing.T) {
	svc := getTestService(t)

	err := svc.UponGenesis(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, accounts.ErrNoAccountsGenesisState)

	err = svc.UponGenesis(context.Background(), []byte(`not json`))
	assert.Error(t, err)
}

func testMalformedBalance(t *testing.T) {
	svc := getTestService(t)

	err := svc.UponGenesis(context.Background(), []byte(`{"accounts": {"party-1": "-600"}}`))
	assert.ErrorIs(t, err, accounts.ErrInvalidBalance)
}

func testUnknownParty(t *testing.T) {
	svc := getTestService(t)

	balance, err := svc.GetAvailableBalance(context.Background(), "nobody")
	assert.ErrorIs(t, err, accounts.ErrNoBalanceForParty)
	assert.Nil(t, balance)
}

func testBalanceAliasing(t *testing.T) {
	svc := getTestService(t)
	ctx := context.Background()

	svc.SetBalance("party-1", num.NewUint(600))

	balance, err := svc.GetAvailableBalance(ctx, "party-1")
	require.NoError(t, err)
	balance.AddSum(num.NewUint(1000))

	balance, err = svc.GetAvailableBalance(ctx, "party-1")
	require.NoError(t, err)
	assert.True(t, balance.EQUint64(600))
}

func testSetBalance(t *testing.T) {
	svc := getTestService(t)
	ctx := context.Background()

	svc.SetBalance("party-1", num.NewUint(600))
	svc.SetBalance("party-1", num.NewUint(150))

	balance, err := svc.GetAvailableBalance(ctx, "party-1")
	require.NoError(t, err)
	assert.True(t, balance.EQUint64(150))
}
