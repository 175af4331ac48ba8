// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakewardclient

import (
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeward/stakeward/api"
	"github.com/stakeward/stakeward/authority"
	"github.com/stakeward/stakeward/ledger"
	"github.com/stakeward/stakeward/stakeward"
	"github.com/stakeward/stakeward/vault"
)

var (
	vaultAddr = stakeward.BytesToAddress([]byte("vault"))
	adminAddr = stakeward.BytesToAddress([]byte("admin"))
	pauser    = stakeward.BytesToAddress([]byte("pauser"))
	u1        = stakeward.BytesToAddress([]byte("u1"))
)

func initServer(t *testing.T) (*Client, *ledger.MemAsset) {
	principal := ledger.NewMemAsset("PRN", vaultAddr)
	reward := ledger.NewMemAsset("RWD", vaultAddr)
	require.NoError(t, principal.Mint(u1, big.NewInt(1000)))

	auth := authority.NewAllowlist()
	auth.Add(pauser, stakeward.ActionPause, stakeward.ActionResume)

	v := vault.New(principal, reward, auth, adminAddr)
	handler, closer := api.New(v, api.Options{})
	t.Cleanup(closer)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return New(ts.URL), reward
}

func TestClient(t *testing.T) {
	client, reward := initServer(t)

	state, err := client.VaultState()
	require.NoError(t, err)
	assert.False(t, state.Paused)
	assert.Equal(t, adminAddr, state.Admin)

	state, err = client.Deposit(u1, big.NewInt(50))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(50), (*big.Int)(state.TotalStaked))

	require.NoError(t, reward.Mint(vaultAddr, big.NewInt(100)))
	state, err = client.Sync()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), (*big.Int)(state.PendingRewards))

	_, err = client.Claim(u1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), reward.BalanceOf(u1))

	account, err := client.Account(u1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(50), (*big.Int)(account.Amount))
	assert.Equal(t, big.NewInt(0), (*big.Int)(account.PendingReward))

	_, err = client.Withdraw(u1, big.NewInt(50))
	require.NoError(t, err)

	// error statuses surface as ErrNot200Status
	_, err = client.Withdraw(u1, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNot200Status)

	_, err = client.Pause(u1)
	assert.ErrorIs(t, err, ErrNot200Status)
	_, err = client.Pause(pauser)
	require.NoError(t, err)
	_, err = client.Resume(pauser)
	require.NoError(t, err)
}

func TestClientAdmin(t *testing.T) {
	client, _ := initServer(t)

	admin, err := client.Admin()
	require.NoError(t, err)
	assert.Equal(t, adminAddr, *admin)

	admin, err = client.SetAdmin(adminAddr, u1)
	require.NoError(t, err)
	assert.Equal(t, u1, *admin)

	_, err = client.SetAdmin(adminAddr, u1)
	assert.ErrorIs(t, err, ErrNot200Status)

	admin, err = client.BurnAdmin(u1)
	require.NoError(t, err)
	assert.True(t, admin.IsZero())
}

func TestClientClaimFor(t *testing.T) {
	client, reward := initServer(t)

	_, err := client.Deposit(u1, big.NewInt(50))
	require.NoError(t, err)
	require.NoError(t, reward.Mint(vaultAddr, big.NewInt(40)))
	_, err = client.Sync()
	require.NoError(t, err)

	_, err = client.ClaimFor(pauser, u1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(40), reward.BalanceOf(u1))
	assert.Equal(t, big.NewInt(0), reward.BalanceOf(pauser))
}
