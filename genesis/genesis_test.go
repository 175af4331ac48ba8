// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeward/stakeward/stakeward"
)

var (
	adminAddr  = stakeward.BytesToAddress([]byte("admin"))
	pauserAddr = stakeward.BytesToAddress([]byte("pauser"))
	userAddr   = stakeward.BytesToAddress([]byte("u1"))
)

func testGenesisJSON() string {
	return `{
		"admin": "` + adminAddr.String() + `",
		"pausers": [
			{"address": "` + pauserAddr.String() + `", "pause": true, "resume": true}
		],
		"principal": {
			"symbol": "VET",
			"balances": [
				{"address": "` + userAddr.String() + `", "balance": "0x64"}
			]
		},
		"reward": {
			"symbol": "VTHO",
			"balances": [],
			"vaultFloat": "30"
		}
	}`
}

func TestLoadAndBuild(t *testing.T) {
	gene, err := Load(strings.NewReader(testGenesisJSON()))
	require.NoError(t, err)
	assert.Equal(t, adminAddr, gene.Admin)

	v, principal, reward, err := gene.Build()
	require.NoError(t, err)

	assert.Equal(t, adminAddr, v.Admin())
	assert.Equal(t, "VET", principal.Symbol())
	assert.Equal(t, "VTHO", reward.Symbol())
	assert.Equal(t, DefaultVaultAddress, principal.Holder())
	assert.Equal(t, big.NewInt(100), principal.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(30), reward.Balance())

	// the pauser grant is live
	require.NoError(t, v.Deposit(userAddr, big.NewInt(100)))
	require.NoError(t, v.Pause(pauserAddr))
	require.NoError(t, v.Resume(pauserAddr))
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	// null admin
	_, err := Load(strings.NewReader(`{"principal":{},"reward":{}}`))
	assert.Error(t, err)

	// unknown fields are parse errors
	_, err = Load(strings.NewReader(`{"admin":"` + adminAddr.String() + `","bogus":1}`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestBuildRejectsPrincipalFloat(t *testing.T) {
	gene, err := Load(strings.NewReader(`{
		"admin": "` + adminAddr.String() + `",
		"principal": {"vaultFloat": "5"},
		"reward": {}
	}`))
	require.NoError(t, err)

	_, _, _, err = gene.Build()
	assert.ErrorContains(t, err, "vaultFloat")
}

func TestBuildCustomVaultAddress(t *testing.T) {
	custom := stakeward.BytesToAddress([]byte("custom-vault"))
	gene, err := Load(strings.NewReader(`{
		"admin": "` + adminAddr.String() + `",
		"vault": "` + custom.String() + `",
		"principal": {},
		"reward": {}
	}`))
	require.NoError(t, err)

	_, principal, reward, err := gene.Build()
	require.NoError(t, err)
	assert.Equal(t, custom, principal.Holder())
	assert.Equal(t, custom, reward.Holder())
}
