// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakeward/stakeward/stakeward"
)

func TestMemAsset(t *testing.T) {
	vaultAddr := stakeward.BytesToAddress([]byte("vault"))
	acc := stakeward.BytesToAddress([]byte("a1"))

	book := NewMemAsset("PRN", vaultAddr)
	assert.Equal(t, "PRN", book.Symbol())
	assert.Equal(t, vaultAddr, book.Holder())

	tests := []struct {
		ret      interface{}
		expected interface{}
	}{
		{book.BalanceOf(acc), &big.Int{}},
		{book.Mint(acc, big.NewInt(100)), nil},
		{book.BalanceOf(acc), big.NewInt(100)},
		{book.TransferIn(acc, big.NewInt(60)), nil},
		{book.BalanceOf(acc), big.NewInt(40)},
		{book.Balance(), big.NewInt(60)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret)
	}

	// pulling more than the sender holds is a hard failure, nothing moves
	assert.Error(t, book.TransferIn(acc, big.NewInt(41)))
	assert.Equal(t, big.NewInt(40), book.BalanceOf(acc))
	assert.Equal(t, big.NewInt(60), book.Balance())
}

func TestMemAssetPartialTransferOut(t *testing.T) {
	vaultAddr := stakeward.BytesToAddress([]byte("vault"))
	acc := stakeward.BytesToAddress([]byte("a1"))

	book := NewMemAsset("RWD", vaultAddr)
	assert.Nil(t, book.Mint(vaultAddr, big.NewInt(30)))

	actual, err := book.TransferOut(acc, big.NewInt(45))
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(30), actual)
	assert.Equal(t, big.NewInt(30), book.BalanceOf(acc))
	assert.Equal(t, &big.Int{}, book.Balance())
}

func TestMemAssetNegativeAmounts(t *testing.T) {
	vaultAddr := stakeward.BytesToAddress([]byte("vault"))
	acc := stakeward.BytesToAddress([]byte("a1"))

	book := NewMemAsset("PRN", vaultAddr)
	assert.Error(t, book.Mint(acc, big.NewInt(-1)))
	assert.Error(t, book.TransferIn(acc, big.NewInt(-1)))
	_, err := book.TransferOut(acc, big.NewInt(-1))
	assert.Error(t, err)
}

func TestMemAssetCallerCannotMutateBalances(t *testing.T) {
	vaultAddr := stakeward.BytesToAddress([]byte("vault"))
	acc := stakeward.BytesToAddress([]byte("a1"))

	book := NewMemAsset("PRN", vaultAddr)
	assert.Nil(t, book.Mint(acc, big.NewInt(10)))

	bal := book.BalanceOf(acc)
	bal.SetInt64(999)
	assert.Equal(t, big.NewInt(10), book.BalanceOf(acc))
}
