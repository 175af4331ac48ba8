// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import (
	"math/big"

	"github.com/stakeward/stakeward/stakeward"
)

// Account is the per-depositor ledger entry. Created lazily on first touch
// and never deleted; a fully withdrawn account persists as a zero record.
type Account struct {
	Amount     *big.Int // principal staked
	RewardDebt *big.Int // accumulator baseline already paid out for
}

func newAccount() *Account {
	return &Account{
		Amount:     new(big.Int),
		RewardDebt: new(big.Int),
	}
}

// Copy returns a deep copy of the account.
func (a *Account) Copy() *Account {
	return &Account{
		Amount:     new(big.Int).Set(a.Amount),
		RewardDebt: new(big.Int).Set(a.RewardDebt),
	}
}

// owed returns amount * accPerShare / 1e18 - rewardDebt. Multiplication runs
// fully before division to keep the rounding of repeated settlements stable.
func (a *Account) owed(accPerShare *big.Int) *big.Int {
	x := new(big.Int).Mul(a.Amount, accPerShare)
	x.Div(x, stakeward.RewardScale)
	return x.Sub(x, a.RewardDebt)
}

// settleDebt rewrites the debt baseline so that owed() == 0.
func (a *Account) settleDebt(accPerShare *big.Int) {
	a.RewardDebt.Mul(a.Amount, accPerShare)
	a.RewardDebt.Div(a.RewardDebt, stakeward.RewardScale)
}
