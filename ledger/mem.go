// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"errors"
	"math/big"

	"github.com/stakeward/stakeward/stakeward"
)

// MemAsset is an in-memory asset book. It keeps one balance per address and
// is bound to a holder account on construction. Useful for tests and for
// running the vault without an external settlement layer.
type MemAsset struct {
	symbol   string
	holder   stakeward.Address
	balances map[stakeward.Address]*big.Int
}

// NewMemAsset creates an empty asset book bound to holder.
func NewMemAsset(symbol string, holder stakeward.Address) *MemAsset {
	return &MemAsset{
		symbol:   symbol,
		holder:   holder,
		balances: make(map[stakeward.Address]*big.Int),
	}
}

// Symbol returns the asset's display symbol.
func (m *MemAsset) Symbol() string {
	return m.symbol
}

// Holder returns the bound holder account.
func (m *MemAsset) Holder() stakeward.Address {
	return m.holder
}

// Mint credits amount to addr out of thin air.
func (m *MemAsset) Mint(addr stakeward.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.New("negative amount")
	}
	m.credit(addr, amount)
	return nil
}

// TransferIn implements Asset.
func (m *MemAsset) TransferIn(from stakeward.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.New("negative amount")
	}
	bal := m.balanceRef(from)
	if bal.Cmp(amount) < 0 {
		return errors.New("insufficient balance of " + from.String())
	}
	bal.Sub(bal, amount)
	m.credit(m.holder, amount)
	return nil
}

// TransferOut implements Asset. Delivers at most the holder's balance.
func (m *MemAsset) TransferOut(to stakeward.Address, amount *big.Int) (*big.Int, error) {
	if amount.Sign() < 0 {
		return nil, errors.New("negative amount")
	}
	bal := m.balanceRef(m.holder)
	actual := new(big.Int).Set(amount)
	if bal.Cmp(actual) < 0 {
		actual.Set(bal)
	}
	bal.Sub(bal, actual)
	m.credit(to, actual)
	return actual, nil
}

// Balance implements Asset.
func (m *MemAsset) Balance() *big.Int {
	return m.BalanceOf(m.holder)
}

// BalanceOf implements Asset.
func (m *MemAsset) BalanceOf(addr stakeward.Address) *big.Int {
	return new(big.Int).Set(m.balanceRef(addr))
}

func (m *MemAsset) balanceRef(addr stakeward.Address) *big.Int {
	if bal, ok := m.balances[addr]; ok {
		return bal
	}
	bal := new(big.Int)
	m.balances[addr] = bal
	return bal
}

func (m *MemAsset) credit(addr stakeward.Address, amount *big.Int) {
	bal := m.balanceRef(addr)
	bal.Add(bal, amount)
}
