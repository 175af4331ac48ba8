// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/stakeward/stakeward/stakeward"
)

// Asset is the transfer capability for one asset, bound to a holder account
// (the vault). Implementations may be backed by anything that can move value;
// the vault only relies on the contract below.
type Asset interface {
	// TransferIn pulls amount from `from` into the holder's balance.
	// A failed transfer-in is a hard failure: no value moved.
	TransferIn(from stakeward.Address, amount *big.Int) error

	// TransferOut pushes at most amount from the holder's balance to `to` and
	// returns the actually delivered quantity, which may be less than requested.
	TransferOut(to stakeward.Address, amount *big.Int) (*big.Int, error)

	// Balance returns the holder's own balance.
	Balance() *big.Int

	// BalanceOf returns the balance of an arbitrary account.
	BalanceOf(addr stakeward.Address) *big.Int
}
