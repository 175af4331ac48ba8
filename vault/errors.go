// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import "github.com/pkg/errors"

// Failure classes of vault operations. Every failure aborts the whole
// operation; there is no partial commit of principal or reward movement.
// A reward shortfall is not an error, see payout.
var (
	ErrReentrancy          = errors.New("reentrant call")
	ErrInactiveVault       = errors.New("vault is paused")
	ErrInsufficientBalance = errors.New("insufficient staked balance")
	ErrUnauthorized        = errors.New("caller not authorized")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrAlreadyInState      = errors.New("already in requested state")
)
