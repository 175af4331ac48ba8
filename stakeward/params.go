// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakeward

import "math/big"

// Constants of the vault.
var (
	// RewardScale is the fixed-point scale of the reward accumulator.
	// accPerShare carries reward-per-principal-unit multiplied by this value.
	RewardScale = big.NewInt(1e18)
)

// Names of authority-gated actions.
const (
	ActionPause  = "pause"
	ActionResume = "resume"
)
