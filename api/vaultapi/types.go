// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vaultapi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/stakeward/stakeward/stakeward"
	"github.com/stakeward/stakeward/vault"
)

// GlobalState is the vault-wide view.
type GlobalState struct {
	AccPerShare          *math.HexOrDecimal256 `json:"accPerShare"`
	PendingRewards       *math.HexOrDecimal256 `json:"pendingRewards"`
	TrackedRewardBalance *math.HexOrDecimal256 `json:"trackedRewardBalance"`
	TotalStaked          *math.HexOrDecimal256 `json:"totalStaked"`
	Paused               bool                  `json:"paused"`
	Admin                stakeward.Address     `json:"admin"`
}

// AccountState is the per-depositor view.
type AccountState struct {
	Amount        *math.HexOrDecimal256 `json:"amount"`
	RewardDebt    *math.HexOrDecimal256 `json:"rewardDebt"`
	PendingReward *math.HexOrDecimal256 `json:"pendingReward"`
}

// AmountRequest is the body of deposit and withdraw calls.
type AmountRequest struct {
	Caller stakeward.Address     `json:"caller"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}

// ClaimRequest settles caller's own rewards, or a third party's when
// account is set.
type ClaimRequest struct {
	Caller  stakeward.Address  `json:"caller"`
	Account *stakeward.Address `json:"account"`
}

// CallerRequest is the body of pause/resume and admin burn calls.
type CallerRequest struct {
	Caller stakeward.Address `json:"caller"`
}

// AdminRequest is the body of admin transfer calls.
type AdminRequest struct {
	Caller   stakeward.Address `json:"caller"`
	NewAdmin stakeward.Address `json:"newAdmin"`
}

func convertGlobalState(v *vault.Vault) *GlobalState {
	return &GlobalState{
		AccPerShare:          (*math.HexOrDecimal256)(v.AccPerShare()),
		PendingRewards:       (*math.HexOrDecimal256)(v.PendingRewards()),
		TrackedRewardBalance: (*math.HexOrDecimal256)(v.TrackedRewardBalance()),
		TotalStaked:          (*math.HexOrDecimal256)(v.TotalStaked()),
		Paused:               v.Paused(),
		Admin:                v.Admin(),
	}
}

func convertAccountState(acct *vault.Account, pending *big.Int) *AccountState {
	return &AccountState{
		Amount:        (*math.HexOrDecimal256)(acct.Amount),
		RewardDebt:    (*math.HexOrDecimal256)(acct.RewardDebt),
		PendingReward: (*math.HexOrDecimal256)(pending),
	}
}
