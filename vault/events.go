// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/event"

	"github.com/stakeward/stakeward/stakeward"
)

type EventType string

const (
	EventDeposit          EventType = "deposit"
	EventWithdraw         EventType = "withdraw"
	EventPaused           EventType = "paused"
	EventResumed          EventType = "resumed"
	EventAdminTransferred EventType = "admin_transferred"
)

// Event is emitted on every observable state transition. Fields beyond Type
// are set per event kind: User and Amount for deposit and withdraw, User for
// pause and resume, Old and New for admin transfer. A burn is an admin
// transfer with the null address as New. A zero-amount deposit is a claim
// trigger and still emits.
type Event struct {
	Type   EventType
	User   stakeward.Address
	Amount *big.Int
	Old    stakeward.Address
	New    stakeward.Address
}

// SubscribeEvents registers a receiver of vault events.
func (v *Vault) SubscribeEvents(ch chan Event) event.Subscription {
	return v.scope.Track(v.feed.Subscribe(ch))
}

// Close unsubscribes all event receivers.
func (v *Vault) Close() {
	v.scope.Close()
}

func (v *Vault) emit(ev Event) {
	v.feed.Send(ev)
}
