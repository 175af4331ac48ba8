// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"github.com/stakeward/stakeward/stakeward"
)

// Authority answers whether a caller may perform an authority-gated action.
// It is consulted only for pause/resume; the vault's admin role is a separate
// gate and the two are never unified.
type Authority interface {
	IsAllowed(caller stakeward.Address, action string) bool
}

// Allowlist is an in-memory Authority granting actions per address.
type Allowlist struct {
	grants map[stakeward.Address]map[string]bool
}

// NewAllowlist creates an empty allowlist. An empty list denies everything.
func NewAllowlist() *Allowlist {
	return &Allowlist{grants: make(map[stakeward.Address]map[string]bool)}
}

// Add grants actions to addr.
func (l *Allowlist) Add(addr stakeward.Address, actions ...string) {
	set := l.grants[addr]
	if set == nil {
		set = make(map[string]bool)
		l.grants[addr] = set
	}
	for _, action := range actions {
		set[action] = true
	}
}

// Revoke removes all grants of addr.
func (l *Allowlist) Revoke(addr stakeward.Address) {
	delete(l.grants, addr)
}

// IsAllowed implements Authority.
func (l *Allowlist) IsAllowed(caller stakeward.Address, action string) bool {
	return l.grants[caller][action]
}
