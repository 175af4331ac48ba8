// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakeward/stakeward/stakeward"
)

func TestAllowlist(t *testing.T) {
	p1 := stakeward.BytesToAddress([]byte("p1"))
	p2 := stakeward.BytesToAddress([]byte("p2"))

	list := NewAllowlist()
	assert.False(t, list.IsAllowed(p1, stakeward.ActionPause))

	list.Add(p1, stakeward.ActionPause, stakeward.ActionResume)
	list.Add(p2, stakeward.ActionPause)

	assert.True(t, list.IsAllowed(p1, stakeward.ActionPause))
	assert.True(t, list.IsAllowed(p1, stakeward.ActionResume))
	assert.True(t, list.IsAllowed(p2, stakeward.ActionPause))
	assert.False(t, list.IsAllowed(p2, stakeward.ActionResume))

	list.Revoke(p1)
	assert.False(t, list.IsAllowed(p1, stakeward.ActionPause))
	assert.True(t, list.IsAllowed(p2, stakeward.ActionPause))
}
