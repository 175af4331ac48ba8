// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import "github.com/stakeward/stakeward/metrics"

var (
	metricOpCount        = metrics.LazyLoadCounterVec("vault_op_count", []string{"op"})
	metricShortfallCount = metrics.LazyLoadCounter("vault_reward_shortfall_count")
	metricPausedGauge    = metrics.LazyLoadGauge("vault_paused")
)
