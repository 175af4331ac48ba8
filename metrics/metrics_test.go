// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func TestNoopMetrics(t *testing.T) {
	// before initialization everything is a no-op
	require.Nil(t, HTTPHandler())
	Counter("noop_count").Add(1)
	Gauge("noop_gauge").Set(42)
	CounterVec("noop_vec", []string{"op"}).AddWithLabel(1, map[string]string{"op": "x"})
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	count := Counter("vault_op_count")
	count.Add(3)
	Counter("vault_op_count").Add(2)

	gauge := Gauge("vault_total_staked")
	gauge.Set(100)
	gauge.Add(-40)

	CounterVec("vault_op_vec", []string{"op"}).
		AddWithLabel(1, map[string]string{"op": "deposit"})

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	metricFamilies, err := gatherers.Gather()
	require.NoError(t, err)

	found := map[string]*dto.MetricFamily{}
	for _, mf := range metricFamilies {
		found[mf.GetName()] = mf
	}

	countFamily, ok := found["stakeward_vault_op_count"]
	require.True(t, ok)
	require.Equal(t, float64(5), countFamily.GetMetric()[0].GetCounter().GetValue())

	gaugeFamily, ok := found["stakeward_vault_total_staked"]
	require.True(t, ok)
	require.Equal(t, float64(60), gaugeFamily.GetMetric()[0].GetGauge().GetValue())

	vecFamily, ok := found["stakeward_vault_op_vec"]
	require.True(t, ok)
	require.Equal(t, float64(1), vecFamily.GetMetric()[0].GetCounter().GetValue())

	require.NotNil(t, HTTPHandler())
}
