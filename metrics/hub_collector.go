/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exposes a hub's cells to Prometheus. Register a
// HubCollector with any prometheus.Registerer; collection reads only the
// lock-free probe counters, so scraping never contends with writers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/stx/hub"
)

// HubCollector reports per-cell commit and poisoning state for one hub.
type HubCollector struct {
	hub *hub.Hub

	cells    *prometheus.Desc
	commits  *prometheus.Desc
	poisoned *prometheus.Desc
}

var _ prometheus.Collector = (*HubCollector)(nil)

func NewHubCollector(h *hub.Hub) *HubCollector {
	return &HubCollector{
		hub: h,

		cells: prometheus.NewDesc(
			"stx_cells",
			"Number of store cells currently held by the hub",
			nil, nil,
		),
		commits: prometheus.NewDesc(
			"stx_cell_commits_total",
			"Total number of writes committed to the cell",
			[]string{"type", "variant"}, nil,
		),
		poisoned: prometheus.NewDesc(
			"stx_cell_poisoned",
			"Whether the cell refuses operations after an abandoned mutation (0 or 1)",
			[]string{"type", "variant"}, nil,
		),
	}
}

func (hc *HubCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- hc.cells
	ch <- hc.commits
	ch <- hc.poisoned
}

func (hc *HubCollector) Collect(ch chan<- prometheus.Metric) {
	entries := hc.hub.Entries()

	ch <- prometheus.MustNewConstMetric(
		hc.cells,
		prometheus.GaugeValue,
		float64(len(entries)),
	)

	for _, e := range entries {
		variant := e.Variant.String()

		ch <- prometheus.MustNewConstMetric(
			hc.commits,
			prometheus.CounterValue,
			float64(e.Serial),
			e.Label, variant,
		)

		var flag float64
		if e.Poisoned {
			flag = 1
		}
		ch <- prometheus.MustNewConstMetric(
			hc.poisoned,
			prometheus.GaugeValue,
			flag,
			e.Label, variant,
		)
	}
}
