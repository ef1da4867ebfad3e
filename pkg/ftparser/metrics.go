/*
 Copyright 2026 NanaFS Authors.

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

package ftparser

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	parseLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ftparser_parse_latency_seconds",
			Help:    "The latency of parsing one document.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12),
		},
		[]string{"mode"},
	)
	parseErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ftparser_parse_errors",
			Help: "This count of parse calls encountering errors.",
		},
		[]string{"mode"},
	)
	emittedTokenCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ftparser_emitted_tokens",
			Help: "This count of tokens handed to sinks.",
		},
		[]string{"type"},
	)
	initErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ftparser_init_errors",
			Help: "This count of segmenter initialization failures.",
		},
		[]string{"backend"},
	)
	readyParserGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ftparser_ready_parsers",
			Help: "The count of parsers holding a loaded segmenter.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		parseLatency,
		parseErrorCounter,
		emittedTokenCounter,
		initErrorCounter,
		readyParserGauge,
	)
}

func logLatency(h *prometheus.HistogramVec, mode Mode, startAt time.Time) {
	h.WithLabelValues(mode.String()).Observe(time.Since(startAt).Seconds())
}

func logErr(counter *prometheus.CounterVec, err error, mode Mode) error {
	if err != nil && err != context.Canceled {
		counter.WithLabelValues(mode.String()).Inc()
	}
	return err
}
