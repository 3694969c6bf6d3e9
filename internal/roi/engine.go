// Copyright 2025 SA Demo Suite Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// lowerFloor keeps "lower is better" metrics strictly positive so ratios
// and formatting stay well-defined.
const lowerFloor = 0.01

// MetricValue pairs a metric with its computed current value.
type MetricValue struct {
	Metric  Metric  `json:"metric"`
	Current float64 `json:"current"`
}

// ComputeMetrics produces the current value of every metric in the
// scenario for the given view state. Each metric starts at its baseline;
// solutions are applied in declaration order (summation order is fixed for
// reproducibility), with a chosen alternative's impact map substituting for
// the solution's own. Unknown impact keys are skipped. Results are clamped
// (higher-is-better at 0, lower-is-better at lowerFloor) and rounded to
// two decimals. Pure and idempotent.
func ComputeMetrics(s *Scenario, st State) []MetricValue {
	out := make([]MetricValue, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		value := m.Baseline
		for i := range s.Solutions {
			sol := &s.Solutions[i]
			if !st.Active[sol.Key] {
				continue
			}
			impacts := sol.Impacts
			if altKey := st.ChosenAlt[sol.Key]; altKey != "" {
				if alt := sol.Alternative(altKey); alt != nil {
					impacts = alt.Impacts
				}
			}
			if delta, ok := impacts[m.Key]; ok {
				value += delta
			}
		}
		if m.HigherIsBetter {
			value = math.Max(0, value)
		} else {
			value = math.Max(lowerFloor, value)
		}
		out = append(out, MetricValue{Metric: m, Current: round2(value)})
	}
	return out
}

// MetricGood reports whether a metric's current value reaches its target:
// at-or-above for higher-is-better metrics, at-or-below otherwise.
func MetricGood(mv MetricValue) bool {
	if mv.Metric.HigherIsBetter {
		return mv.Current >= mv.Metric.Target
	}
	return mv.Current <= mv.Metric.Target
}

// AllTargetsHit is the conjunction of MetricGood over all metrics.
func AllTargetsHit(values []MetricValue) bool {
	for _, mv := range values {
		if !MetricGood(mv) {
			return false
		}
	}
	return true
}

// MetricProgress maps a metric's current value to a 0-100 display
// percentage. A non-positive denominator (target equal to or worse than
// baseline) returns 100 by convention; Validate rejects such metrics at
// load time so shipping catalogs never hit that branch.
func MetricProgress(mv MetricValue) float64 {
	m := mv.Metric
	var progress float64
	if m.HigherIsBetter {
		span := m.Target - m.Baseline
		if span <= 0 {
			return 100
		}
		progress = (mv.Current - m.Baseline) / span * 100
	} else {
		span := m.Baseline - m.Target
		if span <= 0 {
			return 100
		}
		progress = (m.Baseline - mv.Current) / span * 100
	}
	return math.Min(100, math.Max(0, progress))
}

// FormatValue renders a current value with its unit for display.
func FormatValue(mv MetricValue) string {
	v := formatNumber(mv.Current)
	switch mv.Metric.Unit {
	case "$":
		return fmt.Sprintf("$%.2f", mv.Current)
	case "%", "/5":
		return v + mv.Metric.Unit
	case "s", "ms":
		return v + mv.Metric.Unit
	case "min":
		return v + " min"
	default:
		return v
	}
}

// FormatTarget renders a metric's target with its direction for display,
// e.g. "< 2s" or "> 95%".
func FormatTarget(m Metric) string {
	dir := "<"
	if m.HigherIsBetter {
		dir = ">"
	}
	t := MetricValue{Metric: m, Current: m.Target}
	switch m.Unit {
	case "$":
		return fmt.Sprintf("%s $%s", dir, formatNumber(m.Target))
	default:
		return dir + " " + strings.TrimPrefix(FormatValue(t), "$")
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatNumber renders a float without trailing zeros, grouping thousands
// for large whole values.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) >= 1000 {
		return groupThousands(int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
