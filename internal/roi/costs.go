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
)

const (
	// AssumedIntegrationCostPerSolution is the placeholder one-time cost,
	// in dollars, attributed to each active NVIDIA-only solution when
	// estimating payback without real capital expenditure. It is a design
	// approximation carried over from the product's cost model, not a
	// derived financial figure.
	AssumedIntegrationCostPerSolution = 50000.0

	// PaybackDisplayCapMonths bounds the displayed payback estimate.
	PaybackDisplayCapMonths = 36

	monthsPerYear = 12
)

// ROIResult is the dollar outcome of one (scenario, state, deployment)
// combination.
type ROIResult struct {
	TotalSavings     float64 `json:"total_savings"`
	AnnualInfraOpEx  float64 `json:"annual_infra_opex"`
	NetAnnualSavings float64 `json:"net_annual_savings"`
	CapexTotal       float64 `json:"capex_total"`
	PaybackMonths    int     `json:"payback_months"`
	CostReductionPct int     `json:"cost_reduction_pct"`
}

// ComputeROI aggregates annual savings and payback for the given view state
// under a deployment configuration. Pure function; metric deltas are never
// consulted.
func ComputeROI(s *Scenario, st State, dep DeploymentConfig) ROIResult {
	var total float64
	nvidiaOnly := 0
	for i := range s.Solutions {
		sol := &s.Solutions[i]
		if !st.Active[sol.Key] {
			continue
		}
		altKey := st.ChosenAlt[sol.Key]
		if altKey != "" {
			if alt := sol.Alternative(altKey); alt != nil {
				total += alt.AnnualCostSavings
				continue
			}
		}
		total += sol.AnnualCostSavings
		nvidiaOnly++
	}

	var opex float64
	if dep.SelfHosted {
		gpus := float64(dep.GPUsRequired)
		opex = dep.OpexPerGPUPerMonth*gpus*monthsPerYear + dep.LicensePerGPUPerYear*gpus
	}

	net := math.Max(0, total-opex)
	capex := dep.CapexPerGPU * float64(dep.GPUsRequired)

	payback := 0
	switch {
	case capex > 0 && net > 0:
		payback = int(math.Round(capex / net * monthsPerYear))
	case nvidiaOnly > 0 && net > 0:
		assumed := float64(nvidiaOnly) * AssumedIntegrationCostPerSolution
		payback = int(math.Round(assumed / net * monthsPerYear))
	}

	pct := 0
	if total > 0 && s.BaseAnnualCost > 0 {
		pct = int(math.Round(total / s.BaseAnnualCost * 100))
	}

	return ROIResult{
		TotalSavings:     total,
		AnnualInfraOpEx:  opex,
		NetAnnualSavings: net,
		CapexTotal:       capex,
		PaybackMonths:    payback,
		CostReductionPct: pct,
	}
}

// FormatPayback renders payback months for display: zero months as an em
// dash, at most one month as "<1 mo", and anything above the cap clamped
// to it.
func FormatPayback(months int) string {
	switch {
	case months <= 0:
		return "—"
	case months <= 1:
		return "<1 mo"
	case months > PaybackDisplayCapMonths:
		return fmt.Sprintf("%d mo", PaybackDisplayCapMonths)
	default:
		return fmt.Sprintf("%d mo", months)
	}
}

// FormatDollars renders a dollar amount compactly, e.g. "$408K".
func FormatDollars(amount float64) string {
	if amount <= 0 {
		return "$0"
	}
	if amount >= 1000 {
		return fmt.Sprintf("$%.0fK", amount/1000)
	}
	return fmt.Sprintf("$%.0f", amount)
}
