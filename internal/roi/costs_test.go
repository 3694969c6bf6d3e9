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

import "testing"

func allOnHealthcare() (s *Scenario, st State) {
	s = ScenarioByID("healthcare")
	st = stateWith(s.ID, map[string]bool{
		"qlora": true, "guardrails": true, "mcp": true, "evaluator": true,
	}, nil)
	return s, st
}

func TestComputeROICloudAPI(t *testing.T) {
	s, st := allOnHealthcare()
	dep := DeploymentByMode(CloudAPI)
	got := ComputeROI(s, st, *dep)

	if got.TotalSavings != 408000 {
		t.Errorf("total savings = %v, want 408000", got.TotalSavings)
	}
	if got.AnnualInfraOpEx != 0 {
		t.Errorf("cloud-api opex = %v, want 0", got.AnnualInfraOpEx)
	}
	if got.NetAnnualSavings != 408000 {
		t.Errorf("net savings = %v, want 408000", got.NetAnnualSavings)
	}
	// Four NVIDIA-only solutions at the assumed integration cost:
	// 200000 / 408000 * 12 rounds to 6 months.
	if got.PaybackMonths != 6 {
		t.Errorf("payback = %v months, want 6", got.PaybackMonths)
	}
	if got.CostReductionPct != 76 {
		t.Errorf("cost reduction = %v%%, want 76%%", got.CostReductionPct)
	}
}

func TestComputeROICloudGPU(t *testing.T) {
	s, st := allOnHealthcare()
	dep := DeploymentByMode(CloudGPU)
	got := ComputeROI(s, st, *dep)

	// 2800 * 8 * 12 + 4500 * 8 = 304800
	if got.AnnualInfraOpEx != 304800 {
		t.Errorf("cloud-gpu opex = %v, want 304800", got.AnnualInfraOpEx)
	}
	if got.NetAnnualSavings != 103200 {
		t.Errorf("net savings = %v, want 103200", got.NetAnnualSavings)
	}
	if got.CapexTotal != 0 {
		t.Errorf("cloud-gpu capex = %v, want 0", got.CapexTotal)
	}
	// No capex, so the assumed-integration branch applies:
	// 200000 / 103200 * 12 rounds to 23.
	if got.PaybackMonths != 23 {
		t.Errorf("payback = %v months, want 23", got.PaybackMonths)
	}
}

func TestComputeROIOnPrem(t *testing.T) {
	s, st := allOnHealthcare()
	dep := DeploymentByMode(OnPrem)
	got := ComputeROI(s, st, *dep)

	// 350 * 8 * 12 + 4500 * 8 = 69600
	if got.AnnualInfraOpEx != 69600 {
		t.Errorf("on-prem opex = %v, want 69600", got.AnnualInfraOpEx)
	}
	if got.NetAnnualSavings != 338400 {
		t.Errorf("net savings = %v, want 338400", got.NetAnnualSavings)
	}
	if got.CapexTotal != 240000 {
		t.Errorf("capex = %v, want 240000", got.CapexTotal)
	}
	// Capex branch wins over the heuristic: 240000 / 338400 * 12 rounds to 9.
	if got.PaybackMonths != 9 {
		t.Errorf("payback = %v months, want 9", got.PaybackMonths)
	}
}

func TestComputeROIAlternativeExcludedFromPaybackHeuristic(t *testing.T) {
	s := ScenarioByID("healthcare")
	st := stateWith(s.ID,
		map[string]bool{"qlora": true},
		map[string]string{"qlora": "self_hosted_llama"})
	got := ComputeROI(s, st, *DeploymentByMode(CloudAPI))

	if got.TotalSavings != 100000 {
		t.Errorf("total savings = %v, want alternative's 100000", got.TotalSavings)
	}
	// The only active solution runs a non-NVIDIA alternative, so the assumed
	// integration cost never accrues and payback reads as not applicable.
	if got.PaybackMonths != 0 {
		t.Errorf("payback = %v months, want 0", got.PaybackMonths)
	}
}

func TestComputeROIDefaultStateIsZero(t *testing.T) {
	for _, s := range Catalog() {
		s := s
		t.Run(s.ID, func(t *testing.T) {
			st := SelectScenario(&s, State{})
			got := ComputeROI(&s, st, *DeploymentByMode(CloudAPI))
			if got.TotalSavings != 0 {
				t.Errorf("incumbent default savings = %v, want 0", got.TotalSavings)
			}
			if got.PaybackMonths != 0 {
				t.Errorf("incumbent default payback = %v, want 0", got.PaybackMonths)
			}
		})
	}
}

func TestComputeROINetSavingsNeverNegative(t *testing.T) {
	s := ScenarioByID("healthcare")
	// Only the smallest solution active under the most expensive opex.
	st := stateWith(s.ID, map[string]bool{"evaluator": true}, nil)
	got := ComputeROI(s, st, *DeploymentByMode(CloudGPU))
	if got.NetAnnualSavings != 0 {
		t.Errorf("net savings = %v, want clamp at 0", got.NetAnnualSavings)
	}
	if got.PaybackMonths != 0 {
		t.Errorf("payback with zero net savings = %v, want 0", got.PaybackMonths)
	}
}

func TestFormatPayback(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "—"},
		{-3, "—"},
		{1, "<1 mo"},
		{9, "9 mo"},
		{36, "36 mo"},
		{120, "36 mo"},
	}
	for _, tt := range tests {
		if got := FormatPayback(tt.months); got != tt.want {
			t.Errorf("FormatPayback(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{-50, "$0"},
		{408000, "$408K"},
		{950, "$950"},
		{1500000, "$1500K"},
	}
	for _, tt := range tests {
		if got := FormatDollars(tt.amount); got != tt.want {
			t.Errorf("FormatDollars(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
