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

// Package roi implements the ROI simulator's scenario model: five fixed
// industry scenarios whose business metrics respond to togglable solution
// bundles, competing alternatives, and deployment configurations. All
// scenario data is load-time constant; the only mutable value is the view
// State, and every computation over it is a pure function.
package roi

import (
	"fmt"
	"strings"
)

// Metric is a named, unit-tagged business quantity tracked by a scenario.
// Baseline and Target never change at runtime; only the computed current
// value does.
type Metric struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	Unit           string  `json:"unit"`
	Baseline       float64 `json:"baseline"`
	Target         float64 `json:"target"`
	HigherIsBetter bool    `json:"higher_is_better"`
}

// Alternative is a competing or incumbent option occupying the same
// architectural slot as its parent solution. Selecting it fully replaces
// the solution's impacts and savings; deltas are substituted, never combined.
type Alternative struct {
	Key               string             `json:"key"`
	Title             string             `json:"title"`
	Product           string             `json:"product"`
	Impacts           map[string]float64 `json:"impacts"`
	AnnualCostSavings float64            `json:"annual_cost_savings"`
	Tradeoff          string             `json:"tradeoff"`
}

// Solution is a togglable upgrade bundle with a signed delta per metric key
// and an annual savings figure. DefaultAlt, when set, names the alternative
// representing what the customer already runs; it is pre-selected (and the
// solution pre-activated) when the owning scenario loads.
type Solution struct {
	Key               string             `json:"key"`
	Title             string             `json:"title"`
	Product           string             `json:"product"`
	Desc              string             `json:"desc"`
	Impacts           map[string]float64 `json:"impacts"`
	AnnualCostSavings float64            `json:"annual_cost_savings"`
	Alternatives      []Alternative      `json:"alternatives,omitempty"`
	DefaultAlt        string             `json:"default_alt,omitempty"`
}

// Alternative returns the alternative with the given key, or nil.
func (s *Solution) Alternative(key string) *Alternative {
	for i := range s.Alternatives {
		if s.Alternatives[i].Key == key {
			return &s.Alternatives[i]
		}
	}
	return nil
}

// NodeType classifies a diagram node for visibility gating.
type NodeType string

const (
	// BaselineNode is part of the customer's existing stack; always visible.
	BaselineNode NodeType = "baseline"
	// NvidiaNode is added by an NVIDIA solution; visible only while that
	// solution is active with no alternative chosen (unless the node is
	// itself pinned to an alternative via AddedByAlt).
	NvidiaNode NodeType = "nvidia"
	// ExternalNode is a third-party component outside the toggled slots;
	// always visible.
	ExternalNode NodeType = "external"
	// AlternativeNode is added by choosing a specific alternative.
	AlternativeNode NodeType = "alternative"
)

// DiagramNode is one element of a scenario's live architecture diagram.
// Visibility is a deterministic function of the view state; see VisibleNodes.
type DiagramNode struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Type            NodeType `json:"type"`
	AddedBySolution string   `json:"added_by_solution,omitempty"`
	AddedByAlt      string   `json:"added_by_alt,omitempty"`
}

// Scenario is one industry vignette: fixed metrics, fixed solutions, fixed
// diagram nodes, and a base annual cost used as the denominator for percent
// cost reduction.
type Scenario struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Industry         string        `json:"industry"`
	ProblemStatement string        `json:"problem_statement"`
	BaseAnnualCost   float64       `json:"base_annual_cost"`
	Metrics          []Metric      `json:"metrics"`
	Solutions        []Solution    `json:"solutions"`
	Nodes            []DiagramNode `json:"nodes"`
	SuccessMessage   string        `json:"success_message"`
}

// Metric returns the metric with the given key, or nil.
func (s *Scenario) Metric(key string) *Metric {
	for i := range s.Metrics {
		if s.Metrics[i].Key == key {
			return &s.Metrics[i]
		}
	}
	return nil
}

// Solution returns the solution with the given key, or nil.
func (s *Scenario) Solution(key string) *Solution {
	for i := range s.Solutions {
		if s.Solutions[i].Key == key {
			return &s.Solutions[i]
		}
	}
	return nil
}

// DeploymentMode identifies one of the three fixed deployment configurations.
type DeploymentMode string

const (
	// CloudAPI consumes hosted NIM endpoints; no infrastructure of your own.
	CloudAPI DeploymentMode = "cloud-api"
	// CloudGPU rents dedicated GPU instances in a cloud region.
	CloudGPU DeploymentMode = "cloud-gpu"
	// OnPrem purchases GPUs outright and runs them in your own datacenter.
	OnPrem DeploymentMode = "on-prem"
)

// DeploymentConfig carries the cost parameters of one deployment mode.
// It affects only the cost aggregation step, never the metric deltas.
type DeploymentConfig struct {
	Mode                 DeploymentMode `json:"mode"`
	Label                string         `json:"label"`
	CapexPerGPU          float64        `json:"capex_per_gpu"`
	OpexPerGPUPerMonth   float64        `json:"opex_per_gpu_per_month"`
	GPUsRequired         int            `json:"gpus_required"`
	LicensePerGPUPerYear float64        `json:"license_per_gpu_per_year"`
	SelfHosted           bool           `json:"self_hosted"`
	DataResidency        bool           `json:"data_residency"`
}

// ValidationError describes one scenario construction defect.
type ValidationError struct {
	Scenario string
	Field    string
	Message  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("scenario %q: %s: %s", e.Scenario, e.Field, e.Message)
}

// Validate checks a scenario for construction defects: duplicate keys,
// impact maps referencing undefined metric keys, a DefaultAlt absent from
// the alternatives list, diagram nodes gated on unknown solutions or
// alternatives, and metrics whose target is not strictly better than
// baseline. The composition engine silently skips unknown impact keys at
// runtime; Validate exists so tests catch such defects at load time instead.
func (s *Scenario) Validate() error {
	var errs []string
	fail := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{
			Scenario: s.ID,
			Field:    field,
			Message:  fmt.Sprintf(format, args...),
		}.Error())
	}

	metricKeys := make(map[string]bool, len(s.Metrics))
	for _, m := range s.Metrics {
		if metricKeys[m.Key] {
			fail("metrics", "duplicate metric key %q", m.Key)
		}
		metricKeys[m.Key] = true

		if m.HigherIsBetter && m.Target <= m.Baseline {
			fail("metrics."+m.Key, "target %v is not above baseline %v", m.Target, m.Baseline)
		}
		if !m.HigherIsBetter && m.Target >= m.Baseline {
			fail("metrics."+m.Key, "target %v is not below baseline %v", m.Target, m.Baseline)
		}
	}

	checkImpacts := func(owner string, impacts map[string]float64) {
		for key := range impacts {
			if !metricKeys[key] {
				fail(owner, "impact references undefined metric key %q", key)
			}
		}
	}

	solutionKeys := make(map[string]bool, len(s.Solutions))
	for _, sol := range s.Solutions {
		if solutionKeys[sol.Key] {
			fail("solutions", "duplicate solution key %q", sol.Key)
		}
		solutionKeys[sol.Key] = true
		checkImpacts("solutions."+sol.Key, sol.Impacts)

		altKeys := make(map[string]bool, len(sol.Alternatives))
		for _, alt := range sol.Alternatives {
			if altKeys[alt.Key] {
				fail("solutions."+sol.Key, "duplicate alternative key %q", alt.Key)
			}
			altKeys[alt.Key] = true
			checkImpacts("solutions."+sol.Key+".alternatives."+alt.Key, alt.Impacts)
		}

		if sol.DefaultAlt != "" && !altKeys[sol.DefaultAlt] {
			fail("solutions."+sol.Key, "default_alt %q is not a declared alternative", sol.DefaultAlt)
		}
	}

	for _, n := range s.Nodes {
		if n.AddedBySolution == "" {
			continue
		}
		sol := s.Solution(n.AddedBySolution)
		if sol == nil {
			fail("nodes."+n.ID, "added_by_solution %q is not a declared solution", n.AddedBySolution)
			continue
		}
		if n.AddedByAlt != "" && sol.Alternative(n.AddedByAlt) == nil {
			fail("nodes."+n.ID, "added_by_alt %q is not an alternative of solution %q", n.AddedByAlt, n.AddedBySolution)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
