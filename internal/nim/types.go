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

// Package nim drafts Solution Architecture Documents by prompting an
// NVIDIA NIM chat-completions endpoint and parsing its structured JSON
// reply.
package nim

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ArchNode is one component in a proposed architecture variant.
type ArchNode struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	Type     string `json:"type"` // input | process | security | storage | output | external
	Product  string `json:"product"`
}

// ArchVariant is one of up to three candidate architectures for a use case.
type ArchVariant struct {
	VariantName          string     `json:"variant_name"`
	VariantRationale     string     `json:"variant_rationale"`
	Nodes                []ArchNode `json:"nodes"`
	EstimatedMonthlyCost float64    `json:"estimated_monthly_cost"`
	DeploymentModel      string     `json:"deployment_model,omitempty"`
	EstimatedCapex       float64    `json:"estimated_capex,omitempty"`
}

// MarketComparison contrasts one NVIDIA product with its market alternative.
type MarketComparison struct {
	NvidiaProduct     string `json:"nvidia_product"`
	MarketAlternative string `json:"market_alternative"`
	NvidiaUSP         string `json:"nvidia_usp"`
}

// SADDocument holds the bullet sections of a Solution Architecture
// Document. Optional sections arrive empty rather than null after parsing.
type SADDocument struct {
	Overview       []string           `json:"overview"`
	Assumptions    []string           `json:"assumptions"`
	NFRs           []string           `json:"nfrs"`
	DataFlow       []string           `json:"data_flow"`
	Security       []string           `json:"security"`
	Operations     []string           `json:"operations"`
	CostNotes      []string           `json:"cost_notes"`
	CapexNotes     []string           `json:"capex_notes,omitempty"`
	NvidiaVsMarket []MarketComparison `json:"nvidia_vs_market,omitempty"`
}

// NextStep is one recommended follow-up action for the sales team.
type NextStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ArchitectureResponse is the full structured reply expected from the
// model: a titled set of architecture variants, the SAD sections, next
// steps, and discovery questions for the customer's SA call.
type ArchitectureResponse struct {
	UseCaseTitle string        `json:"use_case_title"`
	Variants     []ArchVariant `json:"variants"`
	SAD          SADDocument   `json:"sad"`
	NextSteps    []NextStep    `json:"next_steps"`
	SAQuestions  []string      `json:"sa_questions"`
}

var fenceOpen = regexp.MustCompile("^```(?:json)?\n?")
var fenceClose = regexp.MustCompile("\n?```$")

// stripFences removes a single surrounding markdown code fence. Models
// occasionally wrap the JSON despite being told not to.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = fenceOpen.ReplaceAllString(cleaned, "")
		cleaned = fenceClose.ReplaceAllString(cleaned, "")
	}
	return cleaned
}

// ParseArchitectureResponse decodes a model reply into its structured
// form. Absent optional sections come back as empty slices; a reply that
// is not valid JSON is a parse error for the caller to surface.
func ParseArchitectureResponse(raw string) (*ArchitectureResponse, error) {
	var resp ArchitectureResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("model reply is not valid architecture JSON: %w", err)
	}
	normalize(&resp)
	return &resp, nil
}

func normalize(resp *ArchitectureResponse) {
	if resp.Variants == nil {
		resp.Variants = []ArchVariant{}
	}
	if resp.NextSteps == nil {
		resp.NextSteps = []NextStep{}
	}
	if resp.SAQuestions == nil {
		resp.SAQuestions = []string{}
	}
	sections := []*[]string{
		&resp.SAD.Overview, &resp.SAD.Assumptions, &resp.SAD.NFRs,
		&resp.SAD.DataFlow, &resp.SAD.Security, &resp.SAD.Operations,
		&resp.SAD.CostNotes, &resp.SAD.CapexNotes,
	}
	for _, s := range sections {
		if *s == nil {
			*s = []string{}
		}
	}
}
