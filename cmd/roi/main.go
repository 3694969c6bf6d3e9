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

// Package main provides the ROI simulator CLI. It evaluates scenario
// configurations from the terminal, for rehearsing a demo or sanity
// checking numbers without the server running.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/your-org/sa-demo/internal/roi"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roi",
		Short: "NVIDIA solution ROI simulator",
		Long:  "Evaluate the demo's industry scenarios from the terminal: toggle solution bundles, pick alternatives and deployment modes, and see metric and dollar outcomes.",
	}

	root.AddCommand(newScenariosCmd())
	root.AddCommand(newDeploymentsCmd())
	root.AddCommand(newSimulateCmd())

	return root
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the available industry scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeScenarioTable(cmd.OutOrStdout())
		},
	}
}

func newDeploymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "List the deployment configurations and their cost parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDeploymentTable(cmd.OutOrStdout())
		},
	}
}

func newSimulateCmd() *cobra.Command {
	var (
		enables  []string
		deploy   string
		baseline bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <scenario-id>",
		Short: "Evaluate a scenario configuration",
		Long: "Evaluate a scenario with chosen solutions active. Each --enable takes a " +
			"solution key, or key=alternative to activate the slot with a competing product.",
		Example: `  roi simulate healthcare --enable qlora --enable guardrails
  roi simulate healthcare --enable qlora=self_hosted_llama --deploy on-prem
  roi simulate fintech --baseline --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := roi.ScenarioByID(args[0])
			if scenario == nil {
				return fmt.Errorf("unknown scenario %q, run 'roi scenarios' for the list", args[0])
			}

			state, err := buildState(scenario, enables, deploy, baseline)
			if err != nil {
				return err
			}

			deployment := roi.DeploymentByMode(state.Deployment)
			if deployment == nil {
				return fmt.Errorf("unknown deployment mode %q", deploy)
			}

			if asJSON {
				return writeSimulationJSON(cmd.OutOrStdout(), scenario, state, *deployment)
			}
			return writeSimulation(cmd.OutOrStdout(), scenario, state, *deployment)
		},
	}

	cmd.Flags().StringArrayVar(&enables, "enable", nil, "solution key to activate, or key=alternative (repeatable)")
	cmd.Flags().StringVar(&deploy, "deploy", string(roi.CloudAPI), "deployment mode: cloud-api, cloud-gpu, on-prem")
	cmd.Flags().BoolVar(&baseline, "baseline", false, "start with every solution off instead of the scenario defaults")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")

	return cmd
}

// buildState derives the view state from the command line. The starting
// point is the scenario's declared defaults unless baseline is requested;
// each enable entry activates one solution, optionally with an alternative.
func buildState(scenario *roi.Scenario, enables []string, deploy string, baseline bool) (roi.State, error) {
	state := roi.SelectScenario(scenario, roi.State{Deployment: roi.DeploymentMode(deploy)})
	if baseline {
		for key := range state.Active {
			state.Active[key] = false
			state.ChosenAlt[key] = ""
		}
	}

	for _, entry := range enables {
		key, altKey, hasAlt := strings.Cut(entry, "=")
		solution := scenario.Solution(key)
		if solution == nil {
			return roi.State{}, fmt.Errorf("scenario %s has no solution %q", scenario.ID, key)
		}
		if hasAlt && solution.Alternative(altKey) == nil {
			return roi.State{}, fmt.Errorf("solution %s has no alternative %q", key, altKey)
		}

		state.Active[key] = true
		if hasAlt {
			state.ChosenAlt[key] = altKey
		} else {
			state.ChosenAlt[key] = ""
		}
	}

	return state, nil
}

func writeScenarioTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Title", "Industry", "Solutions"})

	var data [][]string
	for _, s := range roi.Catalog() {
		keys := make([]string, len(s.Solutions))
		for i, sol := range s.Solutions {
			keys[i] = sol.Key
		}
		data = append(data, []string{s.ID, s.Title, s.Industry, strings.Join(keys, ", ")})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeDeploymentTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Mode", "Label", "Capex/GPU", "Opex/GPU/Mo", "GPUs", "License/GPU/Yr"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range roi.Deployments() {
		data = append(data, []string{
			string(d.Mode),
			d.Label,
			roi.FormatDollars(d.CapexPerGPU),
			roi.FormatDollars(d.OpexPerGPUPerMonth),
			fmt.Sprintf("%d", d.GPUsRequired),
			roi.FormatDollars(d.LicensePerGPUPerYear),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSimulation renders the metric table and dollar summary.
func writeSimulation(w io.Writer, scenario *roi.Scenario, state roi.State, dep roi.DeploymentConfig) error {
	metrics := roi.ComputeMetrics(scenario, state)
	result := roi.ComputeROI(scenario, state, dep)

	fmt.Fprintf(w, "%s  [%s, %d solutions active]\n\n", scenario.Title, dep.Label, state.ActiveSolutionCount())

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Baseline", "Current", "Target", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	hit := color.New(color.FgGreen).Sprint("hit")
	miss := color.New(color.FgRed).Sprint("miss")

	var data [][]string
	for _, mv := range metrics {
		status := miss
		if roi.MetricGood(mv) {
			status = hit
		}
		baseline := roi.FormatValue(roi.MetricValue{Metric: mv.Metric, Current: mv.Metric.Baseline})
		data = append(data, []string{
			mv.Metric.Label,
			baseline,
			roi.FormatValue(mv),
			roi.FormatTarget(mv.Metric),
			status,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nAnnual savings:     %s\n", roi.FormatDollars(result.TotalSavings))
	if dep.SelfHosted {
		fmt.Fprintf(w, "Infra opex:         %s/yr\n", roi.FormatDollars(result.AnnualInfraOpEx))
		fmt.Fprintf(w, "Net savings:        %s/yr\n", roi.FormatDollars(result.NetAnnualSavings))
	}
	if result.CapexTotal > 0 {
		fmt.Fprintf(w, "Capex:              %s\n", roi.FormatDollars(result.CapexTotal))
	}
	fmt.Fprintf(w, "Payback:            %s\n", roi.FormatPayback(result.PaybackMonths))
	fmt.Fprintf(w, "Cost reduction:     %d%%\n", result.CostReductionPct)

	if roi.AllTargetsHit(metrics) {
		fmt.Fprintf(w, "\n%s\n", color.New(color.FgGreen, color.Bold).Sprint(scenario.SuccessMessage))
	}

	return nil
}

// simulationOutput is the JSON projection of one evaluation.
type simulationOutput struct {
	Scenario      string            `json:"scenario"`
	State         roi.State         `json:"state"`
	Metrics       []roi.MetricValue `json:"metrics"`
	AllTargetsHit bool              `json:"all_targets_hit"`
	ROI           roi.ROIResult     `json:"roi"`
	Nodes         []roi.DiagramNode `json:"nodes"`
}

func writeSimulationJSON(w io.Writer, scenario *roi.Scenario, state roi.State, dep roi.DeploymentConfig) error {
	metrics := roi.ComputeMetrics(scenario, state)
	out := simulationOutput{
		Scenario:      scenario.ID,
		State:         state,
		Metrics:       metrics,
		AllTargetsHit: roi.AllTargetsHit(metrics),
		ROI:           roi.ComputeROI(scenario, state, dep),
		Nodes:         roi.VisibleNodes(scenario, state),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
