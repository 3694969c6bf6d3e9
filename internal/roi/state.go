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

// State is the complete mutable view state of the simulator: which
// solutions are active, which alternative (if any) is chosen per solution,
// and the selected deployment mode. State values are immutable; every
// transition returns a fresh copy, so (old-state, action) -> new-state is
// directly assertable in tests.
type State struct {
	ScenarioID string            `json:"scenario_id"`
	Active     map[string]bool   `json:"active"`
	ChosenAlt  map[string]string `json:"chosen_alt"`
	Deployment DeploymentMode    `json:"deployment"`
}

// clone returns a deep copy of the state maps.
func (st State) clone() State {
	next := State{
		ScenarioID: st.ScenarioID,
		Active:     make(map[string]bool, len(st.Active)),
		ChosenAlt:  make(map[string]string, len(st.ChosenAlt)),
		Deployment: st.Deployment,
	}
	for k, v := range st.Active {
		next.Active[k] = v
	}
	for k, v := range st.ChosenAlt {
		next.ChosenAlt[k] = v
	}
	return next
}

// SelectScenario resets the state to the scenario's declared defaults:
// every solution with a DefaultAlt becomes active with that incumbent
// chosen; every solution without one becomes inactive with no alternative.
// The full reset guarantees stale alternative keys never leak across a
// scenario switch. The deployment mode carries over (it is scenario
// independent); a zero mode falls back to CloudAPI.
func SelectScenario(s *Scenario, prev State) State {
	next := State{
		ScenarioID: s.ID,
		Active:     make(map[string]bool, len(s.Solutions)),
		ChosenAlt:  make(map[string]string, len(s.Solutions)),
		Deployment: prev.Deployment,
	}
	if next.Deployment == "" {
		next.Deployment = CloudAPI
	}
	for _, sol := range s.Solutions {
		if sol.DefaultAlt != "" {
			next.Active[sol.Key] = true
			next.ChosenAlt[sol.Key] = sol.DefaultAlt
		} else {
			next.Active[sol.Key] = false
			next.ChosenAlt[sol.Key] = ""
		}
	}
	return next
}

// ToggleSolution flips the active flag for the given solution key. The
// chosen-alternative map is untouched, so re-activating a previously
// configured solution restores its prior alternative choice.
func ToggleSolution(st State, key string) State {
	next := st.clone()
	next.Active[key] = !next.Active[key]
	return next
}

// SelectAlternative sets the chosen alternative for the given solution key
// without changing its active flag. An empty altKey means "use the NVIDIA
// default impacts", not "deactivate".
func SelectAlternative(st State, key, altKey string) State {
	next := st.clone()
	next.ChosenAlt[key] = altKey
	return next
}

// SelectDeployment switches the deployment configuration. Metric deltas are
// unaffected; only cost aggregation changes.
func SelectDeployment(st State, mode DeploymentMode) State {
	next := st.clone()
	next.Deployment = mode
	return next
}

// ActiveSolutionCount reports how many solutions are currently active.
func (st State) ActiveSolutionCount() int {
	n := 0
	for _, on := range st.Active {
		if on {
			n++
		}
	}
	return n
}
