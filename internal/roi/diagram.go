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

// VisibleNodes computes which diagram nodes show for the given view state.
// Baseline and external nodes are always visible. A node gated by
// AddedBySolution requires that solution to be active. A node further gated
// by AddedByAlt requires that specific alternative to be chosen; an nvidia
// node without AddedByAlt shows only while no alternative is chosen for its
// solution. Declaration order is preserved.
func VisibleNodes(s *Scenario, st State) []DiagramNode {
	out := make([]DiagramNode, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if nodeVisible(n, st) {
			out = append(out, n)
		}
	}
	return out
}

func nodeVisible(n DiagramNode, st State) bool {
	if n.Type == BaselineNode || n.Type == ExternalNode {
		return true
	}
	if n.AddedBySolution == "" {
		return true
	}
	if !st.Active[n.AddedBySolution] {
		return false
	}
	chosen := st.ChosenAlt[n.AddedBySolution]
	if n.AddedByAlt != "" {
		return chosen == n.AddedByAlt
	}
	if n.Type == NvidiaNode {
		return chosen == ""
	}
	return true
}
