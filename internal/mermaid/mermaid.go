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

// Package mermaid exports architecture views as Mermaid flowchart source,
// ready to paste into any Mermaid renderer. Both the generated SAD
// variants and the simulator's live diagrams are linear pipelines, so
// nodes are chained in declaration order.
package mermaid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/your-org/sa-demo/internal/nim"
	"github.com/your-org/sa-demo/internal/roi"
)

var idSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// sanitizeID makes a node id safe for Mermaid syntax.
func sanitizeID(id string) string {
	clean := idSanitizer.ReplaceAllString(id, "_")
	if clean == "" {
		clean = "node"
	}
	return clean
}

// escapeLabel strips characters that break Mermaid's bracket syntax.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, `"`, "'")
	label = strings.ReplaceAll(label, "[", "(")
	label = strings.ReplaceAll(label, "]", ")")
	return label
}

func nodeLabel(label, subtitle string) string {
	if subtitle == "" {
		return escapeLabel(label)
	}
	return escapeLabel(label) + "<br/><i>" + escapeLabel(subtitle) + "</i>"
}

// FromArchVariant renders one generated architecture variant as a
// left-to-right flowchart.
func FromArchVariant(v nim.ArchVariant) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")

	ids := make([]string, len(v.Nodes))
	for i, n := range v.Nodes {
		ids[i] = sanitizeID(n.ID)
		subtitle := n.Product
		if subtitle == "" {
			subtitle = n.Subtitle
		}
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", ids[i], nodeLabel(n.Label, subtitle))
	}
	for i := 1; i < len(ids); i++ {
		fmt.Fprintf(&b, "    %s --> %s\n", ids[i-1], ids[i])
	}

	return b.String()
}

// FromScenario renders the visible portion of a simulator scenario
// diagram, with node classes distinguishing the customer's baseline
// stack, NVIDIA additions, and competing alternatives.
func FromScenario(nodes []roi.DiagramNode) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = sanitizeID(n.ID)
		fmt.Fprintf(&b, "    %s[\"%s\"]:::%s\n", ids[i], nodeLabel(n.Label, n.Subtitle), string(n.Type))
	}
	for i := 1; i < len(ids); i++ {
		fmt.Fprintf(&b, "    %s --> %s\n", ids[i-1], ids[i])
	}

	b.WriteString("    classDef baseline fill:#e8e8e8,stroke:#999\n")
	b.WriteString("    classDef nvidia fill:#76b900,stroke:#5a8c00,color:#fff\n")
	b.WriteString("    classDef external fill:#d8e6f3,stroke:#6b93b8\n")
	b.WriteString("    classDef alternative fill:#f3e0d8,stroke:#b8826b\n")

	return b.String()
}
