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

// Package blueprint recommends NVIDIA AI Blueprint catalog entries for a
// generated solution architecture by keyword overlap against its title
// and leading overview bullets.
package blueprint

import (
	"sort"
	"strings"
)

// maxOverviewBullets bounds how much of the overview feeds the match text.
const maxOverviewBullets = 4

// minScore discards single keyword hits as coincidental.
const minScore = 2

// maxResults caps the recommendation list.
const maxResults = 3

// Entry is one catalog blueprint with the keywords that signal relevance.
type Entry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// Match pairs a catalog entry with its keyword-overlap score.
type Match struct {
	Entry Entry `json:"entry"`
	Score int   `json:"score"`
}

// Recommend scores every catalog entry against the SAD title plus its
// first four overview bullets (lowercased, substring keyword counting)
// and returns up to three entries scoring at least two, ordered by
// descending score with catalog declaration order as the tie-break.
func Recommend(title string, overview []string) []Match {
	if len(overview) > maxOverviewBullets {
		overview = overview[:maxOverviewBullets]
	}
	text := strings.ToLower(title + " " + strings.Join(overview, " "))

	matches := make([]Match, 0, len(catalog))
	for _, entry := range catalog {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score >= minScore {
			matches = append(matches, Match{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// Catalog returns the full blueprint catalog in declaration order.
func Catalog() []Entry {
	return catalog
}

var catalog = []Entry{
	{
		ID:    "enterprise-rag",
		Title: "Build an Enterprise RAG Pipeline Blueprint",
		Desc: "End-to-end retrieval-augmented generation with NeMo Retriever " +
			"embedding and reranking NIMs over your private document corpus.",
		URL:      "https://build.nvidia.com/nvidia/build-an-enterprise-rag-pipeline",
		Keywords: []string{"rag", "retrieval", "knowledge base", "document search", "embedding", "semantic search", "question answering", "chatbot"},
	},
	{
		ID:    "ai-virtual-assistant",
		Title: "AI Virtual Assistant for Customer Service Blueprint",
		Desc: "Multi-turn customer support assistant with conversation memory, " +
			"sentiment-aware escalation, and NIM-served models.",
		URL:      "https://build.nvidia.com/nvidia/ai-virtual-assistant-for-customer-service",
		Keywords: []string{"customer service", "support", "virtual assistant", "copilot", "helpdesk", "ticket", "csat", "call center"},
	},
	{
		ID:    "fraud-detection",
		Title: "Financial Fraud Detection Blueprint",
		Desc: "Real-time transaction fraud scoring with Morpheus GPU stream " +
			"analytics and graph neural network inference.",
		URL:      "https://build.nvidia.com/nvidia/financial-fraud-detection",
		Keywords: []string{"fraud", "transaction", "anomaly", "fintech", "payment", "risk scoring", "morpheus", "financial"},
	},
	{
		ID:    "video-search",
		Title: "Video Search and Summarization Blueprint",
		Desc: "Vision-language ingestion of video archives with natural-language " +
			"search and incident summarization.",
		URL:      "https://build.nvidia.com/nvidia/video-search-and-summarization",
		Keywords: []string{"video", "camera", "vision", "summarization", "surveillance", "footage", "multimodal"},
	},
	{
		ID:    "code-assistant",
		Title: "AI Code Review and Generation Blueprint",
		Desc: "Nemotron code models behind Triton serving for pull-request " +
			"review, vulnerability detection, and inline suggestions.",
		URL:      "https://build.nvidia.com/nvidia/ai-code-assistant",
		Keywords: []string{"code review", "pull request", "developer", "repository", "vulnerability", "static analysis", "codegen", "devops"},
	},
	{
		ID:    "document-intelligence",
		Title: "Multimodal Document Intelligence Blueprint",
		Desc: "PDF and scan extraction with NV-Embed retrieval, NeMo Curator " +
			"cleaning, and structured-output parsing.",
		URL:      "https://build.nvidia.com/nvidia/multimodal-pdf-data-extraction",
		Keywords: []string{"document", "pdf", "extraction", "ocr", "contract", "claims", "redaction", "intelligence"},
	},
	{
		ID:    "cybersecurity",
		Title: "Cybersecurity Digital Fingerprinting Blueprint",
		Desc: "Morpheus-based behavioral fingerprinting for account takeover " +
			"and insider threat detection across event streams.",
		URL:      "https://build.nvidia.com/nvidia/digital-fingerprinting",
		Keywords: []string{"security", "threat", "intrusion", "siem", "phishing", "malware", "fingerprinting", "soc"},
	},
	{
		ID:    "digital-human",
		Title: "Digital Human for Brand Engagement Blueprint",
		Desc: "Avatar-fronted conversational agent combining ACE rendering with " +
			"NIM-served dialog models.",
		URL:      "https://build.nvidia.com/nvidia/digital-humans-for-customer-service",
		Keywords: []string{"avatar", "digital human", "kiosk", "concierge", "brand", "engagement", "speech"},
	},
}
