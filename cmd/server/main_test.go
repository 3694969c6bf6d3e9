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

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/your-org/sa-demo/internal/config"
	"github.com/your-org/sa-demo/internal/guard"
	"github.com/your-org/sa-demo/internal/health"
	"github.com/your-org/sa-demo/internal/nim"
	"github.com/your-org/sa-demo/internal/proxy"
	"github.com/your-org/sa-demo/internal/store"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	doc   *nim.ArchitectureResponse
	reply string
	err   error
}

func (f *fakeGenerator) GenerateArchitecture(ctx context.Context, userPrompt string) (*nim.ArchitectureResponse, error) {
	return f.doc, f.err
}

func (f *fakeGenerator) Chat(ctx context.Context, sad *nim.ArchitectureResponse, history []nim.Message) (string, error) {
	return f.reply, f.err
}

func newTestServer(t *testing.T, gen generator) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	archive, err := store.NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}
	t.Cleanup(func() { _ = archive.Close() })

	logger := zap.NewNop()
	server := &Server{
		config:  &config.Config{},
		logger:  logger,
		archive: archive,
		guard:   guard.New(logger),
		tracker: nim.NewTracker(),
		gen:     gen,
		proxy:   proxy.New("http://localhost:0", "", logger),
		health:  health.NewManager(ServiceName, ServiceVersion, logger),
	}
	return server, server.newRouter()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func sampleDoc() *nim.ArchitectureResponse {
	return &nim.ArchitectureResponse{
		UseCaseTitle: "Enterprise RAG Knowledge Assistant",
		Variants: []nim.ArchVariant{
			{
				VariantName: "Hosted NIM",
				Nodes: []nim.ArchNode{
					{ID: "docs", Label: "Document Store", Type: "input"},
					{ID: "llm", Label: "Llama-3.3 NIM", Type: "process"},
					{ID: "answer", Label: "Grounded Answer", Type: "output"},
				},
				EstimatedMonthlyCost: 2800,
			},
		},
		SAD: nim.SADDocument{
			Overview: []string{
				"Retrieval augmented generation over internal policy documents",
				"Embedding based semantic search across the knowledge base",
			},
		},
		NextSteps:   []nim.NextStep{{Title: "Scope corpus"}},
		SAQuestions: []string{"What is the expected query volume?"},
	}
}

func TestListScenarios(t *testing.T) {
	_, router := newTestServer(t, nil)

	w := get(router, "/api/scenarios")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var summaries []ScenarioSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(summaries) != 5 {
		t.Errorf("got %d scenarios, want 5", len(summaries))
	}
	if summaries[0].ID != "healthcare" {
		t.Errorf("first scenario = %s, want healthcare", summaries[0].ID)
	}
}

func TestGetScenarioDefaults(t *testing.T) {
	_, router := newTestServer(t, nil)

	w := get(router, "/api/scenarios/healthcare")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Defaults struct {
			Active    map[string]bool   `json:"active"`
			ChosenAlt map[string]string `json:"chosen_alt"`
		} `json:"defaults"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Defaults.Active["qlora"] {
		t.Error("qlora should be active by default (incumbent pre-selected)")
	}
	if resp.Defaults.ChosenAlt["qlora"] != "openai_gpt4" {
		t.Errorf("default alternative = %q, want openai_gpt4", resp.Defaults.ChosenAlt["qlora"])
	}
}

func TestGetScenarioNotFound(t *testing.T) {
	_, router := newTestServer(t, nil)

	if w := get(router, "/api/scenarios/aerospace"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSimulateDefaultsAreBaseline(t *testing.T) {
	_, router := newTestServer(t, nil)

	w := postJSON(router, "/api/scenarios/healthcare/simulate", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ROI.TotalSavings != 0 {
		t.Errorf("default savings = %v, want 0 (incumbent stack)", resp.ROI.TotalSavings)
	}
	if resp.AllTargetsHit {
		t.Error("baseline should not hit targets")
	}
}

func TestSimulateAllSolutionsOn(t *testing.T) {
	_, router := newTestServer(t, nil)

	body := `{
		"state": {
			"active": {"qlora": true, "guardrails": true, "mcp": true, "evaluator": true},
			"chosen_alt": {},
			"deployment": "cloud-api"
		}
	}`
	w := postJSON(router, "/api/scenarios/healthcare/simulate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ROI.TotalSavings != 408000 {
		t.Errorf("total savings = %v, want 408000", resp.ROI.TotalSavings)
	}
	if resp.ROI.PaybackMonths != 6 {
		t.Errorf("payback = %d, want 6", resp.ROI.PaybackMonths)
	}
	if !resp.AllTargetsHit {
		t.Error("all solutions on should hit every target")
	}
	if resp.SuccessMessage == "" {
		t.Error("expected success message when targets hit")
	}
	if !strings.Contains(resp.Mermaid, "flowchart LR") {
		t.Errorf("expected mermaid source, got %q", resp.Mermaid)
	}
}

func TestSimulateUnknownDeployment(t *testing.T) {
	_, router := newTestServer(t, nil)

	body := `{"state": {"active": {}, "chosen_alt": {}, "deployment": "mainframe"}}`
	if w := postJSON(router, "/api/scenarios/healthcare/simulate", body); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSimulateSavesSnapshot(t *testing.T) {
	_, router := newTestServer(t, nil)

	w := postJSON(router, "/api/scenarios/fintech/simulate", `{"save": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.SnapshotID == "" {
		t.Fatal("expected a snapshot id")
	}

	lw := get(router, "/api/snapshots?scenario=fintech")
	if lw.Code != http.StatusOK {
		t.Fatalf("list status = %d", lw.Code)
	}
	var records []store.SnapshotRecord
	if err := json.Unmarshal(lw.Body.Bytes(), &records); err != nil {
		t.Fatalf("Failed to decode snapshots: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d snapshots, want 1", len(records))
	}
}

func TestGenerateRejectsGuardedPrompt(t *testing.T) {
	_, router := newTestServer(t, &fakeGenerator{doc: sampleDoc()})

	tests := []struct {
		prompt string
		reason string
	}{
		{"hello", "too_short"},
		{"just testing......", "social"},
		{"Build me an app that recommends pizza recipes to customers", "off_domain"},
	}

	for _, tt := range tests {
		body, _ := json.Marshal(GenerateRequest{Prompt: tt.prompt})
		w := postJSON(router, "/api/generate", string(body))
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("prompt %q: status = %d, want 422", tt.prompt, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tt.reason) {
			t.Errorf("prompt %q: body = %s, want reason %s", tt.prompt, w.Body.String(), tt.reason)
		}
	}
}

func TestGenerateWithoutCredential(t *testing.T) {
	_, router := newTestServer(t, nil)

	body := `{"prompt": "We need a RAG chatbot over our internal compliance documents"}`
	if w := postJSON(router, "/api/generate", body); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 without credential", w.Code)
	}
}

func TestGenerateFullFlow(t *testing.T) {
	server, router := newTestServer(t, &fakeGenerator{doc: sampleDoc()})

	body := `{"prompt": "We need a RAG chatbot over our internal compliance documents"}`
	w := postJSON(router, "/api/generate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected an archive id")
	}
	if resp.GenerationToken == "" {
		t.Error("expected a generation token")
	}
	if resp.Document.UseCaseTitle != "Enterprise RAG Knowledge Assistant" {
		t.Errorf("title = %q", resp.Document.UseCaseTitle)
	}

	foundRAG := false
	for _, m := range resp.Blueprints {
		if m.Entry.ID == "enterprise-rag" {
			foundRAG = true
		}
	}
	if !foundRAG {
		t.Errorf("expected enterprise-rag blueprint recommendation, got %+v", resp.Blueprints)
	}
	if len(resp.Diagrams) != 1 || !strings.Contains(resp.Diagrams[0], "flowchart LR") {
		t.Errorf("expected one mermaid diagram per variant, got %v", resp.Diagrams)
	}

	// The generated document lands in the archive.
	record, err := server.archive.GetSAD(resp.ID)
	if err != nil || record == nil {
		t.Fatalf("archived SAD not found: %v", err)
	}
	if record.Title != "Enterprise RAG Knowledge Assistant" {
		t.Errorf("archived title = %q", record.Title)
	}
}

func TestChatFlow(t *testing.T) {
	server, router := newTestServer(t, &fakeGenerator{reply: "Llama-3.3 NIM handles generation, NeMo Retriever handles search."})

	id, err := server.archive.SaveSAD("prompt", "Enterprise RAG Knowledge Assistant", sampleDoc())
	if err != nil {
		t.Fatalf("Failed to seed archive: %v", err)
	}

	body, _ := json.Marshal(ChatRequest{
		SADID:    id,
		Messages: []nim.Message{{Role: "user", Content: "Which component answers questions?"}},
	})
	w := postJSON(router, "/api/chat", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "NeMo Retriever") {
		t.Errorf("reply not relayed: %s", w.Body.String())
	}
}

func TestChatUnknownDocument(t *testing.T) {
	_, router := newTestServer(t, &fakeGenerator{reply: "ok"})

	body := `{"sad_id": "missing", "messages": [{"role": "user", "content": "hi?"}]}`
	if w := postJSON(router, "/api/chat", body); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t, nil)

	w := get(router, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ServiceName) {
		t.Errorf("body = %s, want service name", w.Body.String())
	}
}
