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

package nim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeCompletionServer answers chat-completion requests with a fixed
// message body.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		resp := map[string]interface{}{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"model":  DefaultModel,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("", "", "", nil); err == nil {
		t.Error("missing API key should be rejected")
	}
}

func TestGenerateArchitectureRoundTrip(t *testing.T) {
	srv := fakeCompletionServer(t, sampleArchJSON)
	defer srv.Close()

	client, err := NewClient("nvapi-test", srv.URL, "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.GenerateArchitecture(context.Background(), "RAG chatbot for internal HR knowledge base")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.UseCaseTitle != "HR Knowledge Chatbot" {
		t.Errorf("title = %q", resp.UseCaseTitle)
	}
}

func TestGenerateArchitectureParseErrorSurfaces(t *testing.T) {
	srv := fakeCompletionServer(t, "not json at all")
	defer srv.Close()

	client, err := NewClient("nvapi-test", srv.URL, "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.GenerateArchitecture(context.Background(), "some valid use case"); err == nil {
		t.Error("non-JSON model reply should surface a parse error")
	}
}

func TestGenerateArchitectureRejectsEmptyPrompt(t *testing.T) {
	client, err := NewClient("nvapi-test", "http://localhost:0", "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.GenerateArchitecture(context.Background(), ""); err == nil {
		t.Error("empty prompt should be rejected before any network call")
	}
}

func TestChatRoundTrip(t *testing.T) {
	srv := fakeCompletionServer(t, "The NIM endpoint serves Llama-3.3-70B.")
	defer srv.Close()

	client, err := NewClient("nvapi-test", srv.URL, "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	sad, err := ParseArchitectureResponse(sampleArchJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	answer, err := client.Chat(context.Background(), sad, []Message{
		{Role: "user", Content: "Which model does the inference node run?"},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if answer == "" {
		t.Error("empty chat answer")
	}
}

func TestChatRequiresContext(t *testing.T) {
	client, err := NewClient("nvapi-test", "http://localhost:0", "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Chat(context.Background(), nil, []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("nil SAD context should be rejected")
	}
	sad := &ArchitectureResponse{UseCaseTitle: "X"}
	if _, err := client.Chat(context.Background(), sad, nil); err == nil {
		t.Error("empty history should be rejected")
	}
}
