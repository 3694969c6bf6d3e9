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

package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(p *Proxy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p.Register(r.Group("/api/nvidia"))
	return r
}

func TestForwardRelaysBodyAndAuth(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	r := newRouter(New(upstream.URL, "nvapi-secret", nil))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/nvidia/v1/chat/completions",
		strings.NewReader(`{"model":"meta/llama-3.3-70b-instruct"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("upstream path = %q", gotPath)
	}
	if gotAuth != "Bearer nvapi-secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody != `{"model":"meta/llama-3.3-70b-instruct"}` {
		t.Errorf("body not relayed verbatim: %q", gotBody)
	}
	if w.Body.String() != `{"choices":[]}` {
		t.Errorf("upstream body not relayed back: %q", w.Body.String())
	}
}

func TestForwardRelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer upstream.Close()

	r := newRouter(New(upstream.URL, "nvapi-secret", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/nvidia/v1/chat/completions", strings.NewReader("{}")))

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want upstream's 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "rate limited") {
		t.Errorf("body = %q, want upstream error passed through", w.Body.String())
	}
}

func TestForwardMissingCredential(t *testing.T) {
	r := newRouter(New("http://localhost:0", "", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/nvidia/v1/chat/completions", strings.NewReader("{}")))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for missing credential", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Errorf("body = %q, want configuration message", w.Body.String())
	}
}

func TestForwardNetworkFailure(t *testing.T) {
	// Closed server: connection refused.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	r := newRouter(New(upstream.URL, "nvapi-secret", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/nvidia/v1/chat/completions", strings.NewReader("{}")))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 on network failure", w.Code)
	}
}

func TestNonPostRejected(t *testing.T) {
	r := newRouter(New("http://localhost:0", "nvapi-secret", nil))
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/api/nvidia/v1/chat/completions", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s status = %d, want 405", method, w.Code)
		}
	}
}

func TestForwardArbitraryPath(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	r := newRouter(New(upstream.URL, "nvapi-secret", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/nvidia/v1/models/meta", strings.NewReader("{}")))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotPath != "/v1/models/meta" {
		t.Errorf("upstream path = %q, want /v1/models/meta", gotPath)
	}
}
