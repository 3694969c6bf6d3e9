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

// Package proxy forwards browser requests to the NVIDIA API so the
// credential stays server-side. Bodies pass through verbatim in both
// directions; the proxy never inspects or rewrites them.
package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const upstreamTimeout = 120 * time.Second

// Proxy holds the upstream base URL and the bearer credential.
type Proxy struct {
	upstreamBase string
	apiKey       string
	client       *http.Client
	logger       *zap.Logger
}

// New creates a proxy targeting the given upstream base URL, e.g.
// "https://integrate.api.nvidia.com". The API key may be empty; requests
// then fail with a configuration error at call time rather than startup,
// matching how the demo is deployed without a key for ROI-only use.
func New(upstreamBase, apiKey string, logger *zap.Logger) *Proxy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Proxy{
		upstreamBase: strings.TrimSuffix(upstreamBase, "/"),
		apiKey:       apiKey,
		client:       &http.Client{Timeout: upstreamTimeout},
		logger:       logger,
	}
}

// Register mounts the proxy routes on a gin group. The wildcard route
// covers /v1/chat/completions and any other upstream path.
func (p *Proxy) Register(group *gin.RouterGroup) {
	group.POST("/*path", p.Forward)
	// Anything but POST on proxy paths is a method error, not a 404.
	for _, method := range []string{
		http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead,
	} {
		group.Handle(method, "/*path", methodNotAllowed)
	}
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// Forward relays the request body to the same path on the upstream with
// the configured bearer token, then relays the upstream status and body
// back unchanged.
func (p *Proxy) Forward(c *gin.Context) {
	if p.apiKey == "" {
		p.logger.Error("proxy request without configured API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "NVIDIA API key not configured"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	targetURL := p.upstreamBase + c.Param("path")
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build upstream request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("upstream request failed",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to proxy request to NVIDIA API"})
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read upstream response"})
		return
	}

	p.logger.Debug("proxied request",
		zap.String("path", c.Param("path")),
		zap.Int("status", resp.StatusCode),
		zap.Int("response_bytes", len(data)),
	)
	c.Data(resp.StatusCode, "application/json", data)
}
