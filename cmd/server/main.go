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

// Package main provides the SA demo server: the discovery accelerator
// (prompt to Solution Architecture Document), the ROI simulator API, and
// the NVIDIA API proxy used by browser clients.
package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/sa-demo/internal/blueprint"
	"github.com/your-org/sa-demo/internal/config"
	"github.com/your-org/sa-demo/internal/guard"
	"github.com/your-org/sa-demo/internal/health"
	"github.com/your-org/sa-demo/internal/mermaid"
	"github.com/your-org/sa-demo/internal/nim"
	"github.com/your-org/sa-demo/internal/proxy"
	"github.com/your-org/sa-demo/internal/roi"
	"github.com/your-org/sa-demo/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ServiceName identifies this binary in health responses and logs
	ServiceName = "sa-demo-server"
	// ServiceVersion is reported by the health endpoint
	ServiceVersion = "1.0.0"
)

// generator abstracts the NIM client so handlers can be tested without a
// live endpoint.
type generator interface {
	GenerateArchitecture(ctx context.Context, userPrompt string) (*nim.ArchitectureResponse, error)
	Chat(ctx context.Context, sad *nim.ArchitectureResponse, history []nim.Message) (string, error)
}

// Server wires the demo's components behind the HTTP API.
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	archive *store.Store
	guard   *guard.Guard
	tracker *nim.Tracker
	gen     generator // nil when no NVIDIA API key is configured
	proxy   *proxy.Proxy
	health  *health.Manager
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	archive, err := store.NewStore(cfg.Store.DBPath)
	if err != nil {
		logger.Fatal("Failed to open SAD archive", zap.Error(err))
	}
	defer func() { _ = archive.Close() }()

	var gen generator
	if cfg.NVIDIA.APIKey != "" {
		client, err := nim.NewClient(cfg.NVIDIA.APIKey, cfg.NVIDIA.BaseURL, cfg.NVIDIA.Model, logger)
		if err != nil {
			logger.Fatal("Failed to create NIM client", zap.Error(err))
		}
		gen = client
	} else {
		logger.Warn("NVIDIA API key not configured, running in ROI-only mode")
	}

	healthManager := health.NewManager(ServiceName, ServiceVersion, logger)
	healthManager.AddChecker("archive", health.DatabaseChecker("sqlite", archive.Ping))
	healthManager.AddChecker("nvidia", health.CredentialChecker(func() bool {
		return cfg.NVIDIA.APIKey != ""
	}))

	server := &Server{
		config:  cfg,
		logger:  logger,
		archive: archive,
		guard:   guard.New(logger),
		tracker: nim.NewTracker(),
		gen:     gen,
		proxy:   proxy.New(cfg.NVIDIA.ProxyUpstream, cfg.NVIDIA.APIKey, logger),
		health:  healthManager,
	}

	gin.SetMode(cfg.Server.Mode)
	router := server.newRouter()

	logger.Info("Starting SA demo server",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.Bool("generation_enabled", gen != nil),
	)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// buildLogger constructs the zap logger described by the logging config.
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format == "text" {
		zapConfig.Encoding = "console"
	}
	if cfg.Output != "" {
		zapConfig.OutputPaths = []string{cfg.Output}
	}

	return zapConfig.Build()
}

// newRouter sets up the Gin router with all API routes.
func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/healthz", s.health.GinHandler())

	api := router.Group("/api")
	api.GET("/scenarios", s.handleListScenarios)
	api.GET("/scenarios/:id", s.handleGetScenario)
	api.POST("/scenarios/:id/simulate", s.handleSimulate)
	api.GET("/deployments", s.handleListDeployments)
	api.GET("/snapshots", s.handleListSnapshots)
	api.POST("/generate", s.handleGenerate)
	api.POST("/chat", s.handleChat)
	api.GET("/sads", s.handleListSADs)
	api.GET("/sads/:id", s.handleGetSAD)

	s.proxy.Register(api.Group("/nvidia"))

	return router
}

// ScenarioSummary is the list-view projection of a scenario.
type ScenarioSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Industry         string `json:"industry"`
	ProblemStatement string `json:"problem_statement"`
}

// handleListScenarios returns the fixed scenario catalog as summaries.
func (s *Server) handleListScenarios(c *gin.Context) {
	catalog := roi.Catalog()
	summaries := make([]ScenarioSummary, len(catalog))
	for i, sc := range catalog {
		summaries[i] = ScenarioSummary{
			ID:               sc.ID,
			Title:            sc.Title,
			Industry:         sc.Industry,
			ProblemStatement: sc.ProblemStatement,
		}
	}
	c.JSON(http.StatusOK, summaries)
}

// handleGetScenario returns one full scenario with its default view state.
func (s *Server) handleGetScenario(c *gin.Context) {
	scenario := roi.ScenarioByID(c.Param("id"))
	if scenario == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scenario": scenario,
		"defaults": roi.SelectScenario(scenario, roi.State{}),
	})
}

// handleListDeployments returns the three fixed deployment configurations.
func (s *Server) handleListDeployments(c *gin.Context) {
	c.JSON(http.StatusOK, roi.Deployments())
}

// SimulateRequest carries a view state to evaluate. An omitted state
// simulates the scenario's defaults. Save archives the configuration and
// its outcome as a snapshot.
type SimulateRequest struct {
	State *roi.State `json:"state"`
	Save  bool       `json:"save"`
}

// SimulateResponse is the full computed outcome for one view state.
type SimulateResponse struct {
	State          roi.State         `json:"state"`
	Metrics        []roi.MetricValue `json:"metrics"`
	AllTargetsHit  bool              `json:"all_targets_hit"`
	SuccessMessage string            `json:"success_message,omitempty"`
	ROI            roi.ROIResult     `json:"roi"`
	Nodes          []roi.DiagramNode `json:"nodes"`
	Mermaid        string            `json:"mermaid"`
	SnapshotID     string            `json:"snapshot_id,omitempty"`
}

// handleSimulate evaluates a view state against a scenario: metric values,
// dollar outcome, and visible diagram nodes.
func (s *Server) handleSimulate(c *gin.Context) {
	scenario := roi.ScenarioByID(c.Param("id"))
	if scenario == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var state roi.State
	if req.State == nil {
		state = roi.SelectScenario(scenario, roi.State{})
	} else {
		state = *req.State
		state.ScenarioID = scenario.ID
		if state.Deployment == "" {
			state.Deployment = roi.CloudAPI
		}
	}

	deployment := roi.DeploymentByMode(state.Deployment)
	if deployment == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Unknown deployment mode: %s", state.Deployment),
		})
		return
	}

	metrics := roi.ComputeMetrics(scenario, state)
	resp := SimulateResponse{
		State:         state,
		Metrics:       metrics,
		AllTargetsHit: roi.AllTargetsHit(metrics),
		ROI:           roi.ComputeROI(scenario, state, *deployment),
		Nodes:         roi.VisibleNodes(scenario, state),
	}
	resp.Mermaid = mermaid.FromScenario(resp.Nodes)
	if resp.AllTargetsHit {
		resp.SuccessMessage = scenario.SuccessMessage
	}

	if req.Save {
		id, err := s.archive.SaveSnapshot(scenario.ID, state, resp.ROI)
		if err != nil {
			s.logger.Error("Failed to save snapshot", zap.Error(err))
		} else {
			resp.SnapshotID = id
		}
	}

	c.JSON(http.StatusOK, resp)
}

// handleListSnapshots returns archived snapshots, optionally filtered by
// the scenario query parameter.
func (s *Server) handleListSnapshots(c *gin.Context) {
	records, err := s.archive.ListSnapshots(c.Query("scenario"), 0)
	if err != nil {
		s.logger.Error("Failed to list snapshots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load snapshots"})
		return
	}
	if records == nil {
		records = []store.SnapshotRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GenerateRequest carries a customer discovery prompt.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateResponse is a generated and archived architecture document plus
// the blueprint recommendations it triggered.
type GenerateResponse struct {
	ID              string                    `json:"id"`
	GenerationToken string                    `json:"generation_token"`
	Document        *nim.ArchitectureResponse `json:"document"`
	Blueprints      []blueprint.Match         `json:"blueprints"`
	Diagrams        []string                  `json:"diagrams"`
}

// handleGenerate runs the full discovery flow: prompt guard, LLM
// generation, blueprint matching, archival. A request superseded by a
// newer one while the model was thinking is discarded.
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if result := s.guard.Check(req.Prompt); !result.Accepted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Prompt rejected",
			"reason":  result.Reason,
			"matched": result.Matched,
		})
		return
	}

	if s.gen == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "NVIDIA API key not configured"})
		return
	}

	token := s.tracker.Issue()
	doc, err := s.gen.GenerateArchitecture(c.Request.Context(), req.Prompt)
	if err != nil {
		s.logger.Error("Failed to generate architecture", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate architecture document"})
		return
	}

	if !s.tracker.Accept(token) {
		s.logger.Info("Discarding superseded generation", zap.String("token", token))
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer generation"})
		return
	}

	id, err := s.archive.SaveSAD(req.Prompt, doc.UseCaseTitle, doc)
	if err != nil {
		// Archival is best effort, the document is still returned.
		s.logger.Error("Failed to archive SAD", zap.Error(err))
	}

	diagrams := make([]string, len(doc.Variants))
	for i, v := range doc.Variants {
		diagrams[i] = mermaid.FromArchVariant(v)
	}

	c.JSON(http.StatusOK, GenerateResponse{
		ID:              id,
		GenerationToken: token,
		Document:        doc,
		Blueprints:      blueprint.Recommend(doc.UseCaseTitle, doc.SAD.Overview),
		Diagrams:        diagrams,
	})
}

// ChatRequest carries a follow-up conversation about an archived document.
type ChatRequest struct {
	SADID    string        `json:"sad_id" binding:"required"`
	Messages []nim.Message `json:"messages" binding:"required"`
}

// handleChat answers a follow-up question grounded in an archived SAD.
func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if s.gen == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "NVIDIA API key not configured"})
		return
	}

	record, err := s.archive.GetSAD(req.SADID)
	if err != nil {
		s.logger.Error("Failed to load SAD", zap.String("id", req.SADID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	doc, err := nim.ParseArchitectureResponse(record.Document)
	if err != nil {
		s.logger.Error("Archived document is corrupt", zap.String("id", req.SADID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Archived document is corrupt"})
		return
	}

	reply, err := s.gen.Chat(c.Request.Context(), doc, req.Messages)
	if err != nil {
		s.logger.Error("Chat completion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// handleListSADs returns recent archived documents, newest first.
func (s *Server) handleListSADs(c *gin.Context) {
	records, err := s.archive.ListSADs(0)
	if err != nil {
		s.logger.Error("Failed to list SADs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load archive"})
		return
	}
	if records == nil {
		records = []store.SADRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// handleGetSAD returns one archived document by id.
func (s *Server) handleGetSAD(c *gin.Context) {
	record, err := s.archive.GetSAD(c.Param("id"))
	if err != nil {
		s.logger.Error("Failed to load SAD", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
