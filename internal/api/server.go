// Package api exposes the tool catalog over HTTP: listing, schema
// inspection and execution. The gateway is a thin adapter over the shared
// runtime; all pipeline semantics live below it.
package api

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hashkit/hedera-agent-kit/internal/metrics"
	"github.com/hashkit/hedera-agent-kit/internal/runtime"
	"github.com/hashkit/hedera-agent-kit/internal/store"
)

// Server is the REST gateway.
type Server struct {
	rt      *runtime.Runtime
	audit   *store.Postgres
	metrics *metrics.Collector
	http    *gin.Engine
}

// NewServer wires routes over the runtime. The audit store and metrics
// collector may be nil.
func NewServer(rt *runtime.Runtime, audit *store.Postgres, collector *metrics.Collector) *Server {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{rt: rt, audit: audit, metrics: collector, http: r}
	if collector != nil {
		collector.SetToolCount(len(rt.Registry.All()))
	}
	s.registerRoutes()
	return s
}

// Run starts the HTTP listener.
func (s *Server) Run(port int) error {
	return s.http.Run(fmt.Sprintf(":%d", port))
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine { return s.http }

func (s *Server) registerRoutes() {
	s.http.GET("/health", s.handleHealth)
	s.http.GET("/tools", s.handleListTools)
	s.http.GET("/tools/:name", s.handleDescribeTool)
	s.http.POST("/tools/:name/execute", s.handleExecuteTool)
	s.http.GET("/invocations", s.handleListInvocations)
	if s.metrics != nil {
		s.http.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"ledger": s.rt.Client.LedgerID(),
		"mode":   string(s.rt.Context.EffectiveMode()),
	})
}

func (s *Server) handleListTools(c *gin.Context) {
	type toolEntry struct {
		Name        string `json:"name"`
		Method      string `json:"method"`
		Description string `json:"description"`
	}
	var out []toolEntry
	for _, t := range s.rt.Registry.All() {
		out = append(out, toolEntry{
			Name:        t.Name,
			Method:      t.Method.String(),
			Description: t.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": out})
}

func (s *Server) handleDescribeTool(c *gin.Context) {
	t, ok := s.rt.Registry.GetByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown tool %q", c.Param("name"))})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":        t.Name,
		"method":      t.Method.String(),
		"description": t.Description,
		"parameters":  t.Parameters.JSONSchema(),
	})
}

func (s *Server) handleExecuteTool(c *gin.Context) {
	t, ok := s.rt.Registry.GetByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown tool %q", c.Param("name"))})
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	started := time.Now()
	result := s.rt.Executor.Execute(c.Request.Context(), t, s.rt.Context, s.rt.Client, raw)

	if s.metrics != nil {
		status := "BYTES_RETURNED"
		if !result.IsBytes() {
			if v, ok := result.Raw["status"].(string); ok {
				status = v
			}
		}
		s.metrics.ObserveInvocation(t.Name, status, time.Since(started))
		if result.IsBlocked() {
			s.metrics.ObserveVeto(result.BlockedBy)
		}
	}

	if s.audit != nil {
		id := uuid.NewString()
		if err := s.audit.RecordInvocation(c.Request.Context(), id, t.Name, s.rt.Context.EffectiveMode(), result); err != nil {
			s.rt.Logger.WithError(err).Warn("failed to record invocation")
		}
	}

	resp := gin.H{"humanMessage": result.HumanMessage}
	if result.IsBytes() {
		resp["bytes"] = base64.StdEncoding.EncodeToString(result.Bytes)
	}
	if result.Raw != nil {
		resp["raw"] = result.Raw
	}
	if result.IsBlocked() {
		resp["blockedBy"] = result.BlockedBy
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListInvocations(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audit store is not enabled"})
		return
	}
	rows, err := s.audit.ListInvocations(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invocations": rows})
}
