// SPDX-License-Identifier: MIT

// Package server exposes word chain queries over HTTP.
//
// One *wordgraph.Graph is shared read-only by every request; each request
// runs its own chain.Search bounded by the request context and the
// configured timeout.
//
// Endpoints:
//
//	GET /healthz                  liveness and vocabulary size
//	GET /v1/path?from=..&to=..    shortest chain between two words
//	GET /v1/neighbors/:word       one-letter neighbors of a word
//	GET /v1/stats                 graph statistics
//	GET /metrics                  Prometheus metrics
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/wordchain/chain"
	"github.com/katalvlaran/wordchain/wordgraph"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-ID"

const ctxRequestID = "request_id"

// Config configures a Server.
type Config struct {
	// Timeout bounds each path search. 0 means no limit.
	Timeout time.Duration

	// MaxDepth bounds chain length in steps. 0 means no limit.
	MaxDepth int

	// Logger receives per-request records. Nil means slog.Default().
	Logger *slog.Logger
}

// Server answers queries against one graph.
type Server struct {
	graph  *wordgraph.Graph
	cfg    Config
	logger *slog.Logger
	router *gin.Engine
}

// PathRequest is the query of GET /v1/path.
type PathRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// PathResponse is the body of GET /v1/path.
type PathResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Found   bool     `json:"found"`
	Path    []string `json:"path,omitempty"`
	Steps   int      `json:"steps"`
	Reason  string   `json:"reason"`
	Visited int      `json:"visited"`
}

// NeighborsResponse is the body of GET /v1/neighbors/:word.
type NeighborsResponse struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// New returns a Server for g.
func New(g *wordgraph.Graph, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{graph: g, cfg: cfg, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1 := r.Group("/v1")
	v1.GET("/path", s.handlePath)
	v1.GET("/neighbors/:word", s.handleNeighbors)
	v1.GET("/stats", s.handleStats)
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("query server listening", "addr", addr, "words", s.graph.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("query server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "words": s.graph.Len()})
}

func (s *Server) handlePath(c *gin.Context) {
	logger := s.logger.With("request_id", c.GetString(ctxRequestID), "handler", "path")

	var req PathRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("invalid path query", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query parameters 'from' and 'to' are required",
			Code:  "INVALID_QUERY",
		})
		return
	}

	ctx := c.Request.Context()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	opts := []chain.Option{chain.WithContext(ctx)}
	if s.cfg.MaxDepth > 0 {
		opts = append(opts, chain.WithMaxDepth(s.cfg.MaxDepth))
	}
	res := chain.Search(req.From, req.To, s.graph, opts...)

	logger.Debug("path query",
		"from", req.From,
		"to", req.To,
		"reason", res.Reason.String(),
		"visited", res.Visited,
	)
	c.JSON(http.StatusOK, PathResponse{
		From:    req.From,
		To:      req.To,
		Found:   res.Found,
		Path:    res.Path,
		Steps:   res.Path.Steps(),
		Reason:  res.Reason.String(),
		Visited: res.Visited,
	})
}

func (s *Server) handleNeighbors(c *gin.Context) {
	word := c.Param("word")
	if !s.graph.Has(word) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "word not in vocabulary: " + word,
			Code:  "UNKNOWN_WORD",
		})
		return
	}
	nbrs := s.graph.Neighbors(word)
	if nbrs == nil {
		nbrs = []string{}
	}
	c.JSON(http.StatusOK, NeighborsResponse{Word: word, Neighbors: nbrs})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.graph.Stats())
}
