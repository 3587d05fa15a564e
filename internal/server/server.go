// Package server exposes the assessment history over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/history"
	"github.com/abhisek/strengthmap/internal/logging"
)

// History is the subset of history.Service the API needs.
type History interface {
	Record(ctx context.Context, answers []assessment.Answer) (assessment.Result, error)
	List(ctx context.Context) ([]assessment.Result, error)
	Get(ctx context.Context, id string) (assessment.Result, error)
	Delete(ctx context.Context, id string) error
	CompareWithPrevious(ctx context.Context, id string) (history.Comparison, error)
	CompareByID(ctx context.Context, currentID, previousID string) (history.Comparison, error)
	Share(ctx context.Context, id string) (string, error)
}

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server wires the API routes to a History.
type Server struct {
	history History
	logger  *slog.Logger
	engine  *gin.Engine
}

// New builds a Server. mode is a gin mode ("debug", "release" or "test");
// empty selects release.
func New(h History, logger *slog.Logger, mode string) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	s := &Server{history: h, logger: logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.routes()
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/questions", s.listQuestions)
		v1.POST("/analyze", s.analyze)

		assessments := v1.Group("/assessments")
		{
			assessments.POST("", s.createAssessment)
			assessments.GET("", s.listAssessments)
			assessments.GET("/:id", s.getAssessment)
			assessments.DELETE("/:id", s.deleteAssessment)
			assessments.GET("/:id/compare", s.compareAssessment)
			assessments.GET("/:id/share", s.shareAssessment)
		}
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}
