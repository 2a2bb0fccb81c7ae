package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"nuros/internal/acoustic"
	"nuros/internal/analysis"
	"nuros/internal/config"
	"nuros/internal/logging"
)

// Server hosts the demo HTTP endpoints around one analysis session.
type Server struct {
	cfg     *config.Config
	session *analysis.Session
	logger  *slog.Logger

	mu        sync.Mutex
	baselines map[string]acoustic.FeatureVector

	httpServer *http.Server
}

// NewServer builds the server and its routes. The session is shared across
// requests; it is stateless and safe for concurrent use.
func NewServer(cfg *config.Config, session *analysis.Session, logger *slog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		session:   session,
		logger:    logging.NewComponentLogger(logger, "api"),
		baselines: make(map[string]acoustic.FeatureVector),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog())

	v1 := router.Group("/v1")
	v1.GET("/health", s.handleHealth)
	v1.POST("/analyze", s.handleAnalyze)

	s.httpServer = &http.Server{
		Addr:              cfg.API.Bind,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("api listening", logging.String("bind", s.cfg.API.Bind))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("api stopped")
	return nil
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.logger.Info("request",
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("elapsed", time.Since(started)),
		)
	}
}

func (s *Server) baselineFor(subjectID string) *acoustic.FeatureVector {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.baselines[subjectID]; ok {
		return &v
	}
	return nil
}

func (s *Server) rememberBaseline(subjectID string, v acoustic.FeatureVector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselines[subjectID] = v
}
