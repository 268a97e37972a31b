// Package server exposes one bounded queue over HTTP.
//
// Producers POST items and consumers GET them; both calls block while the
// queue is full or empty, up to the request's timeout. A timeout of zero
// turns the call into a non-blocking attempt.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/boundedq/internal/queue"
)

// Item is the queued payload.
type Item struct {
	Value string `json:"value" binding:"required"`
}

type countResponse struct {
	Count int `json:"count"`
}

type statsResponse struct {
	Count int `json:"count"`
	Size  int `json:"size"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server owns the queue and the gin engine routing to it.
type Server struct {
	cfg    Config
	q      *queue.Blocking[Item]
	log    *zap.Logger
	engine *gin.Engine
}

// New validates cfg and builds the queue and its routes.
func New(cfg Config, log *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []queue.Option
	if cfg.Lazy {
		opts = append(opts, queue.WithLazyBuffer())
	}
	q, err := queue.New[Item](cfg.Capacity, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "server")
	}

	s := &Server{
		cfg: cfg,
		q:   q,
		log: log,
	}

	engine := gin.New()
	engine.Use(requestLogger(log), gin.Recovery())

	v1 := engine.Group("/v1")
	v1.POST("/items", s.push)
	v1.GET("/items/next", s.pop)
	v1.GET("/stats", s.stats)

	s.engine = engine
	return s, nil
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr), zap.Int("capacity", s.q.Size()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	})
	return g.Wait()
}

func (s *Server) push(c *gin.Context) {
	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	wait, ok := s.parseTimeout(c)
	if !ok {
		return
	}

	if wait == 0 {
		if !s.q.TryPush(item) {
			c.JSON(http.StatusConflict, errorResponse{Error: "queue full"})
			return
		}
		c.JSON(http.StatusCreated, countResponse{Count: s.q.Count()})
		return
	}

	ctx, cancel := s.waitContext(c, wait)
	defer cancel()
	if err := s.q.PushContext(ctx, item); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusRequestTimeout, errorResponse{Error: "timed out waiting for space"})
		return
	}
	c.JSON(http.StatusCreated, countResponse{Count: s.q.Count()})
}

func (s *Server) pop(c *gin.Context) {
	wait, ok := s.parseTimeout(c)
	if !ok {
		return
	}

	if wait == 0 {
		item, ok := s.q.TryPop()
		if !ok {
			c.JSON(http.StatusNotFound, errorResponse{Error: "queue empty"})
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}

	ctx, cancel := s.waitContext(c, wait)
	defer cancel()
	item, err := s.q.PopContext(ctx)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusRequestTimeout, errorResponse{Error: "timed out waiting for an item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{Count: s.q.Count(), Size: s.q.Size()})
}

// parseTimeout reads the optional timeout query parameter. It returns -1
// when absent, meaning wait for as long as the request (and MaxWait) allow.
func (s *Server) parseTimeout(c *gin.Context) (time.Duration, bool) {
	raw, present := c.GetQuery("timeout")
	if !present {
		return -1, true
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid timeout " + raw})
		return 0, false
	}
	return d, true
}

func (s *Server) waitContext(c *gin.Context, wait time.Duration) (context.Context, context.CancelFunc) {
	if s.cfg.MaxWait > 0 && (wait < 0 || wait > s.cfg.MaxWait) {
		wait = s.cfg.MaxWait
	}
	if wait < 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), wait)
}
