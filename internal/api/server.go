package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/faq"
	"github.com/abhisek/shindan/internal/store"
)

// Options configures the API server.
type Options struct {
	Service        *diagnosis.Service
	Inquiries      store.InquiryRepo
	Link           func(path string) string
	AllowedOrigins []string
	SessionTTL     time.Duration
	FAQ            []faq.Item
}

// Server serves the diagnosis over JSON.
type Server struct {
	service   *diagnosis.Service
	inquiries store.InquiryRepo
	link      func(string) string
	faq       []faq.Item
	sessions  *sessionStore
	router    *gin.Engine
}

// NewServer builds the gin router and its routes.
func NewServer(opts Options) *Server {
	if opts.Service == nil {
		opts.Service = diagnosis.NewService(nil, nil)
	}
	if opts.FAQ == nil {
		opts.FAQ = faq.DefaultItems()
	}

	s := &Server{
		service:   opts.Service,
		inquiries: opts.Inquiries,
		link:      opts.Link,
		faq:       opts.FAQ,
		sessions:  newSessionStore(opts.SessionTTL),
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/sessions", s.createSession)
		api.GET("/sessions/:id", s.getSession)
		api.POST("/sessions/:id/answer", s.answer)
		api.POST("/sessions/:id/back", s.back)
		api.POST("/sessions/:id/restart", s.restart)
		api.GET("/sessions/:id/result", s.sessionResult)

		api.GET("/result", s.getResult)
		api.DELETE("/result", s.deleteResult)

		api.GET("/faq", s.listFAQ)
		api.POST("/inquiries", s.createInquiry)
	}

	s.router = r
	return s
}

// corsConfig allows the listed origins with credentials. An empty list or
// "*" allows every origin without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
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
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
