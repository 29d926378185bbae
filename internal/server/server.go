// Package server wires the portfolio pages, HTMX fragments, CV downloads and
// the admin dashboard onto a gin engine.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Thucdzio/profilo/internal/config"
	"github.com/Thucdzio/profilo/internal/cv"
	"github.com/Thucdzio/profilo/internal/metrics"
	"github.com/Thucdzio/profilo/internal/session"
	"github.com/Thucdzio/profilo/internal/visitors"
)

// Deps are the collaborators a Server needs. Visitors may be nil, which
// disables tracking and the admin dashboard.
type Deps struct {
	Sessions   *session.Store
	Visitors   *visitors.Store
	HTTPClient *http.Client
	Resume     cv.Data
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg        config.Config
	engine     *gin.Engine
	sessions   *session.Store
	visitors   *visitors.Store
	client     *http.Client
	resume     cv.Data
	cvDocs     *cvCache
	now        func() time.Time
	adminToken string
}

// New builds the engine and registers every route.
func New(cfg config.Config, deps Deps) (*Server, error) {
	if deps.Sessions == nil {
		return nil, errors.New("server: session store is required")
	}
	if deps.HTTPClient == nil {
		deps.HTTPClient = http.DefaultClient
	}

	s := &Server{
		cfg:        cfg,
		sessions:   deps.Sessions,
		visitors:   deps.Visitors,
		client:     deps.HTTPClient,
		resume:     deps.Resume,
		now:        time.Now,
		adminToken: generateToken(),
	}

	cvDocs, err := newCVCache()
	if err != nil {
		return nil, err
	}
	s.cvDocs = cvDocs

	tmpl, err := parseTemplates()
	if err != nil {
		cvDocs.close()
		return nil, err
	}
	assets, err := fs.Sub(embedded, "assets")
	if err != nil {
		cvDocs.close()
		return nil, fmt.Errorf("assets: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if s.visitors != nil && cfg.TrackVisitors {
		r.Use(visitors.Middleware(s.visitors))
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	r.StaticFS("/assets", http.FS(assets))
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/", s.handleIndex)

	ui := r.Group("/ui")
	ui.POST("/page/:page", s.handleNavigate)
	ui.POST("/project/:id", s.handleOpenProject)
	ui.POST("/back", s.handleBack)
	ui.POST("/filters/toggle", s.handleToggleFilter)
	ui.POST("/filters/clear", s.handleClearFilters)

	r.GET("/cv", s.handleCVDownload)
	r.GET("/cv/generated", s.handleCVGenerated)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy", gin.H{"title": "Privacy Policy"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if s.visitors != nil {
		s.setupAdminRoutes(r)
	}

	s.engine = r
	return s, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Close releases the generated CV cache.
func (s *Server) Close() {
	s.cvDocs.close()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.visitors != nil {
		go s.cleanupVisitors(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// cleanupVisitors drops expired visits at startup and then daily.
func (s *Server) cleanupVisitors(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		n, err := s.visitors.Cleanup(ctx, s.cfg.VisitorRetention)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		} else if n > 0 {
			log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, s.cfg.VisitorRetention)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(b)
}
