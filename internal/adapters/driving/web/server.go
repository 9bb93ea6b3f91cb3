package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// shutdownTimeout bounds graceful shutdown once ctx is cancelled.
const shutdownTimeout = 5 * time.Second

// Server is the HTML dashboard.
type Server struct {
	ports  *Ports
	engine *gin.Engine
}

// NewServer creates the dashboard server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID())
	engine.SetHTMLTemplate(dashboardTemplate)

	s := &Server{ports: ports, engine: engine}
	s.registerRoutes(engine)
	return s, nil
}

func (s *Server) registerRoutes(r gin.IRouter) {
	r.GET("/", s.handleIndex)
	r.POST("/upload", s.handleUpload)
	r.GET("/healthz", s.handleHealth)
	if s.ports.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.ports.Metrics, promhttp.HandlerOpts{})))
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("web: shutdown: %v", err)
		}
	}()

	logger.Info("web: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleIndex(c *gin.Context) {
	s.render(c, http.StatusOK, nil)
}

func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		s.render(c, http.StatusBadRequest, &Notice{Kind: "info", Text: NoFileText})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.render(c, http.StatusBadRequest, &Notice{Kind: "error", Text: FailurePrefix + err.Error()})
		return
	}
	defer f.Close()

	_, err = s.ports.Upload.UploadFile(c.Request.Context(), domain.UploadedFile{
		Name:    fh.Filename,
		Size:    fh.Size,
		Content: f,
	})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrNoFileSelected) || errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		s.render(c, status, &Notice{Kind: "error", Text: FailurePrefix + err.Error()})
		return
	}

	s.render(c, http.StatusOK, &Notice{Kind: "success", Text: SuccessText})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) render(c *gin.Context, status int, n *Notice) {
	page := loadPage(c.Request.Context(), s.ports.Dashboard)
	page.Notice = n
	page.RequestID = RequestIDFrom(c.Request.Context())
	c.HTML(status, "dashboard", page)
}
