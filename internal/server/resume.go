package server

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thucdzio/profilo/internal/cv"
	"github.com/Thucdzio/profilo/internal/metrics"
)

const prebuiltPath = "/static/cv/"

// handleCVDownload serves the pre-built résumé as an attachment.
func (s *Server) handleCVDownload(c *gin.Context) {
	name := cv.FileName(s.resume)
	doc, err := cv.FetchPrebuilt(c.Request.Context(), s.client, s.prebuiltURL(name))
	if err != nil {
		metrics.CVExports.WithLabelValues("prebuilt", "error").Inc()
		msg := "Failed to download CV. Please try again later."
		if errors.Is(err, cv.ErrPrebuiltNotFound) {
			msg = "The CV file is not available right now."
		}
		c.String(http.StatusBadGateway, "%s", msg)
		return
	}
	metrics.CVExports.WithLabelValues("prebuilt", "ok").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// handleCVGenerated lays the résumé out on the fly.
func (s *Server) handleCVGenerated(c *gin.Context) {
	doc, err := s.cvDocs.get(s.resume, s.now())
	if err != nil {
		log.Printf("Error generating PDF: %v", err)
		metrics.CVExports.WithLabelValues("generated", "error").Inc()
		c.String(http.StatusInternalServerError, "Failed to generate CV.")
		return
	}
	metrics.CVExports.WithLabelValues("generated", "ok").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cv.FileName(s.resume)))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// prebuiltURL is the configured document address, or this server's own
// static copy over loopback when none is configured. Request headers never
// pick the host.
func (s *Server) prebuiltURL(name string) string {
	if s.cfg.CV.PrebuiltURL != "" {
		return s.cfg.CV.PrebuiltURL
	}
	host, port, err := net.SplitHostPort(s.cfg.Addr)
	if err != nil {
		host, port = "", strings.TrimPrefix(s.cfg.Addr, ":")
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + prebuiltPath + name
}
