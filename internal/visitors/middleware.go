package visitors

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Recorder stores a page view.
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/metrics",
	"/healthz",
	"/favicon",
	"/ui/",
	"/assets/",
	"/cv",
	"/privacy",
}

// Middleware records GET page views in the background. Static assets, admin
// pages and HTMX fragments are skipped, and so is anyone sending DNT: 1.
func Middleware(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldTrack(c.Request) {
			c.Next()
			return
		}
		ip, ua, path := c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.RequestURI()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := rec.Record(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func shouldTrack(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return false
		}
	}
	return true
}
