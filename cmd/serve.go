package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Thucdzio/profilo/internal/cv"
	"github.com/Thucdzio/profilo/internal/server"
	"github.com/Thucdzio/profilo/internal/session"
	"github.com/Thucdzio/profilo/internal/visitors"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		gin.SetMode(appConfig.Mode)

		sessions := session.NewStore(appConfig.SessionTTL)
		defer sessions.Close()

		var store *visitors.Store
		if appConfig.TrackVisitors {
			var err error
			store, err = visitors.Open(appConfig.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()
		}

		resume, err := loadResume(resumeFile)
		if err != nil {
			return err
		}

		srv, err := server.New(appConfig, server.Deps{
			Sessions:   sessions,
			Visitors:   store,
			HTTPClient: &http.Client{},
			Resume:     resume,
		})
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		defer srv.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

var resumeFile string

// loadResume reads path, or the built-in résumé when path is empty.
func loadResume(path string) (cv.Data, error) {
	if path == "" {
		return cv.Default()
	}
	d, err := cv.Load(path)
	if err != nil {
		return cv.Data{}, err
	}
	log.Printf("Using CV data from %s", path)
	return d, nil
}

func init() {
	serveCmd.Flags().String("addr", "", "address to listen on (default :8080, or :$PORT)")
	serveCmd.Flags().Bool("track-visitors", true, "record privacy-conscious page views")
	serveCmd.Flags().Duration("session-ttl", 2*time.Hour, "idle lifetime of a page session")
	serveCmd.Flags().StringVar(&resumeFile, "cv-data", "", "YAML file overriding the built-in CV data")
	_ = v.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("track_visitors", serveCmd.Flags().Lookup("track-visitors"))
	_ = v.BindPFlag("session_ttl", serveCmd.Flags().Lookup("session-ttl"))
	rootCmd.AddCommand(serveCmd)
}
