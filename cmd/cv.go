package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Thucdzio/profilo/internal/cv"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "CV tools",
}

var cvOut string

var cvGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Lays out the CV and writes it as a PDF",
	Long: `generate renders the CV data to a PDF file. Point --out at
<static_dir>/cv/ to publish the copy that GET /cv serves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := loadResume(resumeFile)
		if err != nil {
			return err
		}
		out := cvOut
		if out == "" {
			out = filepath.Join(appConfig.StaticDir, "cv", cv.FileName(resume))
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := cv.Generate(f, resume, time.Now()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", out, err)
		}
		log.Printf("CV written to %s", out)
		return nil
	},
}

func init() {
	cvGenerateCmd.Flags().StringVarP(&cvOut, "out", "o", "", "output file (default <static_dir>/cv/<Name>_CV.pdf)")
	cvGenerateCmd.Flags().StringVar(&resumeFile, "data", "", "YAML file overriding the built-in CV data")
	cvCmd.AddCommand(cvGenerateCmd)
	rootCmd.AddCommand(cvCmd)
}
