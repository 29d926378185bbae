package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thucdzio/profilo/internal/config"
)

var cfgFile string
var appConfig config.Config

// v is shared so subcommands can bind their flags to config keys.
var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "profilo",
	Short: "Profilo - Le Tien Thuc's portfolio server",
	Long: `Profilo serves a single-page portfolio with project filtering, an
about and journey section, and a downloadable CV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}
