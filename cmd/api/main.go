// @title                       Carbon Footprint Tracker API
// @version                     1.0
// @description                 설문 기반 탄소 발자국 기록 조회, 대시보드, 감축 분석 API
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 `Bearer <token>` 형식으로 입력하세요.
package main

import (
	"errors"
	"fmt"
	"os"

	"CarbonFootprintTracker/internal/config"
	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/records"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "carbon",
	Short: "Carbon footprint tracker API",
	Long: `carbon serves the carbon footprint tracker API: survey submissions,
per-user record history, dashboard data and reduction analysis.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := os.Setenv(config.ConfigPathEnvVar, configPath); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
		if cfg.UsesFallbackSecret() {
			logging.Warn().Msg("auth.jwt_secret is not set, using the built-in key")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd, recordsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
