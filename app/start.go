package app

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/daemon"
	"github.com/letterly/letterly/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the Letterly web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			// .env is optional, a missing file is not an error
			_ = godotenv.Load()

			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d := daemon.New(&cfg)

			go d.WebService().WaitShutdown()

			log.Info().Int("port", cfg.Webserver.Port).Msg("starting letterly")

			if err := d.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
