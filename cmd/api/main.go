package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/printer-supplies-api/pkg/config"
	"github.com/jhoicas/printer-supplies-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "supplies",
		Short:         "API de movimientos de toners y drums",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Sin subcomando equivale a `serve` sin migraciones.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), false)
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newTokenCmd())
	return root
}

// bootstrap carga configuración y logger, compartido por todos los subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	return cfg, log, nil
}
