package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/printer-supplies-api/internal/infrastructure/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Administra las migraciones del esquema",
	}
	cmd.AddCommand(
		migrateStep("up", "Aplica las migraciones pendientes", (*postgres.Migrator).Up),
		migrateStep("down", "Revierte la última migración", (*postgres.Migrator).Down),
		migrateStep("status", "Muestra la versión actual sin aplicar nada", (*postgres.Migrator).Status),
	)
	return cmd
}

func migrateStep(use, short string, step func(*postgres.Migrator) (postgres.MigrationState, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			state, err := step(postgres.NewMigrator(cfg.DB))
			if err != nil {
				return err
			}
			log.Info().Str("cmd", use).Uint("version", state.Version).Bool("dirty", state.Dirty).Bool("applied", state.Applied).Msg("migraciones")
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t applied=%t\n", state.Version, state.Dirty, state.Applied)
			return nil
		},
	}
}
