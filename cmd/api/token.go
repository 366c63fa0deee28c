package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/printer-supplies-api/pkg/jwt"
)

func newTokenCmd() *cobra.Command {
	var userID, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET para operadores del API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "id del operador")
	cmd.Flags().StringVar(&role, "role", "operator", "rol: admin | operator")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
