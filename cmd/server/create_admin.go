package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

func newCreateAdminCommand() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logifyCore := newLogifyCore(cfg)
			admin, err := logifyCore.User.BootstrapAdmin(cmd.Context(), &models.UserInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			common.GetLogger().Info("admin created", zap.String("id", admin.ID), zap.String("email", admin.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Administrator", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
