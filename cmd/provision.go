/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/calnote/apiserver/config"
	"github.com/calnote/apiserver/internal/db"
	"github.com/calnote/apiserver/internal/services"
	"github.com/calnote/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// provisionCmd replaces the old unconditional bootstrap seed: accounts are
// only ever created through an explicit operator action.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision accounts",
}

var provisionUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := cmd.Flags().GetString("username")
		if err != nil {
			return err
		}
		password, err := cmd.Flags().GetString("password")
		if err != nil {
			return err
		}

		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer dbConn.Close()

		userRepo := store.NewUserRepository(dbConn)
		authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

		user, err := authService.Register(cmd.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateUsername) {
				return fmt.Errorf("username %q already exists", username)
			}
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("created user %q with id %d\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
	provisionCmd.AddCommand(provisionUserCmd)

	provisionUserCmd.Flags().String("username", "", "username for the new account")
	provisionUserCmd.Flags().String("password", "", "initial password for the new account")
	_ = provisionUserCmd.MarkFlagRequired("username")
	_ = provisionUserCmd.MarkFlagRequired("password")
}
