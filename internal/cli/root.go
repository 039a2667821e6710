// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the portalctl command tree.
//
// Every command that touches the database loads the layered configuration,
// opens the database for the duration of the command and closes it before
// returning. Logs go to stderr, command output to stdout.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/internal/utils"
	"github.com/MKhiriev/go-portal/models"
)

const role = "portalctl"

// runtime is the state prepared for a command by the root pre-run hook.
type runtime struct {
	cfg *config.StructuredConfig
	log *logger.Logger
}

// NewRootCommand builds the portalctl command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           role,
		Short:         "Portal database initializer and administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		rt.log = logger.New(role, cmd.ErrOrStderr())

		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}
		rt.cfg = cfg

		runID := utils.NewRunIDGenerator().Generate()
		ctx := rt.log.WithRunID(utils.WithRunID(cmd.Context(), runID), runID)
		cmd.SetContext(ctx)

		logger.FromContext(ctx).Debug().
			Str("command", cmd.CommandPath()).
			Str("db", cfg.Storage.DB.Path).
			Str("driver", cfg.Storage.DB.Driver).
			Str("policy", cfg.App.CredentialPolicy).
			Msg("received configs")
		return nil
	}

	rootCmd.AddCommand(
		newInitCommand(rt),
		newVerifyCommand(rt),
		newUserCommand(rt),
		newListCommand(rt),
		newPostCommand(rt),
		newMessageCommand(rt),
		newVersionCommand(buildInfo),
	)

	return rootCmd
}

// withServices opens the configured database, builds the services over it
// and runs fn. The database is closed when fn returns.
func (rt *runtime) withServices(ctx context.Context, fn func(*service.Services) error) error {
	return store.WithDB(ctx, rt.cfg.Storage.DB, rt.log, func(db *store.DB) error {
		storages, err := store.NewStorages(db, rt.log)
		if err != nil {
			return err
		}

		services, err := service.NewServices(storages, rt.cfg.App, rt.log)
		if err != nil {
			return err
		}

		return fn(services)
	})
}
