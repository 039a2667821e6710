// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-portal/internal/service"
)

func newInitCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema and the seed account",
		Long: "Create the users, announcements, articles and messages tables if they\n" +
			"do not exist and insert the seed account unless its username is taken.\n" +
			"Safe to run any number of times.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initializer, err := service.NewInitializer(rt.cfg, rt.log)
			if err != nil {
				return err
			}

			report, err := initializer.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database: %s\n", report.Path)
			fmt.Fprintf(out, "tables:   %s\n", strings.Join(report.Tables, ", "))
			if report.SeedInserted {
				fmt.Fprintf(out, "seed:     %q created\n", rt.cfg.App.Seed.Username)
			} else {
				fmt.Fprintf(out, "seed:     %q already present, left unchanged\n", rt.cfg.App.Seed.Username)
			}
			if report.RunID != "" {
				fmt.Fprintf(out, "run:      %s\n", report.RunID)
			}
			return nil
		},
	}
}

func newVerifyCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every table exists with the expected columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initializer, err := service.NewInitializer(rt.cfg, rt.log)
			if err != nil {
				return err
			}

			report, verifyErr := initializer.Verify(cmd.Context())

			out := cmd.OutOrStdout()
			for _, table := range report.Tables {
				if table.OK() {
					fmt.Fprintf(out, "ok    %s\n", table.Table)
					continue
				}
				fmt.Fprintf(out, "FAIL  %s\n", table.Table)
				for _, problem := range table.Problems {
					fmt.Fprintf(out, "      - %s\n", problem)
				}
			}

			return verifyErr
		},
	}
}
