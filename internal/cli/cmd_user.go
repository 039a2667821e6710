// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/models"
)

func newUserCommand(rt *runtime) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage administrative accounts",
	}

	userCmd.AddCommand(
		newUserAddCommand(rt),
		newUserListCommand(rt),
		newUserEditCommand(rt),
		newUserDeleteCommand(rt),
		newUserCheckCommand(rt),
	)
	return userCmd
}

func newUserAddCommand(rt *runtime) *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				created, err := s.AccountService.AddUser(cmd.Context(), user)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created.Label())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&user.Username, "username", "", "login name")
	cmd.Flags().StringVar(&user.Name, "name", "", "display name")
	cmd.Flags().StringVar(&user.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts as \"name (username)\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				users, err := s.AccountService.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				for _, user := range users {
					fmt.Fprintln(cmd.OutOrStdout(), user.Label())
				}
				return nil
			})
		},
	}
}

func newUserEditCommand(rt *runtime) *cobra.Command {
	var update models.User

	cmd := &cobra.Command{
		Use:   "edit <username>",
		Short: "Change name, username or password of an account",
		Long:  "Change name, username or password of an account. Omitted values keep\nthe stored ones; an omitted password keeps the stored credential.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				current, err := s.AccountService.GetUser(cmd.Context(), username)
				if err != nil {
					return err
				}

				edited := update
				if edited.Username == "" {
					edited.Username = current.Username
				}
				if edited.Name == "" {
					edited.Name = current.Name
				}

				if err = s.AccountService.EditUser(cmd.Context(), username, edited); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", edited.Label())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&update.Username, "new-username", "", "new login name")
	cmd.Flags().StringVar(&update.Name, "name", "", "new display name")
	cmd.Flags().StringVar(&update.Password, "password", "", "new password")

	return cmd
}

func newUserDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete every account with the given username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				if err := s.AccountService.DeleteUser(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newUserCheckCommand(rt *runtime) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "check <username>",
		Short: "Verify a password against the stored credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				user, err := s.AccountService.Authenticate(cmd.Context(), args[0], password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", user.Label())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to check")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
