// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/models"
)

const defaultPageSize = 10

func newListCommand(rt *runtime) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements, articles or contact messages",
	}

	for _, kind := range models.PostKinds {
		listCmd.AddCommand(newListPostsCommand(rt, kind))
	}
	listCmd.AddCommand(newListMessagesCommand(rt))

	return listCmd
}

func newListPostsCommand(rt *runtime, kind models.PostKind) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("List %s, newest first", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				result, err := s.ContentService.ListPosts(cmd.Context(), kind, page, pageSize)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, post := range result.Items {
					printPost(out, post)
				}
				fmt.Fprintf(out, "page %d of %d (%d total)\n", result.Page, result.Pages(), result.Total)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", defaultPageSize, fmt.Sprintf("rows per page, at most %d", store.MaxPageSize))

	return cmd
}

func newListMessagesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "List contact messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				messages, err := s.ContentService.ListMessages(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, m := range messages {
					fmt.Fprintf(out, "#%d  %s <%s> [%s]\n    %s\n",
						m.ID,
						orDash(m.Name), orDash(m.Email), orDash(m.IPAddress),
						orDash(m.Message))
				}
				return nil
			})
		},
	}
}

func newPostCommand(rt *runtime) *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Add, show, edit or delete an announcement or article",
	}

	postCmd.AddCommand(
		newPostAddCommand(rt),
		newPostGetCommand(rt),
		newPostEditCommand(rt),
		newPostDeleteCommand(rt),
	)
	return postCmd
}

func bindPostFlags(cmd *cobra.Command, post *models.Post) {
	cmd.Flags().StringVar(&post.Image, "image", "", "image path")
	cmd.Flags().StringVar(&post.Title, "title", "", "title")
	cmd.Flags().StringVar(&post.Content, "content", "", "content")
	cmd.Flags().StringVar(&post.Date, "date", "", "publication date")
	cmd.Flags().StringVar(&post.Author, "author", "", "author")
}

func newPostAddCommand(rt *runtime) *cobra.Command {
	var post models.Post

	cmd := &cobra.Command{
		Use:   "add <announcements|articles>",
		Short: "Add a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParsePostKind(args[0])
			if err != nil {
				return err
			}

			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				created, err := s.ContentService.AddPost(cmd.Context(), kind, post)
				if err != nil {
					return err
				}
				printPost(cmd.OutOrStdout(), created)
				return nil
			})
		},
	}
	bindPostFlags(cmd, &post)

	return cmd
}

func newPostGetCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <announcements|articles> <id>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parsePostRef(args)
			if err != nil {
				return err
			}

			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				post, err := s.ContentService.GetPost(cmd.Context(), kind, id)
				if err != nil {
					return err
				}
				printPost(cmd.OutOrStdout(), post)
				fmt.Fprintf(cmd.OutOrStdout(), "    image: %s\n\n%s\n", post.Image, post.Content)
				return nil
			})
		},
	}
}

func newPostEditCommand(rt *runtime) *cobra.Command {
	var update models.Post

	cmd := &cobra.Command{
		Use:   "edit <announcements|articles> <id>",
		Short: "Edit a post; omitted values keep the stored ones",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parsePostRef(args)
			if err != nil {
				return err
			}

			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				post, err := s.ContentService.GetPost(cmd.Context(), kind, id)
				if err != nil {
					return err
				}

				mergePost(&post, update)
				if err = s.ContentService.EditPost(cmd.Context(), kind, post); err != nil {
					return err
				}
				printPost(cmd.OutOrStdout(), post)
				return nil
			})
		},
	}
	bindPostFlags(cmd, &update)

	return cmd
}

func newPostDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <announcements|articles> <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parsePostRef(args)
			if err != nil {
				return err
			}

			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				if err := s.ContentService.DeletePost(cmd.Context(), kind, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s #%d\n", kind, id)
				return nil
			})
		},
	}
}

func newMessageCommand(rt *runtime) *cobra.Command {
	messageCmd := &cobra.Command{
		Use:   "message",
		Short: "Record contact messages",
	}

	var name, email, text, ipAddress string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Store a contact message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message := models.Message{
				Name:      models.StringPtr(name),
				Email:     models.StringPtr(email),
				Message:   models.StringPtr(text),
				IPAddress: models.StringPtr(ipAddress),
			}

			return rt.withServices(cmd.Context(), func(s *service.Services) error {
				created, err := s.ContentService.AddMessage(cmd.Context(), message)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored message #%d\n", created.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "sender name")
	addCmd.Flags().StringVar(&email, "email", "", "sender email")
	addCmd.Flags().StringVar(&text, "text", "", "message text")
	addCmd.Flags().StringVar(&ipAddress, "ip", "", "sender ip address")
	_ = addCmd.MarkFlagRequired("text")

	messageCmd.AddCommand(addCmd)
	return messageCmd
}

func parsePostRef(args []string) (models.PostKind, int64, error) {
	kind, err := models.ParsePostKind(args[0])
	if err != nil {
		return "", 0, err
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid post id %q: %w", args[1], err)
	}

	return kind, id, nil
}

// mergePost copies the non-empty fields of update into post.
func mergePost(post *models.Post, update models.Post) {
	for dst, src := range map[*string]string{
		&post.Image:   update.Image,
		&post.Title:   update.Title,
		&post.Content: update.Content,
		&post.Date:    update.Date,
		&post.Author:  update.Author,
	} {
		if src != "" {
			*dst = src
		}
	}
}

func printPost(out io.Writer, post models.Post) {
	fmt.Fprintf(out, "#%d  %s  %s  (%s)\n", post.ID, post.Date, post.Title, post.Author)
}

func orDash(s *string) string {
	if v := models.StringValue(s); v != "" {
		return v
	}
	return "-"
}
