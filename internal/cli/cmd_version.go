// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/models"
)

// version is reported when the binary was built without -ldflags.
var version = semver.Version{Minor: 1, Build: semver.Commit()}

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no configuration or database needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := buildInfo
			if info.BuildVersion() == models.NotAvailable {
				info = models.NewAppBuildInfo(version.String(), info.BuildDate(), commitOf(info))
			}

			appInfo, err := service.NewAppInfoService(info, logger.Nop())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), appInfo.GetBuildInfo(cmd.Context()).String())
			return nil
		},
	}
}

func commitOf(info models.AppBuildInfo) string {
	if info.BuildCommit() != models.NotAvailable {
		return info.BuildCommit()
	}
	return semver.Commit()
}
