// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-portal/internal/app"
	"github.com/MKhiriev/go-portal/internal/cli"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		log := logger.New("portalctl", os.Stderr)
		log.Error().Err(err).Msg(app.MessageFor(err))
		os.Exit(1)
	}
}
