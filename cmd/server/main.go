// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-daily-puzzle/internal/cli"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := buildInfo()
	printBuildInfo(build)

	if err := cli.NewRootCommand(build).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", build.Version)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", build.Date)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", build.Commit)
}
