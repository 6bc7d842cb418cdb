// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/renovation-service/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the service",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("App Version: %s\n", version.Version)
		},
	}
}
