// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

type rootFlagsDefinition struct {
	Debug   bool
	EnvFile string
}

var rootFlags rootFlagsDefinition

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spcflow <command> [options]",
		Short:         "Generate statistical process control reports from measurement data",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Diagnostic logging is opt-in; user-facing output goes through
			// the spinner and color writers instead.
			if !rootFlags.Debug {
				log.SetOutput(io.Discard)
			}
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug,
		"debug",
		false,
		"Enable debug mode",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootFlags.EnvFile,
		"env-file",
		"./config.env",
		"Path to a dotenv file with service settings",
	)

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
