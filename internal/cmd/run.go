// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/microsoft/spcflow/internal/version"
	"github.com/microsoft/spcflow/pkg/agents"
	"github.com/microsoft/spcflow/pkg/azsdk"
	"github.com/microsoft/spcflow/pkg/flow"
	"github.com/microsoft/spcflow/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/theckman/yacspin"
)

type runFlagsDefinition struct {
	FlowFile      string
	ContainerName string
	BlobName      string
	ReportName    string
}

func newRunCommand() *cobra.Command {
	var flags runFlagsDefinition

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the report pipeline end to end",
		Long: heredoc.Doc(`
			Execute the full report pipeline: download the measurement CSV from
			blob storage, generate a control chart and capability metrics via the
			agent service, analyze process behavior, aggregate the findings into a
			management summary, and publish the rendered HTML report.

			Inputs come from a flow definition file, or directly from the
			--container and --blob flags.
		`),
		Example: heredoc.Doc(`
			# Run from a flow definition
			spcflow run --flow flow.yaml

			# Run against a blob directly
			spcflow run --container measurements --blob line4.csv
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			definition, err := loadRunDefinition(&flags)
			if err != nil {
				return err
			}

			config, err := flow.LoadConfig(rootFlags.EnvFile)
			if err != nil {
				return err
			}

			spinner, err := yacspin.New(yacspin.Config{
				Frequency:         100 * time.Millisecond,
				CharSet:           yacspin.CharSets[9],
				Suffix:            " ",
				SuffixAutoColon:   true,
				StopCharacter:     "✓",
				StopColors:        []string{"fgGreen"},
				StopFailCharacter: "✗",
				StopFailColors:    []string{"fgRed"},
			})
			if err != nil {
				return fmt.Errorf("failed creating spinner: %w", err)
			}

			_ = spinner.Start()
			spinner.Message("Authenticating")

			credential, err := flow.NewCredential(ctx, config)
			if err != nil {
				spinner.StopFailMessage("Authentication failed")
				_ = spinner.StopFail()
				return err
			}

			// Each client gets its own options instance; the agents client
			// appends its own per-call policies to whatever it receives.
			userAgent := fmt.Sprintf("spcflow/%s", version.Version)

			client, err := agents.NewAgentsClient(
				config.ProjectEndpoint,
				credential,
				azsdk.NewClientOptionsBuilder().
					SetUserAgent(userAgent).
					BuildCoreClientOptions(),
			)
			if err != nil {
				spinner.StopFailMessage("Client setup failed")
				_ = spinner.StopFail()
				return err
			}

			blobs := storage.NewBlobClient(storage.AccountConfig{
				AccountName: config.StorageAccountName,
				AccountKey:  config.StorageAccountKey,
			}, azsdk.NewClientOptionsBuilder().
				SetUserAgent(userAgent).
				BuildCoreClientOptions())

			spinner.Message(fmt.Sprintf(
				"Generating report for %s/%s",
				definition.Inputs.ContainerName,
				definition.Inputs.BlobName,
			))

			result, err := flow.NewRunner(config, client, blobs).Run(ctx, definition)
			if err != nil {
				spinner.StopFailMessage("Pipeline failed")
				_ = spinner.StopFail()
				return err
			}

			spinner.StopMessage("Report published")
			_ = spinner.Stop()

			color.Cyan("Chart:  %s", result.ChartUrl)
			color.Green("Report: %s", result.ReportUrl)

			return nil
		},
	}

	runCmd.Flags().StringVarP(&flags.FlowFile, "flow", "f", "", "Path to a flow definition file")
	runCmd.Flags().StringVar(&flags.ContainerName, "container", "", "Source blob container name")
	runCmd.Flags().StringVar(&flags.BlobName, "blob", "", "Source CSV blob name")
	runCmd.Flags().StringVar(&flags.ReportName, "report-name", "", "Base name for the published report")

	return runCmd
}

func loadRunDefinition(flags *runFlagsDefinition) (*flow.Definition, error) {
	if flags.FlowFile != "" {
		return flow.LoadDefinition(flags.FlowFile)
	}

	if flags.ContainerName == "" || flags.BlobName == "" {
		return nil, fmt.Errorf("either --flow or both --container and --blob are required")
	}

	return flow.NewDefinition(flags.ContainerName, flags.BlobName, flags.ReportName)
}
