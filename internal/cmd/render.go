// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/microsoft/spcflow/pkg/markdown"
	"github.com/spf13/cobra"
)

type renderFlagsDefinition struct {
	Output string
}

func newRenderCommand() *cobra.Command {
	var flags renderFlagsDefinition

	renderCmd := &cobra.Command{
		Use:   "render <markdown-file>",
		Short: "Render a markdown summary to a standalone HTML report",
		Long: heredoc.Doc(`
			Render an agent-produced markdown summary into the standalone HTML
			report document, without running the pipeline. Useful for iterating
			on report content locally.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed reading '%s': %w", args[0], err)
			}

			html := markdown.Render(string(content))

			if flags.Output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), html)
				return nil
			}

			if err := os.WriteFile(flags.Output, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed writing '%s': %w", flags.Output, err)
			}

			return nil
		},
	}

	renderCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the HTML to a file instead of stdout")

	return renderCmd
}
