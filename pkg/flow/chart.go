// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/microsoft/spcflow/pkg/agents"
)

const (
	chartMcpLabel = "chart"
	chartMcpUrl   = "https://chartmcp02.azurewebsites.net/sse"
)

// The output contract matters more than the analysis here: downstream tools
// treat the response as a URL, so the instructions insist on URL-only output.
var chartAgentInstructions = heredoc.Doc(`
	You have access to an MCP server called ` + "`chart`" + ` with a tool
	` + "`create_process_control_chart_url`" + `.

	Your job:
	1. Call the MCP tool to generate a statistical process control chart
	   using the data points provided by the user.
	2. When the chart is successfully generated, respond with ONLY the
	   chart URL, on a single line, with no additional text, markdown,
	   or explanation.

	If something goes wrong, respond with:
	ERROR: <short description of the problem>

	Do not describe the chart; only return the URL.
`)

// ChartTool asks an agent backed by the chart MCP server to plot the data
// points and returns only the resulting chart URL.
type ChartTool struct {
	client agents.AgentsClient
	config *Config
	poller *agents.RunPoller
}

func NewChartTool(
	client agents.AgentsClient,
	config *Config,
	pollerOptions *agents.RunPollerOptions,
) *ChartTool {
	return &ChartTool{
		client: client,
		config: config,
		poller: agents.NewRunPoller(client, pollerOptions),
	}
}

// Run returns the chart URL, or an "ERROR: ..." string when the agent could
// not produce one. Agent-reported errors are part of the tool's output
// contract rather than Go errors so the pipeline can surface them verbatim.
func (t *ChartTool) Run(ctx context.Context, dataPoints string) (string, error) {
	mcpTool := agents.NewMcpTool(chartMcpLabel, chartMcpUrl)

	agent, err := t.client.Agents().Post(ctx, &agents.CreateAgentRequest{
		Model:        t.config.ModelDeployment,
		Name:         "chart-agent",
		Instructions: chartAgentInstructions,
		Tools:        []agents.ToolDefinition{mcpTool},
	})
	if err != nil {
		return "", fmt.Errorf("failed creating chart agent: %w", err)
	}

	defer func() {
		if _, err := t.client.AgentById(agent.Id).Delete(ctx); err != nil {
			log.Printf("failed deleting chart agent '%s': %v", agent.Id, err)
		}
	}()

	thread, err := t.client.Threads().Post(ctx)
	if err != nil {
		return "", fmt.Errorf("failed creating thread: %w", err)
	}

	prompt := fmt.Sprintf(
		"Generate a statistical process control chart for the following data: %s\n\n"+
			"Return ONLY the chart URL, nothing else.",
		dataPoints,
	)

	_, err = t.client.ThreadById(thread.Id).Messages().Post(ctx, &agents.CreateMessageRequest{
		Role:    agents.MessageRoleUser,
		Content: []*agents.MessageInputBlock{agents.NewTextBlock(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("failed creating message: %w", err)
	}

	run, err := t.client.ThreadById(thread.Id).Runs().Post(ctx, &agents.CreateRunRequest{
		AssistantId: agent.Id,
		Tools:       []agents.ToolDefinition{mcpTool},
	})
	if err != nil {
		return "", fmt.Errorf("failed starting run: %w", err)
	}

	if _, err := t.poller.PollUntilDone(ctx, thread.Id, run.Id); err != nil {
		return "", fmt.Errorf("chart agent run: %w", err)
	}

	rawText, err := t.client.AgentText(ctx, thread.Id)
	if err != nil {
		return "", fmt.Errorf("failed reading agent response: %w", err)
	}
	rawText = strings.TrimSpace(rawText)

	// Agent-reported failures pass through unchanged.
	if strings.HasPrefix(rawText, "ERROR:") {
		return rawText, nil
	}

	url := extractFirstUrl(rawText)
	if url == "" {
		return fmt.Sprintf(
			"ERROR: Chart agent did not return a valid URL. Raw response was: %s",
			snippet(rawText, 300),
		), nil
	}

	return url, nil
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

// extractFirstUrl returns the first http(s) URL in the text, trimming the
// trailing punctuation agents tend to wrap URLs in.
func extractFirstUrl(text string) string {
	match := urlPattern.FindString(text)
	return strings.TrimRight(match, ").,]")
}

// snippet truncates to a character count, never splitting a rune.
func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	return string(runes[:max])
}
