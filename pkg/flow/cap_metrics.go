// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"log"

	"github.com/microsoft/spcflow/pkg/agents"
)

const (
	cpkMcpLabel = "cpk"
	cpkMcpUrl   = "https://cpkmcp05.azurewebsites.net/mcp"
)

const capMetricsAgentInstructions = "You have access to an MCP server called " +
	"`process-capability-mcp` which can compute process capability indices. " +
	"Use the available MCP tools to answer questions and perform tasks."

// CapMetricsTool asks an agent backed by the process capability MCP server to
// compute capability indices for the data points and returns its text answer.
type CapMetricsTool struct {
	client agents.AgentsClient
	config *Config
	poller *agents.RunPoller
}

func NewCapMetricsTool(
	client agents.AgentsClient,
	config *Config,
	pollerOptions *agents.RunPollerOptions,
) *CapMetricsTool {
	return &CapMetricsTool{
		client: client,
		config: config,
		poller: agents.NewRunPoller(client, pollerOptions),
	}
}

func (t *CapMetricsTool) Run(ctx context.Context, dataPoints string) (string, error) {
	mcpTool := agents.NewMcpTool(cpkMcpLabel, cpkMcpUrl)

	agent, err := t.client.Agents().Post(ctx, &agents.CreateAgentRequest{
		Model:        t.config.ModelDeployment,
		Name:         "cap-metric-agent",
		Instructions: capMetricsAgentInstructions,
		Tools:        []agents.ToolDefinition{mcpTool},
	})
	if err != nil {
		return "", fmt.Errorf("failed creating cap-metric agent: %w", err)
	}

	defer func() {
		if _, err := t.client.AgentById(agent.Id).Delete(ctx); err != nil {
			log.Printf("failed deleting cap-metric agent '%s': %v", agent.Id, err)
		}
	}()

	thread, err := t.client.Threads().Post(ctx)
	if err != nil {
		return "", fmt.Errorf("failed creating thread: %w", err)
	}

	prompt := "generate process capability for " + dataPoints
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
		return "", fmt.Errorf("cap-metric agent run: %w", err)
	}

	response, err := t.client.AgentText(ctx, thread.Id)
	if err != nil {
		return "", fmt.Errorf("failed reading agent response: %w", err)
	}

	return response, nil
}
