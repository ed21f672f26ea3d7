// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/microsoft/spcflow/pkg/agents"
)

const behaviorPlaceholder = "No analysis was produced by the agent."

var behaviorAgentInstructions = heredoc.Doc(`
	You are a Process Behavior & Statistical Process Control (SPC) expert.

	When provided:
	- A process behavior chart (image)
	- Capability metrics (Cp, Cpk, Pp, Ppk, etc.)

	Your task is to produce a clear, structured, professional analysis including:

	1. Chart Type Identification
	   - Identify the type of chart (I-MR, Xbar-R, p-chart, u-chart, etc.).
	   - Note visible features (individual points, moving range, subgroups).

	2. Control Limits & Key Components
	   - Identify the Center Line (CL), Upper Control Limit (UCL), Lower Control Limit (LCL).
	   - Identify specification limits if shown.
	   - Describe relative position of data to limits.

	3. Process Stability Assessment
	   Evaluate standard SPC rules:
	   - Points beyond control limits
	   - 8+ point runs on one side of the mean
	   - 8+ point trends (continuous increase or decrease)
	   - Cyclical, sawtooth, or repeating patterns
	   - Sudden shifts or jumps
	   - 2 of 3 beyond 2-sigma on same side
	   Clearly state whether the process is stable or unstable.

	4. Variation Evaluation
	   - Compare local vs global variation.
	   - Identify signs of tool wear, operator differences, batch shifts, warm-up effects, etc.
	   - Discuss short-term vs long-term variation patterns.

	5. Capability Assessment (using provided metrics)
	   Use the provided capability metrics to interpret:
	   - Is the process centered relative to spec limits?
	   - Is variation acceptable?
	   - Cp vs Cpk (centering)
	   - Pp vs Ppk (long-term vs short-term variation)
	   - Provide a qualitative summary of capability.

	6. Actionable Recommendations
	   Based on the observed patterns, recommend:
	   - Investigations for assignable causes.
	   - Potential process adjustments.
	   - Monitoring guidance.
	   - When a process can be considered capable or stable enough for capability reporting.

	Constraints:
	- Do NOT fabricate numerical values that are not visible on the chart or in the provided metrics.
	- If the chart quality is poor or something is unclear, say so explicitly.
	- Use clear headings and concise, actionable engineering insights.
`)

// ProcessBehaviorTool sends the chart image and capability metrics to a
// vision-capable agent and returns its structured SPC analysis.
type ProcessBehaviorTool struct {
	client agents.AgentsClient
	config *Config
	poller *agents.RunPoller
}

func NewProcessBehaviorTool(
	client agents.AgentsClient,
	config *Config,
	pollerOptions *agents.RunPollerOptions,
) *ProcessBehaviorTool {
	if pollerOptions == nil {
		pollerOptions = &agents.RunPollerOptions{
			Timeout: 60 * time.Second,
		}
	}

	return &ProcessBehaviorTool{
		client: client,
		config: config,
		poller: agents.NewRunPoller(client, pollerOptions),
	}
}

func (t *ProcessBehaviorTool) Run(
	ctx context.Context,
	capMetrics string,
	chartUrl string,
) (string, error) {
	agent, err := t.client.Agents().Post(ctx, &agents.CreateAgentRequest{
		Model:        t.config.ModelDeployment,
		Name:         "process-behavior-agent",
		Instructions: behaviorAgentInstructions,
	})
	if err != nil {
		return "", fmt.Errorf("failed creating process-behavior agent: %w", err)
	}

	defer func() {
		if _, err := t.client.AgentById(agent.Id).Delete(ctx); err != nil {
			log.Printf("failed deleting process-behavior agent '%s': %v", agent.Id, err)
		}
	}()

	thread, err := t.client.Threads().Post(ctx)
	if err != nil {
		return "", fmt.Errorf("failed creating thread: %w", err)
	}

	promptText := fmt.Sprintf(
		"Analyze the following process behavior chart and provide a detailed SPC interpretation. "+
			"Use the supplied capability metrics when forming conclusions.\n\n"+
			"Capability Metrics:\n%s",
		capMetrics,
	)

	// High detail lets the model read individual points and limit lines.
	_, err = t.client.ThreadById(thread.Id).Messages().Post(ctx, &agents.CreateMessageRequest{
		Role: agents.MessageRoleUser,
		Content: []*agents.MessageInputBlock{
			agents.NewTextBlock(promptText),
			agents.NewImageUrlBlock(chartUrl, "high"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed creating message: %w", err)
	}

	run, err := t.client.ThreadById(thread.Id).Runs().Post(ctx, &agents.CreateRunRequest{
		AssistantId: agent.Id,
	})
	if err != nil {
		return "", fmt.Errorf("failed starting run: %w", err)
	}

	if _, err := t.poller.PollUntilDone(ctx, thread.Id, run.Id); err != nil {
		return "", fmt.Errorf("process-behavior agent run: %w", err)
	}

	analysis, err := t.client.AgentText(ctx, thread.Id)
	if err != nil {
		return "", fmt.Errorf("failed reading agent response: %w", err)
	}

	if analysis == "" {
		return behaviorPlaceholder, nil
	}

	return analysis, nil
}
