// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/microsoft/spcflow/pkg/agents"
)

const (
	aggregatorPlaceholder = "The aggregator agent did not return any text response."
	notAssessedMarker     = "Not assessed in this run"
)

// AggregatorTool sends the behavior analysis, capability metrics and chart
// URL to the pre-provisioned aggregator agent and returns its management
// summary. The agent is long-lived and is never created or deleted here.
type AggregatorTool struct {
	client agents.AgentsClient
	config *Config
	poller *agents.RunPoller
}

func NewAggregatorTool(
	client agents.AgentsClient,
	config *Config,
	pollerOptions *agents.RunPollerOptions,
) *AggregatorTool {
	if pollerOptions == nil {
		pollerOptions = &agents.RunPollerOptions{
			Timeout: 30 * time.Second,
		}
	}

	return &AggregatorTool{
		client: client,
		config: config,
		poller: agents.NewRunPoller(client, pollerOptions),
	}
}

func (t *AggregatorTool) Run(
	ctx context.Context,
	processBehavior string,
	capMetrics string,
	chartUrl string,
) (string, error) {
	if processBehavior == "" && capMetrics == "" {
		return "No process behavior or capability information was provided to the aggregator.", nil
	}

	behaviorClean := stripNotAssessed(processBehavior)
	if behaviorClean == "" {
		behaviorClean = "(No process behavior analysis was provided or it was not assessed in this run.)"
	}

	capClean := stripNotAssessed(capMetrics)
	if capClean == "" {
		capClean = "(No capability metrics analysis was provided or it was not assessed in this run.)"
	}

	userMessage := heredoc.Docf(`
		You are the Process Capability Aggregator Agent.

		You receive:
		%s

		%s

		%s

		Your tasks:

		1. First, provide a clear overview of common process capability indices
		   (Cp, Cpk, Pp, Ppk, and any others you consider critical) and when each
		   is most appropriate to use (e.g., short-term vs long-term, centered vs uncentered).

		2. Then, synthesize the two analyses into a single, coherent engineering narrative:
		   - Identify whether the process appears stable or unstable.
		   - Interpret capability (is the process capable against the given specs?).
		   - Explain how the behavior/stability and capability results fit together.
		   - Call out any conflicts between the behavior analysis and capability metrics.

		3. Finally, provide 3-5 concise recommendations for management, e.g.:
		   - Is the process ready for capability reporting?
		   - Should they focus on reducing special causes first?
		   - Specific next steps (data collection, investigation, or adjustment).

		4. Include the chart URL as an embedded link as part of the output

		Constraints:
		- Do NOT fabricate numbers that are not provided in the analyses.
		- If one of the sections above is missing or not assessed, clearly state that it
		  was not available and focus on the information you do have.
		- Use headings and short paragraphs or bullet points to keep this readable
		  for engineers and managers.
	`, behaviorClean, capClean, chartUrl)

	thread, err := t.client.Threads().Post(ctx)
	if err != nil {
		return "", fmt.Errorf("failed creating thread: %w", err)
	}

	_, err = t.client.ThreadById(thread.Id).Messages().Post(ctx, &agents.CreateMessageRequest{
		Role:    agents.MessageRoleUser,
		Content: []*agents.MessageInputBlock{agents.NewTextBlock(userMessage)},
	})
	if err != nil {
		return "", fmt.Errorf("failed creating message: %w", err)
	}

	run, err := t.client.ThreadById(thread.Id).Runs().Post(ctx, &agents.CreateRunRequest{
		AssistantId: t.config.AggregatorAgentId,
	})
	if err != nil {
		return "", fmt.Errorf("failed starting run: %w", err)
	}

	if _, err := t.poller.PollUntilDone(ctx, thread.Id, run.Id); err != nil {
		return "", fmt.Errorf("aggregator agent run: %w", err)
	}

	summary, err := t.client.AgentText(ctx, thread.Id)
	if err != nil {
		return "", fmt.Errorf("failed reading agent response: %w", err)
	}

	if summary == "" {
		return aggregatorPlaceholder, nil
	}

	return summary, nil
}

// stripNotAssessed drops boilerplate "Not assessed in this run" sections so
// the aggregator does not treat them as substantive content.
func stripNotAssessed(text string) string {
	if strings.Contains(text, notAssessedMarker) {
		return ""
	}

	return text
}
