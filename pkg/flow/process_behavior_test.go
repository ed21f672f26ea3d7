// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/microsoft/spcflow/test/mocks"
)

func Test_ProcessBehaviorTool_SendsChartImage(t *testing.T) {
	mockContext := mocks.NewMockContext(context.Background())
	capture := registerAgentRunMocks(mockContext, "## Stability The process is stable.")

	client := createAgentsClient(t, mockContext)
	tool := NewProcessBehaviorTool(client, testConfig(), nil)

	analysis, err := tool.Run(mockContext.Context,
		"Cp: 1.2, Cpk: 0.9",
		"https://charts.example.com/spc.png")

	require.NoError(t, err)
	require.Equal(t, "## Stability The process is stable.", analysis)

	require.Equal(t, "process-behavior-agent", capture.CreateAgent.Name)
	require.Empty(t, capture.CreateAgent.Tools)

	require.Len(t, capture.CreateMessage.Content, 2)
	require.Equal(t, "text", capture.CreateMessage.Content[0].Type)
	require.Contains(t, capture.CreateMessage.Content[0].Text, "Cp: 1.2, Cpk: 0.9")
	require.Equal(t, "image_url", capture.CreateMessage.Content[1].Type)
	require.Equal(t, "https://charts.example.com/spc.png", capture.CreateMessage.Content[1].ImageUrl.Url)
	require.Equal(t, "high", capture.CreateMessage.Content[1].ImageUrl.Detail)

	require.True(t, capture.AgentDeleted)
}

func Test_ProcessBehaviorTool_PlaceholderWhenSilent(t *testing.T) {
	mockContext := mocks.NewMockContext(context.Background())
	registerAgentRunMocks(mockContext, "")

	client := createAgentsClient(t, mockContext)
	tool := NewProcessBehaviorTool(client, testConfig(), nil)

	analysis, err := tool.Run(mockContext.Context, "metrics", "https://charts.example.com/c.png")
	require.NoError(t, err)
	require.Equal(t, "No analysis was produced by the agent.", analysis)
}
