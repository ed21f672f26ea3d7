// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/microsoft/spcflow/pkg/agents"
	"github.com/microsoft/spcflow/test/mocks"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://aiproject.example.com/api/projects/demo"

func testConfig() *Config {
	return &Config{
		ProjectEndpoint:    testEndpoint,
		ModelDeployment:    "gpt-4o",
		TenantId:           "tenant",
		ClientId:           "client",
		ClientSecret:       "secret",
		AggregatorAgentId:  "aggregator-agent",
		StorageAccountName: "account",
		StorageAccountKey:  "key",
	}
}

func createAgentsClient(t *testing.T, mockContext *mocks.MockContext) agents.AgentsClient {
	client, err := agents.NewAgentsClient(testEndpoint, mockContext.Credential, mockContext.CoreOptions)
	require.NoError(t, err)

	return client
}

// agentRunCapture records the requests an agent tool makes while the mocks
// drive its run to a successful completion.
type agentRunCapture struct {
	CreateAgent   *agents.CreateAgentRequest
	CreateRun     *agents.CreateRunRequest
	CreateMessage *agents.CreateMessageRequest
	AgentDeleted  bool
}

// registerAgentRunMocks wires the full agent run lifecycle: agent creation,
// thread creation, message posting, a run that completes on the first poll,
// and a thread listing whose newest agent message carries agentText.
func registerAgentRunMocks(
	mockContext *mocks.MockContext,
	agentText string,
) *agentRunCapture {
	capture := &agentRunCapture{}

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodPost &&
			strings.HasSuffix(request.URL.Path, "/assistants")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(request.Body)
		capture.CreateAgent = &agents.CreateAgentRequest{}
		if err := json.Unmarshal(body, capture.CreateAgent); err != nil {
			return nil, err
		}

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.Agent{
			Id:    "agent-1",
			Model: capture.CreateAgent.Model,
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodDelete &&
			strings.HasSuffix(request.URL.Path, "/assistants/agent-1")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		capture.AgentDeleted = true

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.AgentDeletionStatus{
			Id:      "agent-1",
			Deleted: true,
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodPost &&
			strings.HasSuffix(request.URL.Path, "/threads")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.AgentThread{
			Id: "thread-1",
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodPost &&
			strings.HasSuffix(request.URL.Path, "/threads/thread-1/messages")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(request.Body)
		capture.CreateMessage = &agents.CreateMessageRequest{}
		if err := json.Unmarshal(body, capture.CreateMessage); err != nil {
			return nil, err
		}

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.ThreadMessage{
			Id:   "msg-1",
			Role: agents.MessageRoleUser,
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodPost &&
			strings.HasSuffix(request.URL.Path, "/threads/thread-1/runs")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(request.Body)
		capture.CreateRun = &agents.CreateRunRequest{}
		if err := json.Unmarshal(body, capture.CreateRun); err != nil {
			return nil, err
		}

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.ThreadRun{
			Id:       "run-1",
			ThreadId: "thread-1",
			Status:   agents.RunStatusQueued,
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet &&
			strings.HasSuffix(request.URL.Path, "/threads/thread-1/runs/run-1")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.ThreadRun{
			Id:       "run-1",
			ThreadId: "thread-1",
			Status:   agents.RunStatusCompleted,
		})
	})

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet &&
			strings.HasSuffix(request.URL.Path, "/threads/thread-1/messages")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		data := []*agents.ThreadMessage{}
		if agentText != "" {
			data = append(data, &agents.ThreadMessage{
				Id:   "msg-2",
				Role: agents.MessageRoleAgent,
				Content: []*agents.MessageContent{
					{
						Type: "text",
						Text: &agents.MessageTextItem{Value: agentText},
					},
				},
			})
		}

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, agents.MessageListResponse{
			Data: data,
		})
	})

	return capture
}
