// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

type AgentsClient interface {
	Agents() *AgentListRequestBuilder
	AgentById(id string) *AgentItemRequestBuilder
	Threads() *ThreadListRequestBuilder
	ThreadById(id string) *ThreadItemRequestBuilder

	// AgentText extracts the agent-authored response text from a thread.
	// The newest agent message is preferred; when it carries no text the full
	// thread is scanned in ascending order and the agent text blocks are
	// concatenated. An empty string is returned when the agent produced none.
	AgentText(ctx context.Context, threadId string) (string, error)
}

type agentsClient struct {
	endpoint   string
	credential azcore.TokenCredential
	options    *azcore.ClientOptions
	pipeline   runtime.Pipeline
}

// NewAgentsClient creates a client scoped to the specified project endpoint.
func NewAgentsClient(
	endpoint string,
	credential azcore.TokenCredential,
	options *azcore.ClientOptions,
) (AgentsClient, error) {
	if endpoint == "" {
		return nil, errors.New("endpoint is required")
	}

	if options == nil {
		options = &azcore.ClientOptions{}
	}

	options.PerCallPolicies = append(options.PerCallPolicies, NewApiVersionPolicy(nil))
	pipeline := NewPipeline(credential, ServiceConfig, options)

	return &agentsClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		credential: credential,
		options:    options,
		pipeline:   pipeline,
	}, nil
}

func (c *agentsClient) Agents() *AgentListRequestBuilder {
	return NewAgentListRequestBuilder(c)
}

func (c *agentsClient) AgentById(id string) *AgentItemRequestBuilder {
	return NewAgentItemRequestBuilder(c, id)
}

func (c *agentsClient) Threads() *ThreadListRequestBuilder {
	return NewThreadListRequestBuilder(c)
}

func (c *agentsClient) ThreadById(id string) *ThreadItemRequestBuilder {
	return NewThreadItemRequestBuilder(c, id)
}

func (c *agentsClient) createRequest(
	ctx context.Context,
	httpMethod string,
	path string,
) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, httpMethod, fmt.Sprintf("%s/%s", c.endpoint, path))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	return req, nil
}
