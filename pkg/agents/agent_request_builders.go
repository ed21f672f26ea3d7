// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/microsoft/spcflow/pkg/httputil"
)

type AgentListRequestBuilder struct {
	client *agentsClient
}

func NewAgentListRequestBuilder(c *agentsClient) *AgentListRequestBuilder {
	return &AgentListRequestBuilder{
		client: c,
	}
}

// Post creates a new agent bound to a model deployment and instruction set.
func (b *AgentListRequestBuilder) Post(
	ctx context.Context,
	createRequest *CreateAgentRequest,
) (*Agent, error) {
	req, err := b.client.createRequest(ctx, http.MethodPost, "assistants")
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if err := runtime.MarshalAsJSON(req, *createRequest); err != nil {
		return nil, fmt.Errorf("failed setting request body: %w", err)
	}

	res, err := b.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusOK, http.StatusCreated) {
		return nil, runtime.NewResponseError(res)
	}

	return httputil.ReadRawResponse[Agent](res)
}

type AgentItemRequestBuilder struct {
	client *agentsClient
	id     string
}

func NewAgentItemRequestBuilder(c *agentsClient, id string) *AgentItemRequestBuilder {
	return &AgentItemRequestBuilder{
		client: c,
		id:     id,
	}
}

func (b *AgentItemRequestBuilder) Get(ctx context.Context) (*Agent, error) {
	req, err := b.client.createRequest(ctx, http.MethodGet, fmt.Sprintf("assistants/%s", b.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	res, err := b.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusOK) {
		return nil, runtime.NewResponseError(res)
	}

	return httputil.ReadRawResponse[Agent](res)
}

// Delete removes the agent so short-lived per-run agents do not accumulate.
func (b *AgentItemRequestBuilder) Delete(ctx context.Context) (*AgentDeletionStatus, error) {
	req, err := b.client.createRequest(ctx, http.MethodDelete, fmt.Sprintf("assistants/%s", b.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	res, err := b.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusOK, http.StatusNoContent) {
		return nil, runtime.NewResponseError(res)
	}

	// A 204 carries no body to decode.
	if res.StatusCode == http.StatusNoContent {
		return &AgentDeletionStatus{Id: b.id, Deleted: true}, nil
	}

	return httputil.ReadRawResponse[AgentDeletionStatus](res)
}
