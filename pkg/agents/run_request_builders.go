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

type RunListRequestBuilder struct {
	client   *agentsClient
	threadId string
}

func NewRunListRequestBuilder(c *agentsClient, threadId string) *RunListRequestBuilder {
	return &RunListRequestBuilder{
		client:   c,
		threadId: threadId,
	}
}

// Post starts a run of the specified agent against the thread. Tool
// registrations are forwarded so the service can call MCP servers on the
// agent's behalf.
func (b *RunListRequestBuilder) Post(
	ctx context.Context,
	createRequest *CreateRunRequest,
) (*ThreadRun, error) {
	req, err := b.client.createRequest(
		ctx,
		http.MethodPost,
		fmt.Sprintf("threads/%s/runs", b.threadId),
	)
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

	return httputil.ReadRawResponse[ThreadRun](res)
}

func (b *RunListRequestBuilder) RunById(id string) *RunItemRequestBuilder {
	return NewRunItemRequestBuilder(b.client, b.threadId, id)
}

type RunItemRequestBuilder struct {
	client   *agentsClient
	threadId string
	id       string
}

func NewRunItemRequestBuilder(c *agentsClient, threadId string, id string) *RunItemRequestBuilder {
	return &RunItemRequestBuilder{
		client:   c,
		threadId: threadId,
		id:       id,
	}
}

func (b *RunItemRequestBuilder) Get(ctx context.Context) (*ThreadRun, error) {
	req, err := b.client.createRequest(
		ctx,
		http.MethodGet,
		fmt.Sprintf("threads/%s/runs/%s", b.threadId, b.id),
	)
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

	return httputil.ReadRawResponse[ThreadRun](res)
}
