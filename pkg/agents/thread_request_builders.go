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

type ThreadListRequestBuilder struct {
	client *agentsClient
}

func NewThreadListRequestBuilder(c *agentsClient) *ThreadListRequestBuilder {
	return &ThreadListRequestBuilder{
		client: c,
	}
}

// Post creates a new empty conversation thread.
func (b *ThreadListRequestBuilder) Post(ctx context.Context) (*AgentThread, error) {
	req, err := b.client.createRequest(ctx, http.MethodPost, "threads")
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if err := runtime.MarshalAsJSON(req, struct{}{}); err != nil {
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

	return httputil.ReadRawResponse[AgentThread](res)
}

type ThreadItemRequestBuilder struct {
	client *agentsClient
	id     string
}

func NewThreadItemRequestBuilder(c *agentsClient, id string) *ThreadItemRequestBuilder {
	return &ThreadItemRequestBuilder{
		client: c,
		id:     id,
	}
}

func (b *ThreadItemRequestBuilder) Messages() *MessageListRequestBuilder {
	return NewMessageListRequestBuilder(b.client, b.id)
}

func (b *ThreadItemRequestBuilder) Runs() *RunListRequestBuilder {
	return NewRunListRequestBuilder(b.client, b.id)
}
