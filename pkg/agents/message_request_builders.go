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

type MessageListRequestBuilder struct {
	client   *agentsClient
	threadId string
	order    *ListSortOrder
}

func NewMessageListRequestBuilder(c *agentsClient, threadId string) *MessageListRequestBuilder {
	return &MessageListRequestBuilder{
		client:   c,
		threadId: threadId,
	}
}

// Order sets the sort order applied when listing the thread.
func (b *MessageListRequestBuilder) Order(order ListSortOrder) *MessageListRequestBuilder {
	b.order = &order
	return b
}

func (b *MessageListRequestBuilder) Get(ctx context.Context) (*MessageListResponse, error) {
	req, err := b.client.createRequest(
		ctx,
		http.MethodGet,
		fmt.Sprintf("threads/%s/messages", b.threadId),
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if b.order != nil {
		raw := req.Raw()
		query := raw.URL.Query()
		query.Set("order", string(*b.order))
		raw.URL.RawQuery = query.Encode()
	}

	res, err := b.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusOK) {
		return nil, runtime.NewResponseError(res)
	}

	return httputil.ReadRawResponse[MessageListResponse](res)
}

// Post appends a message to the thread. Content may combine text blocks and
// image-URL blocks for vision-capable models.
func (b *MessageListRequestBuilder) Post(
	ctx context.Context,
	createRequest *CreateMessageRequest,
) (*ThreadMessage, error) {
	req, err := b.client.createRequest(
		ctx,
		http.MethodPost,
		fmt.Sprintf("threads/%s/messages", b.threadId),
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

	return httputil.ReadRawResponse[ThreadMessage](res)
}
