// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mocks

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// MockContext bundles the pieces tests wire into service clients: a mock
// transport, a credential that always succeeds, and core client options with
// retries disabled so failures surface immediately.
type MockContext struct {
	Context     context.Context
	HttpClient  *MockHttpClient
	Credential  *MockCredential
	CoreOptions *azcore.ClientOptions
}

func NewMockContext(ctx context.Context) *MockContext {
	httpClient := NewMockHttpClient()

	return &MockContext{
		Context:    ctx,
		HttpClient: httpClient,
		Credential: &MockCredential{},
		CoreOptions: &azcore.ClientOptions{
			Transport: httpClient,
			Retry: policy.RetryOptions{
				MaxRetries: -1,
			},
		},
	}
}

// MockCredential implements azcore.TokenCredential and always returns a
// static token.
type MockCredential struct{}

func (c *MockCredential) GetToken(
	ctx context.Context,
	options policy.TokenRequestOptions,
) (azcore.AccessToken, error) {
	return azcore.AccessToken{
		Token:     "ABC123",
		ExpiresOn: time.Now().Add(1 * time.Hour),
	}, nil
}
