// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// NewCredential builds a client-secret credential from the configured app
// registration and validates it can obtain a token for the agents service.
// Validating up front catches bad secrets before any pipeline work starts.
func NewCredential(ctx context.Context, config *Config) (azcore.TokenCredential, error) {
	credential, err := azidentity.NewClientSecretCredential(
		config.TenantId,
		config.ClientId,
		config.ClientSecret,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating credential: %w", err)
	}

	// The token is cached by the SDK, so subsequent calls reuse it.
	_, err = credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{"https://ai.azure.com/.default"},
	})
	if err != nil {
		return nil, &AuthError{
			TenantId: config.TenantId,
			ClientId: config.ClientId,
			Cause:    err,
		}
	}

	return credential, nil
}

// AuthError represents an authentication failure with context for helpful
// error messages.
type AuthError struct {
	TenantId string
	ClientId string
	Cause    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(
		"failed to authenticate client '%s' in tenant '%s'.\n"+
			"Suggestion: verify AZURE_CLIENT_SECRET is current and the app registration has access to the AI project",
		e.ClientId,
		e.TenantId)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}
