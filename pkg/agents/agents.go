// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package agents is a minimal data-plane client for the hosted agent service.
// It covers the agent/thread/message/run lifecycle the report tools need:
// create an agent, seed a thread, start a run, poll it to completion and
// extract the agent-authored text.
package agents

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

var ServiceConfig cloud.ServiceConfiguration = cloud.ServiceConfiguration{
	Audience: "https://ai.azure.com",
}

// Creates a new Azure HTTP pipeline used for agent service clients
func NewPipeline(
	credential azcore.TokenCredential,
	serviceConfig cloud.ServiceConfiguration,
	clientOptions *azcore.ClientOptions,
) runtime.Pipeline {
	scopes := []string{
		fmt.Sprintf("%s/.default", serviceConfig.Audience),
	}

	authPolicy := runtime.NewBearerTokenPolicy(credential, scopes, nil)
	pipelineOptions := runtime.PipelineOptions{
		PerRetry: []policy.Policy{authPolicy},
	}

	return runtime.NewPipeline("agents", "1.0.0", pipelineOptions, clientOptions)
}
