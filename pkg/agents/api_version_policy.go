// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/microsoft/spcflow/pkg/convert"
)

const (
	apiVersionName    = "api-version"
	defaultApiVersion = "v1"
)

type apiVersionPolicy struct {
	apiVersion string
}

// Policy to ensure the agent service api-version is set on all HTTP requests.
func NewApiVersionPolicy(apiVersion *string) policy.Policy {
	if apiVersion == nil {
		apiVersion = convert.RefOf(defaultApiVersion)
	}

	return &apiVersionPolicy{
		apiVersion: *apiVersion,
	}
}

func (p *apiVersionPolicy) Do(req *policy.Request) (*http.Response, error) {
	rawRequest := req.Raw()
	queryString := rawRequest.URL.Query()
	queryString.Set(apiVersionName, p.apiVersion)
	rawRequest.URL.RawQuery = queryString.Encode()

	return req.Next()
}
