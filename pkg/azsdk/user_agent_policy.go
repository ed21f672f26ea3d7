// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azsdk

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const userAgentHeaderName = "User-Agent"

type userAgentPolicy struct {
	userAgent string
}

// Policy to ensure the custom user agent is set on all HTTP requests.
func NewUserAgentPolicy(userAgent string) policy.Policy {
	return &userAgentPolicy{
		userAgent: userAgent,
	}
}

// Sets the custom user-agent string on the underlying request
func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	if p.userAgent != "" {
		rawRequest := req.Raw()
		rawRequest.Header.Set(userAgentHeaderName, p.userAgent)
	}

	return req.Next()
}
