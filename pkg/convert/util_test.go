// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RefOf(t *testing.T) {
	value := RefOf("apple")
	require.NotNil(t, value)
	require.Equal(t, "apple", *value)

	count := RefOf(42)
	require.Equal(t, 42, *count)
}
