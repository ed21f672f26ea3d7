// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setTestEnvironment(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "https://aiproject.example.com/api/projects/demo")
	t.Setenv("MODEL_DEPLOYMENT_NAME", "gpt-4o")
	t.Setenv("AZURE_TENANT_ID", "tenant")
	t.Setenv("AZURE_CLIENT_ID", "client")
	t.Setenv("AZURE_CLIENT_SECRET", "secret")
	t.Setenv("AGGREGATOR_AGENT_ID", "aggregator-agent")
	t.Setenv("STORAGE_ACCOUNT_NAME", "account")
	t.Setenv("STORAGE_ACCOUNT_KEY", "key")
}

func Test_LoadConfig(t *testing.T) {
	setTestEnvironment(t)

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "gpt-4o", config.ModelDeployment)
	require.Equal(t, "aggregator-agent", config.AggregatorAgentId)
	require.Equal(t, "account", config.StorageAccountName)
}

func Test_LoadConfig_MissingSetting(t *testing.T) {
	setTestEnvironment(t)
	t.Setenv("AGGREGATOR_AGENT_ID", "")

	config, err := LoadConfig("")
	require.Nil(t, config)

	var missingErr *MissingConfigError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "AGGREGATOR_AGENT_ID", missingErr.Name)
}

func Test_LoadConfig_DotenvFile(t *testing.T) {
	setTestEnvironment(t)
	os.Unsetenv("MODEL_DEPLOYMENT_NAME")

	envFile := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(envFile, []byte("MODEL_DEPLOYMENT_NAME=gpt-4o-mini\n"), 0o600))

	config, err := LoadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "gpt-4o-mini", config.ModelDeployment)
}

func Test_LoadConfig_MissingDotenvIgnored(t *testing.T) {
	setTestEnvironment(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	require.NotNil(t, config)
}
